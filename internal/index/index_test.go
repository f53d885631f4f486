package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "totp", "services")
}

func TestLoadMissingFile(t *testing.T) {
	idx, err := Load(testPath(t))
	require.NoError(t, err)
	assert.Empty(t, idx.List())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAddPersistsImmediately(t *testing.T) {
	path := testPath(t)

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Add("github"))
	require.NoError(t, idx.Add("aws"))

	// A fresh load must see both entries in insertion order.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"github", "aws"}, reloaded.List())
}

func TestInsertionOrderPreserved(t *testing.T) {
	idx, err := Load(testPath(t))
	require.NoError(t, err)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, idx.Add(name))
	}

	assert.Equal(t, []string{"zulu", "alpha", "mike"}, idx.List())
}

func TestListReturnsCopy(t *testing.T) {
	idx, err := Load(testPath(t))
	require.NoError(t, err)
	require.NoError(t, idx.Add("github"))

	names := idx.List()
	names[0] = "mutated"
	assert.Equal(t, []string{"github"}, idx.List())
}

func TestContains(t *testing.T) {
	idx, err := Load(testPath(t))
	require.NoError(t, err)
	require.NoError(t, idx.Add("github"))

	assert.True(t, idx.Contains("github"))
	assert.False(t, idx.Contains("gitlab"))
}

func TestRemove(t *testing.T) {
	path := testPath(t)

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Add("github"))
	require.NoError(t, idx.Add("aws"))
	require.NoError(t, idx.Add("github")) // duplicate, callers normally guard

	// Removes the first match only.
	require.NoError(t, idx.Remove("github"))
	assert.Equal(t, []string{"aws", "github"}, idx.List())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"aws", "github"}, reloaded.List())
}

func TestRemoveMissing(t *testing.T) {
	idx, err := Load(testPath(t))
	require.NoError(t, err)

	err = idx.Remove("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEmptyIndexSerializesAsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services")

	idx, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, idx.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
