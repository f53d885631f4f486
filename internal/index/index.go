// Package index persists the ordered list of known service names as a
// JSON array in a single file under the per-user data directory. The
// credential store holds the secrets; the index only remembers which
// names exist, in insertion order.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

// ErrNotFound is returned by Remove when the name is not indexed.
var ErrNotFound = errors.New("service not indexed")

// DefaultPath returns the index file location, typically
// ~/.local/share/totp/services on Linux. The bare "services" filename
// is kept for compatibility with existing installations.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "totp", "services")
}

// Index is the in-memory view of the service-name file. Every mutation
// rewrites the whole file immediately. There is no locking against
// concurrent invocations; the last writer wins.
type Index struct {
	path  string
	names []string
}

// Load reads the index file at path. A missing file is an empty index,
// not an error.
func Load(path string) (*Index, error) {
	idx := &Index{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("failed to read service index: %w", err)
	}

	if err := json.Unmarshal(data, &idx.names); err != nil {
		return nil, fmt.Errorf("failed to parse service index: %w", err)
	}

	return idx, nil
}

// List returns the service names in insertion order.
func (i *Index) List() []string {
	return slices.Clone(i.names)
}

// Contains reports whether name is indexed.
func (i *Index) Contains(name string) bool {
	return slices.Contains(i.names, name)
}

// Add appends name and persists. The index itself does not
// deduplicate; callers check Contains first.
func (i *Index) Add(name string) error {
	i.names = append(i.names, name)
	return i.Save()
}

// Remove deletes the first entry matching name and persists. Returns
// ErrNotFound if name is not indexed.
func (i *Index) Remove(name string) error {
	pos := slices.Index(i.names, name)
	if pos < 0 {
		return ErrNotFound
	}
	i.names = slices.Delete(i.names, pos, pos+1)
	return i.Save()
}

// Save serializes the full list and overwrites the index file,
// creating the data directory if needed. No atomic rename: a crash
// mid-write can corrupt the file, accepted for a single-user
// low-frequency tool.
func (i *Index) Save() error {
	dir := filepath.Dir(i.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	names := i.names
	if names == nil {
		names = []string{} // serialize as [], not null
	}

	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to serialize service index: %w", err)
	}

	if err := os.WriteFile(i.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write service index: %w", err)
	}

	return nil
}
