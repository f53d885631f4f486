// Package secrets stores TOTP shared secrets in the OS credential
// store, with an encrypted-file fallback for environments where no
// keyring is reachable (WSL, headless, containers).
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// ServiceName is the keyring namespace. Every secret is stored under
// it, keyed by the user-chosen service name.
const ServiceName = "totp"

// ErrNotFound is the normal "no such service yet" outcome of Get.
var ErrNotFound = errors.New("key not found")

// Store is the narrow credential-store surface the commands depend on.
// Storing an empty string is the logical-delete convention: the entry
// stays present but carries no usable key.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	List() ([]string, error)
}

// NewStore selects a backend: OS keyring where available, encrypted
// file otherwise. WSL and headless Linux go straight to the file
// backend since their keyrings are absent or unreliable.
func NewStore() (Store, error) {
	if isWSL() || isHeadless() {
		warnOnce("No usable keyring detected (WSL/headless), using encrypted file storage")
		store, err := NewFileStore(os.Getenv("TOTP_STORE_PASSWORD"))
		if err != nil {
			return nil, err
		}
		markWarningsDone()
		return store, nil
	}

	store, err := NewKeyringStore()
	if err != nil {
		warnOnce(fmt.Sprintf("Keyring unavailable (%v), falling back to encrypted file", err))
		fstore, ferr := NewFileStore(os.Getenv("TOTP_STORE_PASSWORD"))
		if ferr != nil {
			return nil, ferr
		}
		markWarningsDone()
		return fstore, nil
	}

	return store, nil
}

func isWSL() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

func isHeadless() bool {
	if runtime.GOOS != "linux" {
		return false
	}
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

// warnOnce prints msg to stderr the first time only; a marker file in
// the data directory keeps later invocations quiet. TOTP_QUIET=1
// suppresses the warning entirely.
func warnOnce(msg string) {
	if quiet() || fileExists(warningMarkerPath()) {
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

func markWarningsDone() {
	if !fileExists(warningMarkerPath()) {
		_ = os.MkdirAll(filepath.Dir(warningMarkerPath()), 0700)
		_ = os.WriteFile(warningMarkerPath(), []byte("1"), 0600)
	}
}

func warningMarkerPath() string {
	return filepath.Join(xdg.DataHome, "totp", ".file-store-warning-shown")
}

func quiet() bool {
	return os.Getenv("TOTP_QUIET") == "1" || os.Getenv("TOTP_QUIET") == "true"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
