package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// FileStore holds secrets in a single AES-256-GCM encrypted file.
// Fallback backend for environments without a keyring.
type FileStore struct {
	path string
	key  []byte
}

// NewFileStore creates the file-backed store. With an empty password
// the key is derived from the machine identity, which only protects
// against casual reads; TOTP_STORE_PASSWORD selects a real password.
func NewFileStore(password string) (*FileStore, error) {
	path := filepath.Join(xdg.DataHome, "totp", "secrets.enc")

	if password == "" {
		hostname, _ := os.Hostname()
		username := os.Getenv("USER")
		if username == "" {
			username = os.Getenv("USERNAME") // Windows
		}
		password = fmt.Sprintf("%s@%s", username, hostname)
		warnOnce("WARNING: Using a machine-derived encryption key. Set TOTP_STORE_PASSWORD for better protection.")
	}
	hash := sha256.Sum256([]byte(password))

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{path: path, key: hash[:]}, nil
}

func (s *FileStore) seal(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Nonce is prepended to the ciphertext.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *FileStore) open(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read secrets file: %w", err)
	}
	if len(data) == 0 {
		return make(map[string]string), nil
	}

	plaintext, err := s.open(data)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := json.Unmarshal(plaintext, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse secrets file: %w", err)
	}
	return entries, nil
}

func (s *FileStore) write(entries map[string]string) error {
	plaintext, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize secrets: %w", err)
	}

	ciphertext, err := s.seal(plaintext)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, ciphertext, 0600); err != nil {
		return fmt.Errorf("failed to write secrets file: %w", err)
	}
	return nil
}

// Get retrieves the secret for a service name.
func (s *FileStore) Get(key string) (string, error) {
	entries, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores or overwrites the secret for a service name.
func (s *FileStore) Set(key, value string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.write(entries)
}

// Delete physically removes the entry.
func (s *FileStore) Delete(key string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return ErrNotFound
	}
	delete(entries, key)
	return s.write(entries)
}

// List returns all stored service names.
func (s *FileStore) List() ([]string, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	return keys, nil
}
