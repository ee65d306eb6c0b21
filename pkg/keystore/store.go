package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists a single keypair at a fixed path.
type Store struct {
	path string
}

// NewStore creates a new Store.
func NewStore(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("keypair path is required")
	}
	return &Store{path: trimmed}, nil
}

// Path returns the requested value.
func (store *Store) Path() string {
	return store.path
}

// Exists reports whether the credential file is present.
func (store *Store) Exists() bool {
	_, err := os.Stat(store.path)
	return err == nil
}

// Create generates and persists a new keypair. It never overwrites an
// existing file.
func (store *Store) Create() (Keypair, error) {
	keypair := NewKeypair()
	if err := writeKeypair(store.path, keypair); err != nil {
		return Keypair{}, err
	}
	return keypair, nil
}

// Load reads the persisted keypair.
func (store *Store) Load() (Keypair, error) {
	return readKeypair(store.path)
}

func writeKeypair(path string, keypair Keypair) error {
	payload, err := encodeSecret(keypair.SecretKey())
	if err != nil {
		return fmt.Errorf("failed to encode keypair: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create keypair directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return NewCredentialAlreadyExistsError(path)
		}
		return fmt.Errorf("failed to create keypair file: %w", err)
	}

	if _, err := file.Write(payload); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write keypair file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to close keypair file: %w", err)
	}
	return nil
}

func readKeypair(path string) (Keypair, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Keypair{}, NewCredentialNotFoundError(path)
		}
		return Keypair{}, fmt.Errorf("failed to read keypair file: %w", err)
	}

	secret, err := decodeSecret(payload)
	if err != nil {
		return Keypair{}, NewInvalidKeypairError(path, err.Error())
	}

	keypair, err := KeypairFromSecret(secret)
	if err != nil {
		return Keypair{}, NewInvalidKeypairError(path, err.Error())
	}
	return keypair, nil
}
