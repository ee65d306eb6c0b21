package keystore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

const userFileExtension = ".json"

// ValidateUsername checks that a username is safe to use as a file name.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return NewInvalidUsernameError(username)
	}
	return nil
}

// UserStore keeps one keypair file per username inside a directory.
type UserStore struct {
	dir string
}

// NewUserStore creates a new UserStore.
func NewUserStore(dir string) (*UserStore, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("user keypair directory is required")
	}
	return &UserStore{dir: trimmed}, nil
}

// Dir returns the requested value.
func (store *UserStore) Dir() string {
	return store.dir
}

// PathFor returns the keypair file path of a username.
func (store *UserStore) PathFor(username string) (string, error) {
	if err := ValidateUsername(username); err != nil {
		return "", err
	}
	return filepath.Join(store.dir, username+userFileExtension), nil
}

// Create generates a keypair for a new user.
func (store *UserStore) Create(username string) (Keypair, error) {
	path, err := store.PathFor(username)
	if err != nil {
		return Keypair{}, err
	}
	keypair := NewKeypair()
	if err := writeKeypair(path, keypair); err != nil {
		return Keypair{}, err
	}
	return keypair, nil
}

// Load reads the keypair of an existing user.
func (store *UserStore) Load(username string) (Keypair, error) {
	path, err := store.PathFor(username)
	if err != nil {
		return Keypair{}, err
	}
	return readKeypair(path)
}

// Exists reports whether a user has a stored keypair.
func (store *UserStore) Exists(username string) bool {
	path, err := store.PathFor(username)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(path)
	return statErr == nil
}

// List returns the stored usernames in lexical order. A missing directory
// yields an empty list.
func (store *UserStore) List() ([]string, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list user keypairs: %w", err)
	}

	usernames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, userFileExtension) {
			continue
		}
		username := strings.TrimSuffix(name, userFileExtension)
		if ValidateUsername(username) != nil {
			continue
		}
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames, nil
}
