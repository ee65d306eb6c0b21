package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Registry is the file-backed mint registry.
type Registry struct {
	path string
}

// New creates a new Registry.
func New(path string) (*Registry, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("registry path is required")
	}
	return &Registry{path: trimmed}, nil
}

// Path returns the requested value.
func (registry *Registry) Path() string {
	return registry.path
}

// ValidateRecord checks the required fields of a record.
func ValidateRecord(record MintRecord) error {
	validationErrors := make([]string, 0)
	if strings.TrimSpace(record.Address) == "" {
		validationErrors = append(validationErrors, "address is required")
	}
	if strings.TrimSpace(record.Name) == "" {
		validationErrors = append(validationErrors, "name is required")
	}
	if strings.TrimSpace(record.Symbol) == "" {
		validationErrors = append(validationErrors, "symbol is required")
	}
	if len(validationErrors) > 0 {
		return NewInvalidRecordError(validationErrors)
	}
	return nil
}

// Append adds a record to the end of the registry, creating the file on
// first use.
func (registry *Registry) Append(record MintRecord) error {
	if err := ValidateRecord(record); err != nil {
		return err
	}

	records, err := registry.LoadAll()
	if err != nil {
		var notFound RegistryNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		records = []MintRecord{}
	}

	records = append(records, record)
	return registry.write(records)
}

// LoadAll returns every record in insertion order.
func (registry *Registry) LoadAll() ([]MintRecord, error) {
	payload, err := os.ReadFile(registry.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewRegistryNotFoundError(registry.path)
		}
		return nil, fmt.Errorf("failed to read mint registry: %w", err)
	}

	records := make([]MintRecord, 0)
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("failed to decode mint registry %s: %w", registry.path, err)
	}
	return records, nil
}

func (registry *Registry) write(records []MintRecord) error {
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mint registry: %w", err)
	}

	dir := filepath.Dir(registry.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, "."+filepath.Base(registry.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary registry file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(payload); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to write temporary registry file: %w", err)
	}
	if err := temp.Sync(); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to sync temporary registry file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to close temporary registry file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to set registry permissions: %w", err)
	}
	if err := os.Rename(tempPath, registry.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to replace mint registry: %w", err)
	}
	return nil
}
