package registry

import "fmt"

type RegistryError struct {
	Message string
}

func (errorValue RegistryError) Error() string {
	return errorValue.Message
}

type RegistryNotFoundError struct {
	RegistryError
	Path string
}

func NewRegistryNotFoundError(path string) error {
	return RegistryNotFoundError{
		RegistryError: RegistryError{Message: fmt.Sprintf("mint registry not found at %s; create a brand first", path)},
		Path:          path,
	}
}

type InvalidRecordError struct {
	RegistryError
	ValidationErrors []string
}

func NewInvalidRecordError(validationErrors []string) error {
	return InvalidRecordError{
		RegistryError:    RegistryError{Message: fmt.Sprintf("invalid mint record: %v", validationErrors)},
		ValidationErrors: append([]string{}, validationErrors...),
	}
}

type RecordNotFoundError struct {
	RegistryError
	Reference string
}

func NewRecordNotFoundError(reference string) error {
	return RecordNotFoundError{
		RegistryError: RegistryError{Message: fmt.Sprintf("no brand mint matches %q", reference)},
		Reference:     reference,
	}
}
