package keystore

import "fmt"

type KeystoreError struct {
	Message string
}

func (errorValue KeystoreError) Error() string {
	return errorValue.Message
}

type CredentialNotFoundError struct {
	KeystoreError
	Path string
}

func NewCredentialNotFoundError(path string) error {
	return CredentialNotFoundError{
		KeystoreError: KeystoreError{Message: fmt.Sprintf("credential not found at %s", path)},
		Path:          path,
	}
}

type CredentialAlreadyExistsError struct {
	KeystoreError
	Path string
}

func NewCredentialAlreadyExistsError(path string) error {
	return CredentialAlreadyExistsError{
		KeystoreError: KeystoreError{Message: fmt.Sprintf("credential already exists at %s", path)},
		Path:          path,
	}
}

type InvalidKeypairError struct {
	KeystoreError
	Path string
}

func NewInvalidKeypairError(path string, reason string) error {
	return InvalidKeypairError{
		KeystoreError: KeystoreError{Message: fmt.Sprintf("invalid keypair file %s: %s", path, reason)},
		Path:          path,
	}
}

type InvalidUsernameError struct {
	KeystoreError
	Username string
}

func NewInvalidUsernameError(username string) error {
	return InvalidUsernameError{
		KeystoreError: KeystoreError{Message: fmt.Sprintf("invalid username %q: use 1-64 letters, digits, '_' or '-'", username)},
		Username:      username,
	}
}
