package mirror

import (
	"fmt"
	"net/http"
)

// StatusError is returned for non-2xx mirror node responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (errorValue StatusError) Error() string {
	return fmt.Sprintf("mirror node request failed with status %d: %s", errorValue.StatusCode, errorValue.Body)
}

// NotFound reports whether the mirror node answered 404.
func (errorValue StatusError) NotFound() bool {
	return errorValue.StatusCode == http.StatusNotFound
}
