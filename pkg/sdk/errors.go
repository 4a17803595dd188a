package matchmaker

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API error codes. Use errors.Is() to check.
var (
	ErrEmptyQuery             = errors.New("query must not be empty")
	ErrJobNotFound            = errors.New("job not found")
	ErrValidationFailed       = errors.New("validation failed")
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matchmaker: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Is maps the server's error code onto the package sentinels.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case "empty_query":
		return target == ErrEmptyQuery
	case "job_not_found":
		return target == ErrJobNotFound
	case "validation_failed":
		return target == ErrValidationFailed
	case "embedding_provider_error":
		return target == ErrEmbeddingProviderError
	}
	return false
}
