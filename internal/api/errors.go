package api

import "fmt"

// APIError represents a non-success response from the analysis service.
// Detail carries the service's own message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("service error: status=%d detail=%s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("service error: status=%d", e.StatusCode)
}

// NotFoundError indicates the requested document or audio file does not exist.
type NotFoundError struct {
	*APIError
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("document not found: %s", e.ID)
	}
	return fmt.Sprintf("document not found: %s", e.APIError.Error())
}

func (e *NotFoundError) Unwrap() error { return e.APIError }

// ParseError indicates a success response whose body could not be used.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed service response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnreachableError indicates the analysis service could not be reached at all.
type UnreachableError struct {
	Host string
	Err  error
}

func (e *UnreachableError) Error() string {
	if e.Host != "" {
		return fmt.Sprintf("service unreachable at %s: %v", e.Host, e.Err)
	}
	return fmt.Sprintf("service unreachable: %v", e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }
