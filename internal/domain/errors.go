package domain

import (
	"errors"
	"fmt"
)

// DomainError is a transport-facing error with a stable code. The validation
// pipeline itself never returns errors; it reports outcomes through
// TransactionResponse. DomainError covers everything around it: undecodable
// bodies, annotation-level field violations and genuine internal faults.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeMalformedRequest = "MALFORMED_REQUEST"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

func NewMalformedRequestError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeMalformedRequest,
		Message: "request body could not be decoded",
		Err:     err,
	}
}

func NewValidationError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: err.Error(),
	}
}

func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
