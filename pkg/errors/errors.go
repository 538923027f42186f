package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindMismatch
	KindStorage
	KindInternal
)

// AppError represents an application error
type AppError struct {
	Kind     Kind   `json:"-"`
	Field    string `json:"field,omitempty"`
	Resource string `json:"resource,omitempty"`
	Message  string `json:"message"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors

func Validation(field, message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Field:   field,
		Message: message,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Kind:     KindNotFound,
		Resource: resource,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func Mismatch(resource, message string) *AppError {
	return &AppError{
		Kind:     KindMismatch,
		Resource: resource,
		Message:  message,
	}
}

func Storage(message string, err error) *AppError {
	return &AppError{
		Kind:    KindStorage,
		Message: message,
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Message: "internal error",
		Err:     err,
	}
}

// KindOf extracts the Kind from err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
