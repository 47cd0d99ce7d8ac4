package models

import "errors"

// Error kinds shared by the store, services and HTTP layer. Callers wrap
// them with context and match with errors.Is.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// KindError carries a client-facing message together with its error kind.
type KindError struct {
	Kind    error
	Message string
}

func (err *KindError) Error() string {
	return err.Message
}

func (err *KindError) Unwrap() error {
	return err.Kind
}

func NewValidationError(message string) error {
	return &KindError{Kind: ErrValidation, Message: message}
}

func NewNotFoundError(message string) error {
	return &KindError{Kind: ErrNotFound, Message: message}
}
