// Package errors holds the error taxonomy shared by stores, services and handlers.
// Errors are marked with one of the sentinels below and mapped to HTTP statuses at the edge.
package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")

	statusCodeMap = map[error]int{
		ErrNotFound:   http.StatusNotFound,
		ErrValidation: http.StatusBadRequest,
		ErrStorage:    http.StatusInternalServerError,
	}
)

// ErrorBuilder provides a fluent interface for building marked errors.
// Mark must be the last call in the chain.
type ErrorBuilder struct {
	err error
}

// NewError starts a new error builder chain
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a builder chain with an existing error
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithMessage adds internal context to the error
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithMessagef is WithMessage with formatting
func (b *ErrorBuilder) WithMessagef(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithMessagef(b.err, format, args...)
	return b
}

// WithHint adds the human-readable message returned to clients
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// Mark marks the error with a sentinel error
func (b *ErrorBuilder) Mark(reference error) error {
	return errors.Mark(b.err, reference)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// NotFound is a shorthand for a NotFound error whose hint is shown to clients.
func NotFound(hint string) error {
	return NewError(hint).WithHint(hint).Mark(ErrNotFound)
}

// Validation is a shorthand for a ValidationError whose hint is shown to clients.
func Validation(hint string) error {
	return NewError(hint).WithHint(hint).Mark(ErrValidation)
}

// Storage wraps an underlying store failure. The original message stays attached
// for diagnostics.
func Storage(err error, op string) error {
	if err == nil {
		return nil
	}
	if IsStorage(err) {
		return err
	}
	return WithError(err).WithMessage(op).Mark(ErrStorage)
}

// HTTPStatusFromErr maps a marked error to its HTTP status. Unmarked errors are internal.
func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// DisplayMessage returns the client-facing text for err: the flattened hints when present,
// the full message otherwise.
func DisplayMessage(err error) string {
	if hint := errors.FlattenHints(err); hint != "" {
		return hint
	}
	return err.Error()
}
