// Package errors is what storage, delivery and wiring code import instead of "errors".
// Matching delegates to the standard library; every constructor that annotates records a call stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New builds a comparable sentinel without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Is walks the wrap chain of err looking for target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As assigns the first error in the chain assignable to target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap prefixes err with message and captures the caller's stack. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a printf-style message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack captures the caller's stack without changing the message. WithStack(nil) is nil.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf is fmt.Errorf plus a captured stack.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
