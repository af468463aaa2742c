package errors

import (
	stderrors "errors"

	"github.com/cockroachdb/errors"
)

// The helpers below forward to github.com/cockroachdb/errors so callers only
// need a single errors import.

// New returns an error with the given message and a stack trace.
func New(msg string) error { return errors.New(msg) }

// Newf returns a formatted error with a stack trace.
func Newf(format string, args ...any) error { return errors.Newf(format, args...) }

// Wrap annotates err with msg. It returns nil if err is nil.
func Wrap(err error, msg string) error { return errors.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error { return errors.Wrapf(err, format, args...) }

// Mark attaches reference as an additional identity of err, so that
// Is(err, reference) holds while the message of err is preserved.
func Mark(err error, reference error) error { return errors.Mark(err, reference) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return errors.As(err, target) }

// Join combines errs into a single error, discarding nil values.
func Join(errs ...error) error { return stderrors.Join(errs...) }
