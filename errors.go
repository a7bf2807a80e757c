// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Failures are reported with errors that satisfy errors.Is
// against exactly one of these sentinels.
var (
	// ErrOptionValueAccess is returned when reading the payload of an absent Option.
	ErrOptionValueAccess = errors.New("fnutil: option value access on None")

	// ErrEmptyOption is returned when reading the payload of an absent OptionType.
	ErrEmptyOption = errors.New("fnutil: empty option access")

	// ErrMExceptionAccess is matched by the *AccessError returned when reading
	// the payload of an MException in error state.
	ErrMExceptionAccess = errors.New("fnutil: access to MException in error state")

	// ErrInvalidArgument reports a violated precondition.
	ErrInvalidArgument = errors.New("fnutil: invalid argument")

	// ErrLengthMismatch reports paired sequences of different lengths.
	ErrLengthMismatch = errors.New("fnutil: sequence length mismatch")

	// ErrEmptyCollection reports an operation that needs at least one element.
	ErrEmptyCollection = errors.New("fnutil: collection is empty")

	// ErrEmptySequence reports that no element of a sequence was chosen.
	ErrEmptySequence = errors.New("fnutil: sequence contains no matching element")

	// ErrNotFound reports that no element satisfied a predicate.
	ErrNotFound = errors.New("fnutil: element not found")
)

// AccessError is returned by [MException.Value] when the MException carries
// an error. The carried error is available through Unwrap and Cause.
type AccessError struct {
	cause error
}

func (e *AccessError) Error() string {
	return ErrMExceptionAccess.Error() + ": " + e.cause.Error()
}

// Is reports whether target is ErrMExceptionAccess.
func (e *AccessError) Is(target error) bool {
	return target == ErrMExceptionAccess
}

// Unwrap returns the error carried by the MException.
func (e *AccessError) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface.
func (e *AccessError) Cause() error { return e.cause }

// PanicError holds a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fnutil: recovered panic: %v", e.Value)
}

// invalidArgument wraps ErrInvalidArgument with a formatted reason.
func invalidArgument(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// recovered converts a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.WithStack(&PanicError{Value: r})
}
