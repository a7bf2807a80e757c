// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"github.com/pkg/errors"
)

// MException carries either a success value or a captured error.
//
// Exactly one of the two is meaningful, selected by HasError. Errors are
// carried forward by [BindM] without being raised; they surface only when
// [MException.Value] is read.
type MException[T any] struct {
	hasErr bool
	err    error
	value  T
}

// ToMException wraps v as a success value.
func ToMException[T any](v T) MException[T] {
	return MException[T]{value: v}
}

// Fail creates an MException in error state.
// Panics with an ErrInvalidArgument error if err is nil.
func Fail[T any](err error) MException[T] {
	if err == nil {
		panic(invalidArgument("Fail called with nil error"))
	}
	return MException[T]{hasErr: true, err: err}
}

// HasError reports whether m is in error state.
func (m MException[T]) HasError() bool { return m.hasErr }

// Err returns the captured error, or nil on success.
func (m MException[T]) Err() error { return m.err }

// Value returns the payload. In error state it returns an *AccessError
// whose cause is the captured error.
func (m MException[T]) Value() (T, error) {
	if m.hasErr {
		var zero T
		return zero, &AccessError{cause: m.err}
	}
	return m.value, nil
}

// ValueOrDefault returns the payload, or the zero value of T in error state.
func (m MException[T]) ValueOrDefault() T {
	if m.hasErr {
		var zero T
		return zero
	}
	return m.value
}

// ValueOr returns the payload, or def in error state.
func (m MException[T]) ValueOr(def T) T {
	if m.hasErr {
		return def
	}
	return m.value
}

// Convert replaces the captured error with fn(err). Success values pass
// through unchanged and fn is not called.
// Panics with an ErrInvalidArgument error if fn returns nil.
func (m MException[T]) Convert(fn func(error) error) MException[T] {
	if !m.hasErr {
		return m
	}
	return Fail[T](fn(m.err))
}

// MatchM pattern matches on m, calling onErr or onValue.
func MatchM[T, R any](m MException[T], onErr func(error) R, onValue func(T) R) R {
	if m.hasErr {
		return onErr(m.err)
	}
	return onValue(m.value)
}

// BindM sequences two MException computations.
//
// An input in error state yields the same error, unwrapped, without calling f.
// Otherwise f's result is returned as is: a panic raised by f propagates to
// the caller. Use [BindWithProtect] to capture it instead.
func BindM[A, B any](m MException[A], f func(A) MException[B]) MException[B] {
	if m.hasErr {
		return MException[B]{hasErr: true, err: m.err}
	}
	return f(m.value)
}

// Protect wraps f so that a panic raised while it runs is captured into an
// MException in error state. Panic values that are not errors are wrapped
// in a *PanicError.
func Protect[A, B any](f func(A) MException[B]) func(A) MException[B] {
	return func(a A) (res MException[B]) {
		defer func() {
			if r := recover(); r != nil {
				res = MException[B]{hasErr: true, err: recovered(r)}
			}
		}()
		return f(a)
	}
}

// BindWithProtect is BindM(m, Protect(f)).
func BindWithProtect[A, B any](m MException[A], f func(A) MException[B]) MException[B] {
	return BindM(m, Protect(f))
}

// SelectManyM binds m to f and combines both values with combine.
// The whole step is protected, so a panic in f or combine is captured.
func SelectManyM[A, B, C any](m MException[A], f func(A) MException[B], combine func(A, B) C) MException[C] {
	return BindWithProtect(m, func(a A) MException[C] {
		return BindM(f(a), func(b B) MException[C] {
			return ToMException(combine(a, b))
		})
	})
}

// Try runs f, capturing a panic as an MException in error state.
func Try[T any](f func() T) MException[T] {
	return Protect(func(struct{}) MException[T] {
		return ToMException(f())
	})(struct{}{})
}

// Catch recovers from a captured error of type E.
// If m's error matches E (see errors.As), the result is clause(e).
// Otherwise m is returned unchanged.
func Catch[E error, T any](m MException[T], clause func(E) T) MException[T] {
	if !m.hasErr {
		return m
	}
	var target E
	if errors.As(m.err, &target) {
		return ToMException(clause(target))
	}
	return m
}

// Finally runs f with the payload, or the zero value in error state,
// and returns m unchanged.
func Finally[T any](m MException[T], f func(T)) MException[T] {
	f(m.ValueOrDefault())
	return m
}
