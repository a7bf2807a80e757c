// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import "iter"

// OptionType is an optional reference-like value.
//
// Presence follows the same rule as [Option]: nil references and the empty
// string are absent. Reading an absent OptionType reports ErrEmptyOption,
// which callers can tell apart from Option's ErrOptionValueAccess.
type OptionType[T any] struct {
	value T
	ok    bool
}

// NewOptionType wraps v. Null references and empty strings become absent.
func NewOptionType[T any](v T) OptionType[T] {
	if isNullish(v) {
		return OptionType[T]{}
	}
	return OptionType[T]{value: v, ok: true}
}

// NullOption returns the absent OptionType for T.
func NullOption[T any]() OptionType[T] {
	return OptionType[T]{}
}

// IsNone reports whether the OptionType is absent.
func (o OptionType[T]) IsNone() bool { return !o.ok }

// IsSome reports whether the OptionType holds a value.
func (o OptionType[T]) IsSome() bool { return o.ok }

// Some returns the payload, or ErrEmptyOption if absent.
func (o OptionType[T]) Some() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrEmptyOption
	}
	return o.value, nil
}

// Or returns the payload, or def if absent.
func (o OptionType[T]) Or(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// OrElse returns the payload, or the result of f if absent.
// f is only evaluated when needed.
func (o OptionType[T]) OrElse(f func() T) T {
	if !o.ok {
		return f()
	}
	return o.value
}

// OrAct runs f when the OptionType is absent and returns the zero value.
// Useful when f raises or records a failure built from expensive state.
func (o OptionType[T]) OrAct(f func()) T {
	if !o.ok {
		f()
		var zero T
		return zero
	}
	return o.value
}

// Option converts to the flag-based [Option].
func (o OptionType[T]) Option() Option[T] {
	if !o.ok {
		return Option[T]{}
	}
	return Option[T]{isSome: true, value: o.value}
}

// TryGetValue looks key up in m. A missing key, a nil value or an empty
// string value is absent.
func TryGetValue[K comparable, V any](key K, m map[K]V) OptionType[V] {
	v, ok := m[key]
	if !ok {
		return OptionType[V]{}
	}
	return NewOptionType(v)
}

// FindNoExcept returns the first element satisfying pred, or the absent
// OptionType if there is none.
func FindNoExcept[A any](pred func(A) bool, input iter.Seq[A]) OptionType[A] {
	for a := range input {
		if pred(a) {
			return NewOptionType(a)
		}
	}
	return OptionType[A]{}
}

// PickNoExcept returns the first present result of f over input, or the
// absent OptionType. f is evaluated once per element, stopping at the first hit.
func PickNoExcept[A, B any](f func(A) OptionType[B], input iter.Seq[A]) OptionType[B] {
	for a := range input {
		if o := f(a); o.ok {
			return o
		}
	}
	return OptionType[B]{}
}
