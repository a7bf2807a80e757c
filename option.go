// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import "reflect"

// Option represents a value of type T, or nothing.
//
// The zero Option is None. Options built with [ToOption] treat the "null"
// of T as absent: a nil pointer, map, slice, channel, function or interface,
// and the empty string for string-kinded T. Every other value is present,
// including an empty string held by an interface-typed T.
type Option[T any] struct {
	isSome bool
	value  T
}

// ToOption wraps v, normalising null and empty-string values to None.
func ToOption[T any](v T) Option[T] {
	if isNullish(v) {
		return Option[T]{}
	}
	return Option[T]{isSome: true, value: v}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool { return o.isSome }

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool { return !o.isSome }

// Some returns the payload, or ErrOptionValueAccess if the Option is None.
func (o Option[T]) Some() (T, error) {
	if !o.isSome {
		var zero T
		return zero, ErrOptionValueAccess
	}
	return o.value, nil
}

// Or returns the payload, or def if the Option is None.
func (o Option[T]) Or(def T) T {
	if !o.isSome {
		return def
	}
	return o.value
}

// BindOption sequences two optional computations (monadic bind).
// If o is None, f is not called and None is returned.
// Otherwise the result of f is returned as is.
func BindOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.isSome {
		return Option[B]{}
	}
	return f(o.value)
}

// SelectManyOption binds o to f and combines both payloads with combine.
// It is equivalent to
//
//	BindOption(o, func(a A) Option[B] {
//		return BindOption(f(a), func(b B) Option[C] { return ToOption(combine(a, b)) })
//	})
func SelectManyOption[A, B, C any](o Option[A], f func(A) Option[B], combine func(A, B) C) Option[C] {
	return BindOption(o, func(a A) Option[C] {
		return BindOption(f(a), func(b B) Option[C] {
			return ToOption(combine(a, b))
		})
	})
}

// MapOption applies f to the payload of o.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.isSome {
		return Option[B]{}
	}
	return ToOption(f(o.value))
}

// isNullish reports whether v counts as absent. The rule follows the
// static type T: an interface T holding "" is present.
func isNullish[T any](v T) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		return reflect.ValueOf(&v).Elem().Len() == 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return reflect.ValueOf(&v).Elem().IsNil()
	}
	return false
}
