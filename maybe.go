// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

// Maybe is the tagged-variant encoding of an optional value.
// Its only implementations are [Something] and [Nothing].
type Maybe[T any] interface {
	maybe() T
}

// Something is the Maybe variant carrying a value.
type Something[T any] struct {
	Value T
}

func (s Something[T]) maybe() T { return s.Value }

// Nothing is the Maybe variant carrying no value.
type Nothing[T any] struct{}

func (Nothing[T]) maybe() T {
	var zero T
	return zero
}

// ToMaybe wraps v as Something. Unlike [ToOption], no value is treated as absent.
func ToMaybe[T any](v T) Maybe[T] {
	return Something[T]{Value: v}
}

// NothingOf returns Nothing for T.
func NothingOf[T any]() Maybe[T] {
	return Nothing[T]{}
}

// IsSomething reports whether m is a Something variant.
func IsSomething[T any](m Maybe[T]) bool {
	_, ok := m.(Something[T])
	return ok
}

// BindMaybe sequences two Maybe computations.
// Something(v) yields f(v); anything else yields Nothing without calling f.
func BindMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	switch v := m.(type) {
	case Something[A]:
		return f(v.Value)
	default:
		return Nothing[B]{}
	}
}

// SelectManyMaybe binds m to f and combines both values with combine.
func SelectManyMaybe[A, B, C any](m Maybe[A], f func(A) Maybe[B], combine func(A, B) C) Maybe[C] {
	return BindMaybe(m, func(a A) Maybe[C] {
		return BindMaybe(f(a), func(b B) Maybe[C] {
			return ToMaybe(combine(a, b))
		})
	})
}

// MaybeToOption converts m to an [Option]. Something of a null value
// becomes None under Option's presence rule.
func MaybeToOption[T any](m Maybe[T]) Option[T] {
	if v, ok := m.(Something[T]); ok {
		return ToOption(v.Value)
	}
	return Option[T]{}
}

// OptionToMaybe converts o to a Maybe.
func OptionToMaybe[T any](o Option[T]) Maybe[T] {
	if !o.isSome {
		return Nothing[T]{}
	}
	return Something[T]{Value: o.value}
}

// Div divides top by bottom, yielding Nothing when bottom is zero.
func Div(top, bottom int) Maybe[int] {
	if bottom == 0 {
		return Nothing[int]{}
	}
	return ToMaybe(top / bottom)
}
