// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"iter"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Forward pipelining and curried sequence transformers.
//
//	evens := In(numbers, Filter(IsEven[int]))
//	labels := In(evens, Map(strconv.Itoa))

// In applies f to a. It lets a value flow left to right through a pipeline.
func In[A, B any](a A, f func(A) B) B {
	return f(a)
}

// Then composes f and g, applying f first.
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Not negates a predicate.
func Not[A any](f func(A) bool) func(A) bool {
	return func(a A) bool { return !f(a) }
}

// Not2 negates a binary predicate.
func Not2[A, B any](f func(A, B) bool) func(A, B) bool {
	return func(a A, b B) bool { return !f(a, b) }
}

// Filter returns a sequence transformer keeping the elements satisfying pred.
func Filter[A any](pred func(A) bool) func(iter.Seq[A]) iter.Seq[A] {
	return func(input iter.Seq[A]) iter.Seq[A] {
		return func(yield func(A) bool) {
			for a := range input {
				if pred(a) && !yield(a) {
					return
				}
			}
		}
	}
}

// Map returns a sequence transformer applying f to every element.
func Map[A, B any](f func(A) B) func(iter.Seq[A]) iter.Seq[B] {
	return func(input iter.Seq[A]) iter.Seq[B] {
		return func(yield func(B) bool) {
			for a := range input {
				if !yield(f(a)) {
					return
				}
			}
		}
	}
}

// ChooseFn returns [Choose] curried on f.
func ChooseFn[A, B any](f func(A) Option[B]) func(iter.Seq[A]) iter.Seq[B] {
	return func(input iter.Seq[A]) iter.Seq[B] {
		return Choose(input, f)
	}
}

// Constant returns a function that ignores its index and returns v.
// It pairs with [Repeat] to build constant sequences.
func Constant[T any](v T) func(int) T {
	return func(int) T { return v }
}

// IsOdd reports whether v is odd.
func IsOdd[T constraints.Integer](v T) bool { return v%2 != 0 }

// IsEven reports whether v is even.
func IsEven[T constraints.Integer](v T) bool { return v%2 == 0 }

// If returns thenFn(a) when pred(a) holds and elseFn(a) otherwise.
func If[A, B any](a A, pred func(A) bool, thenFn, elseFn func(A) B) B {
	if pred(a) {
		return thenFn(a)
	}
	return elseFn(a)
}

// Case is one branch of [Switch].
type Case[A, B any] struct {
	Check  func(A) bool
	Result func(A) B
}

// ToCase builds a Case with inferred type arguments.
func ToCase[A, B any](check func(A) bool, result func(A) B) Case[A, B] {
	return Case[A, B]{Check: check, Result: result}
}

// Switch applies the Result of the first case whose Check holds for a,
// or defaultFn when none does.
func Switch[A, B any](a A, cases []Case[A, B], defaultFn func(A) B) B {
	for _, c := range cases {
		if c.Check(a) {
			return c.Result(a)
		}
	}
	return defaultFn(a)
}

// TryElse returns tryFn(a). If tryFn panics with an error matching E
// (see errors.As), it returns catchFn(a) instead. Other panics propagate.
func TryElse[E error, A, B any](a A, tryFn, catchFn func(A) B) (res B) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var target E
		if err, ok := r.(error); ok && errors.As(err, &target) {
			res = catchFn(a)
			return
		}
		panic(r)
	}()
	return tryFn(a)
}
