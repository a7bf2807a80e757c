// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import "iter"

// Lazy sequence generators.
//
// Every generator is a pure transformation: it never mutates its source, and
// each call returns a fresh sequence. Finite generators are restartable
// whenever their source is.

// Infinite is a sequence that never signals completion.
// Consumers must bound it themselves, with Take or by breaking out of a range.
type Infinite[T any] func(yield func(T) bool)

// Seq returns s as a plain sequence.
func (s Infinite[T]) Seq() iter.Seq[T] {
	return iter.Seq[T](s)
}

// Take returns the first n elements of s.
func (s Infinite[T]) Take(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for v := range s {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// CircularEnum repeats seq forever, ranging over it again from the start
// each time it is exhausted.
//
// A pass over seq that yields nothing ends the sequence, so an empty source
// produces an empty sequence rather than spinning.
func CircularEnum[T any](seq iter.Seq[T]) Infinite[T] {
	return func(yield func(T) bool) {
		for {
			empty := true
			for v := range seq {
				empty = false
				if !yield(v) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// SteppedEnum yields the first element of seq, then every step-th element
// after it. Returns ErrInvalidArgument if step < 1.
func SteppedEnum[T any](seq iter.Seq[T], step int) (iter.Seq[T], error) {
	if step < 1 {
		return nil, invalidArgument("step %d: must be greater than zero", step)
	}
	return func(yield func(T) bool) {
		skip := 0
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
			skip = step - 1
		}
	}, nil
}

// ConstrainedEnum skips the first start elements of seq and yields the rest.
// Returns ErrInvalidArgument if start < 0.
func ConstrainedEnum[T any](seq iter.Seq[T], start int) (iter.Seq[T], error) {
	if start < 0 {
		return nil, invalidArgument("start %d: must be positive or zero", start)
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < start {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}, nil
}

// ConstrainedEnumN skips the first start elements of seq and yields at most
// count of the remainder. Returns ErrInvalidArgument if start or count is
// negative.
func ConstrainedEnumN[T any](seq iter.Seq[T], start, count int) (iter.Seq[T], error) {
	if start < 0 {
		return nil, invalidArgument("start %d: must be positive or zero", start)
	}
	if count < 0 {
		return nil, invalidArgument("count %d: must be positive or zero", count)
	}
	return func(yield func(T) bool) {
		if count == 0 {
			return
		}
		i, n := 0, 0
		for v := range seq {
			if i < start {
				i++
				continue
			}
			if !yield(v) {
				return
			}
			if n++; n == count {
				return
			}
		}
	}, nil
}

// ReverseEnum yields the elements of list from last to first.
// Returns ErrEmptyCollection if list is empty.
func ReverseEnum[T any](list []T) (iter.Seq[T], error) {
	if len(list) == 0 {
		return nil, ErrEmptyCollection
	}
	return func(yield func(T) bool) {
		for i := len(list) - 1; i >= 0; i-- {
			if !yield(list[i]) {
				return
			}
		}
	}, nil
}

// IgnoreLast yields every element of list except the last.
func IgnoreLast[T any](list []T) iter.Seq[T] {
	return IgnoreLastN(list, 1)
}

// IgnoreLastN yields every element of list except the last n.
// A negative n ignores nothing.
func IgnoreLastN[T any](list []T, n int) iter.Seq[T] {
	n = max(n, 0)
	return func(yield func(T) bool) {
		for i := 0; i < len(list)-n; i++ {
			if !yield(list[i]) {
				return
			}
		}
	}
}

// IgnoreFirstAndLast yields every element of list except the first and the
// last. Lists of two or fewer elements yield nothing.
func IgnoreFirstAndLast[T any](list []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 1; i < len(list)-1; i++ {
			if !yield(list[i]) {
				return
			}
		}
	}
}

// Concat yields first, then every element of rest.
func Concat[T any](first T, rest iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(first) {
			return
		}
		for v := range rest {
			if !yield(v) {
				return
			}
		}
	}
}
