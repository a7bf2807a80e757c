// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sequence combinators.
//
// Lazy combinators return iter.Seq; those that must see the whole input
// return materialised slices.

// Choose applies f to each element of input and yields the payloads of the
// present results, in input order.
func Choose[A, B any](input iter.Seq[A], f func(A) Option[B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range input {
			if o := f(a); o.isSome {
				if !yield(o.value) {
					return
				}
			}
		}
	}
}

// ChooseMaybe is [Choose] for functions returning [Maybe].
func ChooseMaybe[A, B any](input iter.Seq[A], f func(A) Maybe[B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range input {
			if s, ok := f(a).(Something[B]); ok {
				if !yield(s.Value) {
					return
				}
			}
		}
	}
}

// Partition splits input into the elements satisfying pred and the rest.
// Both slices keep the original relative order.
func Partition[A any](pred func(A) bool, input iter.Seq[A]) (matched, rest []A) {
	for a := range input {
		if pred(a) {
			matched = append(matched, a)
		} else {
			rest = append(rest, a)
		}
	}
	return matched, rest
}

// GroupBy groups input by key. Groups appear in order of their key's first
// occurrence and keep element order.
func GroupBy[K comparable, V any](input iter.Seq[V], key func(V) K) []Pair[K, []V] {
	var groups []Pair[K, []V]
	index := make(map[K]int)
	for v := range input {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Pair[K, []V]{Fst: k})
		}
		groups[i].Snd = append(groups[i].Snd, v)
	}
	return groups
}

// ForAll2 reports whether f holds for every pair of elements taken in
// lockstep from input1 and input2. It stops at the first failing pair.
// If one input is exhausted before the other, it returns ErrLengthMismatch.
func ForAll2[A, B any](f func(A, B) bool, input1 iter.Seq[A], input2 iter.Seq[B]) (bool, error) {
	e1 := NewEnumerator(input1)
	defer e1.Close()
	e2 := NewEnumerator(input2)
	defer e2.Close()
	for {
		moved1, moved2 := e1.MoveNext(), e2.MoveNext()
		if moved1 != moved2 {
			return false, ErrLengthMismatch
		}
		if !moved1 {
			return true, nil
		}
		if !f(e1.Current(), e2.Current()) {
			return false, nil
		}
	}
}

// Pick returns the first value chosen by f from input.
// Returns ErrEmptySequence if f yields Nothing for every element.
func Pick[A, B any](f func(A) Maybe[B], input iter.Seq[A]) (B, error) {
	for b := range ChooseMaybe(input, f) {
		return b, nil
	}
	var zero B
	return zero, ErrEmptySequence
}

// PickOption is [Pick] for functions returning [Option].
func PickOption[A, B any](f func(A) Option[B], input iter.Seq[A]) (B, error) {
	for b := range Choose(input, f) {
		return b, nil
	}
	var zero B
	return zero, ErrEmptySequence
}

// Unzip splits a sequence of pairs into two parallel slices.
func Unzip[A, B any](input iter.Seq[Pair[A, B]]) ([]A, []B) {
	var left []A
	var right []B
	for p := range input {
		left = append(left, p.Fst)
		right = append(right, p.Snd)
	}
	return left, right
}

// Zip3 yields triples of elements taken in lockstep from the three inputs.
// Each triple is paired with a nil error. If the inputs have different
// lengths, the final pair is a zero Triple with ErrLengthMismatch.
func Zip3[A, B, C any](input1 iter.Seq[A], input2 iter.Seq[B], input3 iter.Seq[C]) iter.Seq2[Triple[A, B, C], error] {
	return func(yield func(Triple[A, B, C], error) bool) {
		e1 := NewEnumerator(input1)
		defer e1.Close()
		e2 := NewEnumerator(input2)
		defer e2.Close()
		e3 := NewEnumerator(input3)
		defer e3.Close()
		for {
			moved1, moved2, moved3 := e1.MoveNext(), e2.MoveNext(), e3.MoveNext()
			if moved1 && moved2 && moved3 {
				if !yield(Triple[A, B, C]{Fst: e1.Current(), Snd: e2.Current(), Thd: e3.Current()}, nil) {
					return
				}
				continue
			}
			if moved1 != moved2 || moved1 != moved3 {
				yield(Triple[A, B, C]{}, ErrLengthMismatch)
			}
			return
		}
	}
}

// FoldAndChoose threads state through input. For each element f returns the
// next state and an optional element to retain. The result is the final
// state with the retained elements in order.
func FoldAndChoose[S, B any](f func(S, B) (S, Option[B]), initial S, input iter.Seq[B]) (S, []B) {
	state := initial
	var retained []B
	for b := range input {
		var o Option[B]
		state, o = f(state, b)
		if o.isSome {
			retained = append(retained, o.value)
		}
	}
	return state, retained
}

// Unique yields each distinct element of input once, at its first occurrence.
func Unique[A comparable](input iter.Seq[A]) iter.Seq[A] {
	return UniqueBy(input, func(a A) A { return a })
}

// UniqueBy yields the first element of input for each distinct key.
func UniqueBy[A any, K comparable](input iter.Seq[A], key func(A) K) iter.Seq[A] {
	return func(yield func(A) bool) {
		seen := make(map[K]struct{})
		for a := range input {
			k := key(a)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(a) {
				return
			}
		}
	}
}

// Repeat yields f(0), f(1), ..., f(n-1).
func Repeat[T any](f func(int) T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range n {
			if !yield(f(i)) {
				return
			}
		}
	}
}

// RepeatForever yields f(0), f(1), ... without end.
func RepeatForever[T any](f func(int) T) Infinite[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(f(i)) {
				return
			}
		}
	}
}

// TakeNAndYield pulls up to n elements from input into a slice and returns
// them together with the remainder of the same pull as a [OneShot].
// The pull stays open until the remainder has been ranged over or
// discarded, so callers that only need the head should Discard it:
//
//	head, rest := TakeNAndYield(seq, n)
//	defer rest.Discard()
func TakeNAndYield[T any](input iter.Seq[T], n int) ([]T, *OneShot[T]) {
	var head []T
	if n <= 0 {
		return head, Once(func(func(T) bool) {})
	}
	e := NewEnumerator(input)
	for len(head) < n && e.MoveNext() {
		head = append(head, e.Current())
	}
	return head, onceReleasing(e.rest(), e.Close)
}

// FindLast returns the last element of list satisfying pred.
// Returns ErrNotFound if there is none.
func FindLast[A any](pred func(A) bool, list []A) (A, error) {
	for i := len(list) - 1; i >= 0; i-- {
		if pred(list[i]) {
			return list[i], nil
		}
	}
	var zero A
	return zero, ErrNotFound
}

// Join formats each element of input with fn and joins them with sep.
func Join[T any](sep string, input iter.Seq[T], fn func(T) string) string {
	var b strings.Builder
	first := true
	for v := range input {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(fn(v))
	}
	return b.String()
}

// Between reports whether lower < v < upper.
func Between[T constraints.Ordered](lower, upper, v T) bool {
	return lower < v && v < upper
}
