// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import "iter"

// Enumerator is an explicit pull iterator over a sequence.
//
//	e := NewEnumerator(seq)
//	defer e.Close()
//	for e.MoveNext() {
//		use(e.Current())
//	}
//
// An Enumerator is not safe for concurrent use.
type Enumerator[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

// NewEnumerator starts a pull over seq. Close must be called if the
// enumerator is abandoned before MoveNext reports false.
func NewEnumerator[T any](seq iter.Seq[T]) *Enumerator[T] {
	next, stop := iter.Pull(seq)
	return &Enumerator[T]{next: next, stop: stop}
}

// MoveNext advances to the next element.
// Returns false once the sequence is exhausted or the enumerator is closed.
func (e *Enumerator[T]) MoveNext() bool {
	if e.done {
		return false
	}
	v, ok := e.next()
	if !ok {
		e.Close()
		return false
	}
	e.cur = v
	return true
}

// Current returns the element at the current position.
// Before the first MoveNext and after exhaustion it returns the last
// element seen, or the zero value.
func (e *Enumerator[T]) Current() T {
	return e.cur
}

// Close releases the underlying pull. It is safe to call more than once.
func (e *Enumerator[T]) Close() {
	if e.done {
		return
	}
	e.done = true
	e.stop()
}

// rest yields the elements not yet pulled, then closes e.
func (e *Enumerator[T]) rest() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer e.Close()
		for e.MoveNext() {
			if !yield(e.cur) {
				return
			}
		}
	}
}
