// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"iter"
	"sync/atomic"
)

// OneShot wraps a sequence that can be ranged over at most once.
// Subsequent attempts panic (Seq) or report false (TryRange).
//
// A OneShot may own a resource tied to its sequence, such as the pull
// behind the remainder returned by [TakeNAndYield]. Ranging over the
// sequence releases it when the range ends; [OneShot.Discard] releases it
// without ranging. Callers that may skip the range should defer Discard.
type OneShot[T any] struct {
	state   atomic.Uint32
	seq     iter.Seq[T]
	release func()
}

const (
	oneShotFresh uint32 = iota
	oneShotRanged
	oneShotDiscarded
)

// Once creates a one-shot sequence from seq.
func Once[T any](seq iter.Seq[T]) *OneShot[T] {
	return &OneShot[T]{seq: seq}
}

// onceReleasing creates a one-shot sequence that calls release when the
// range over seq ends, or on Discard if seq is never ranged over.
func onceReleasing[T any](seq iter.Seq[T], release func()) *OneShot[T] {
	return &OneShot[T]{seq: seq, release: release}
}

// Seq returns the wrapped sequence.
// Ranging over it a second time, or after Discard, panics.
func (o *OneShot[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !o.TryRange(yield) {
			panic("fnutil: one-shot sequence already used")
		}
	}
}

// TryRange ranges over the sequence with yield.
// Returns false without calling yield if the sequence was already used.
func (o *OneShot[T]) TryRange(yield func(T) bool) bool {
	if !o.state.CompareAndSwap(oneShotFresh, oneShotRanged) {
		return false
	}
	if o.release != nil {
		defer o.release()
	}
	o.seq(yield)
	return true
}

// Discard marks the sequence as used without ranging over it and releases
// what it holds. Discard after a range, or a second Discard, does nothing.
func (o *OneShot[T]) Discard() {
	if o.state.CompareAndSwap(oneShotFresh, oneShotDiscarded) && o.release != nil {
		o.release()
	}
}
