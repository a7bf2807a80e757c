// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair with inferred type arguments.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	Fst A
	Snd B
	Thd C
}

// MakeTriple builds a Triple with inferred type arguments.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{Fst: a, Snd: b, Thd: c}
}
