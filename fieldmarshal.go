// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set is an unordered collection of distinct values.
type Set[A comparable] map[A]struct{}

// SetOf builds a Set from input.
func SetOf[A comparable](input iter.Seq[A]) Set[A] {
	s := make(Set[A])
	for a := range input {
		s[a] = struct{}{}
	}
	return s
}

// Has reports whether a is in s.
func (s Set[A]) Has(a A) bool {
	_, ok := s[a]
	return ok
}

// Len returns the number of elements in s.
func (s Set[A]) Len() int { return len(s) }

// All yields the elements of s in unspecified order.
func (s Set[A]) All() iter.Seq[A] { return maps.Keys(s) }

// SortedSlice returns the elements of an ordered Set in ascending order.
func SortedSlice[A cmp.Ordered](s Set[A]) []A {
	return slices.Sorted(maps.Keys(s))
}

// DiscriminatedFieldContainer is the result of [PartitionWithVerify].
type DiscriminatedFieldContainer[A comparable] struct {
	// MandatoryPresent holds the mandatory fields found in the input.
	MandatoryPresent Set[A]
	// OptionalPresent holds the optional fields found in the input.
	OptionalPresent Set[A]
	// AWOL holds the mandatory fields missing from the input.
	AWOL Set[A]
	// Unexpected holds input fields that are neither mandatory nor optional.
	Unexpected Set[A]
}

// AreAllMandatoryFieldsPresent reports whether no mandatory field is missing.
func (c *DiscriminatedFieldContainer[A]) AreAllMandatoryFieldsPresent() bool {
	return len(c.AWOL) == 0
}

// PartitionWithVerify classifies the fields of input against the mandatory
// and optional field declarations.
//
// Returns ErrInvalidArgument, naming the offending fields, if a field is
// declared both mandatory and optional.
func PartitionWithVerify[A comparable](input, mandatory, optional iter.Seq[A]) (*DiscriminatedFieldContainer[A], error) {
	major := SetOf(mandatory)
	minor := SetOf(optional)
	var overlap []string
	for f := range minor {
		if major.Has(f) {
			overlap = append(overlap, fmt.Sprint(f))
		}
	}
	if len(overlap) > 0 {
		slices.Sort(overlap)
		return nil, invalidArgument("fields cannot be both required and optional: %s", strings.Join(overlap, ", "))
	}

	c := &DiscriminatedFieldContainer[A]{
		MandatoryPresent: make(Set[A]),
		OptionalPresent:  make(Set[A]),
		AWOL:             make(Set[A]),
		Unexpected:       make(Set[A]),
	}
	present := make(Set[A])
	for f := range input {
		present[f] = struct{}{}
		switch {
		case major.Has(f):
			c.MandatoryPresent[f] = struct{}{}
		case minor.Has(f):
			c.OptionalPresent[f] = struct{}{}
		default:
			c.Unexpected[f] = struct{}{}
		}
	}
	for f := range major {
		if !present.Has(f) {
			c.AWOL[f] = struct{}{}
		}
	}
	return c, nil
}
