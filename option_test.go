// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fnutil_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/fnutil"
)

func TestOptionNone(t *testing.T) {
	o := fnutil.None[int]()
	if !o.IsNone() {
		t.Fatal("expected IsNone")
	}
	if o.IsSome() {
		t.Fatal("expected !IsSome")
	}
	_, err := o.Some()
	if !errors.Is(err, fnutil.ErrOptionValueAccess) {
		t.Fatalf("got %v, want ErrOptionValueAccess", err)
	}
}

func TestOptionZeroValueIsNone(t *testing.T) {
	var o fnutil.Option[string]
	if !o.IsNone() {
		t.Fatal("zero Option must be None")
	}
}

func TestOptionValueTypeAlwaysSome(t *testing.T) {
	o := fnutil.ToOption(0)
	if !o.IsSome() {
		t.Fatal("value types are present even when zero")
	}
	v, err := o.Some()
	if err != nil || v != 0 {
		t.Fatalf("got (%d, %v), want (0, nil)", v, err)
	}
}

func TestOptionString(t *testing.T) {
	if !fnutil.ToOption("").IsNone() {
		t.Fatal("empty string must be None")
	}
	o := fnutil.ToOption("hello")
	v, err := o.Some()
	if err != nil || v != "hello" {
		t.Fatalf("got (%q, %v), want (hello, nil)", v, err)
	}

	type name string
	if !fnutil.ToOption(name("")).IsNone() {
		t.Fatal("empty string-kinded value must be None")
	}
}

func TestOptionInterfaceHoldingString(t *testing.T) {
	o := fnutil.ToOption[any]("")
	if !o.IsSome() {
		t.Fatal("interface holding empty string must be Some")
	}
	if v, err := o.Some(); err != nil || v != "" {
		t.Fatalf("got (%v, %v), want (\"\", nil)", v, err)
	}
	if !fnutil.ToOption[any](nil).IsNone() {
		t.Fatal("nil interface must be None")
	}
	if !fnutil.ToOption[fmt.Stringer](nil).IsNone() {
		t.Fatal("nil Stringer must be None")
	}
	if !fnutil.NewOptionType[any]("").IsSome() {
		t.Fatal("OptionType of interface holding empty string must be Some")
	}
}

func TestOptionNilReferences(t *testing.T) {
	var p *int
	if !fnutil.ToOption(p).IsNone() {
		t.Fatal("nil pointer must be None")
	}
	var s []int
	if !fnutil.ToOption(s).IsNone() {
		t.Fatal("nil slice must be None")
	}
	if !fnutil.ToOption([]int{}).IsSome() {
		t.Fatal("empty non-nil slice must be Some")
	}
	var m map[string]int
	if !fnutil.ToOption(m).IsNone() {
		t.Fatal("nil map must be None")
	}
	var err error
	if !fnutil.ToOption(err).IsNone() {
		t.Fatal("nil interface must be None")
	}
	var f func()
	if !fnutil.ToOption(f).IsNone() {
		t.Fatal("nil func must be None")
	}
	x := 5
	if !fnutil.ToOption(&x).IsSome() {
		t.Fatal("non-nil pointer must be Some")
	}
}

func TestOptionOr(t *testing.T) {
	if got := fnutil.None[int]().Or(7); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := fnutil.ToOption(3).Or(7); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestBindOptionShortCircuit(t *testing.T) {
	called := false
	r := fnutil.BindOption(fnutil.None[int](), func(int) fnutil.Option[string] {
		called = true
		panic("must not be called")
	})
	if called {
		t.Fatal("f called on None")
	}
	if !r.IsNone() {
		t.Fatal("expected None")
	}
}

func TestBindOptionReturnsResultVerbatim(t *testing.T) {
	r := fnutil.BindOption(fnutil.ToOption(4), func(x int) fnutil.Option[int] {
		return fnutil.None[int]()
	})
	if !r.IsNone() {
		t.Fatal("expected None from f")
	}
	r = fnutil.BindOption(fnutil.ToOption(4), func(x int) fnutil.Option[int] {
		return fnutil.ToOption(x * 2)
	})
	if v, _ := r.Some(); v != 8 {
		t.Fatalf("got %d, want 8", v)
	}
}

func TestBindOptionDoesNotRecover(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic to propagate")
		}
	}()
	fnutil.BindOption(fnutil.ToOption(1), func(int) fnutil.Option[int] {
		panic("boom")
	})
}

func TestSelectManyOption(t *testing.T) {
	half := func(x int) fnutil.Option[int] {
		if x%2 != 0 {
			return fnutil.None[int]()
		}
		return fnutil.ToOption(x / 2)
	}
	r := fnutil.SelectManyOption(fnutil.ToOption(10), half, func(a, b int) int { return a + b })
	if v, err := r.Some(); err != nil || v != 15 {
		t.Fatalf("got (%d, %v), want (15, nil)", v, err)
	}

	r = fnutil.SelectManyOption(fnutil.ToOption(3), half, func(a, b int) int { return a + b })
	if !r.IsNone() {
		t.Fatal("expected None when binder yields None")
	}

	s := fnutil.SelectManyOption(fnutil.ToOption(2), half, func(a, b int) string { return "" })
	if !s.IsNone() {
		t.Fatal("combined empty string must normalise to None")
	}
}

func TestMapOption(t *testing.T) {
	r := fnutil.MapOption(fnutil.ToOption(2), func(x int) int { return x + 1 })
	if v, _ := r.Some(); v != 3 {
		t.Fatalf("got %d, want 3", v)
	}
	if !fnutil.MapOption(fnutil.None[int](), func(x int) int { return x }).IsNone() {
		t.Fatal("expected None")
	}
}
