package maxlen

import (
	"errors"
	"testing"
)

func TestSliceChecked(t *testing.T) {
	v, err := Slice([]int{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 || v.Max() != 3 {
		t.Fatalf("len=%d max=%d", v.Len(), v.Max())
	}
	if v.At(1) != 2 {
		t.Fatalf("At(1) = %d", v.At(1))
	}

	_, err = Slice([]int{1, 2, 3, 4}, 3)
	if err == nil {
		t.Fatal("expected error")
	}
	var le *LengthExceeded
	if !errors.As(err, &le) {
		t.Fatalf("expected *LengthExceeded, got %v", err)
	}
	if le.Length != 4 || le.Maximum != 3 {
		t.Fatalf("got {%d %d}, want {4 3}", le.Length, le.Maximum)
	}
	if !errors.Is(err, ErrLengthExceeded) {
		t.Fatal("expected errors.Is match")
	}
	if want := "length of 4 exceeded (3)"; err.Error() != want {
		t.Fatalf("rendering = %q, want %q", err.Error(), want)
	}
}

func TestSliceZeroBound(t *testing.T) {
	v, err := Slice([]byte{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsEmpty() {
		t.Fatal("expected empty")
	}
	if _, err := Slice([]byte{1}, 0); err == nil {
		t.Fatal("expected error")
	}
}

func TestSliceSetAliases(t *testing.T) {
	backing := []int{1, 2, 3}
	v := SliceUnchecked(backing, 10)
	v.Set(0, 9)
	if backing[0] != 9 {
		t.Fatalf("backing[0] = %d, want 9", backing[0])
	}
	if v.Len() != 3 {
		t.Fatal("element write changed length")
	}
}

func TestSliceSub(t *testing.T) {
	v, err := Slice([]int{1, 2, 3, 4, 5}, 5)
	if err != nil {
		t.Fatal(err)
	}
	sub := v.Sub(1, 4)
	if sub.Len() != 3 || sub.Max() != 5 {
		t.Fatalf("len=%d max=%d", sub.Len(), sub.Max())
	}
	if sub.At(0) != 2 || sub.At(2) != 4 {
		t.Fatalf("sub content wrong: %v", sub.Raw())
	}
	// A sub-view of a sub-view stays within the same bound.
	if got := sub.Sub(0, 1).Max(); got != 5 {
		t.Fatalf("nested sub max = %d", got)
	}
}

func TestSliceWiden(t *testing.T) {
	v, err := Slice([]int{1, 2}, 2)
	if err != nil {
		t.Fatal(err)
	}
	w := v.Widen(100)
	if w.Max() != 100 || w.Len() != 2 {
		t.Fatalf("max=%d len=%d", w.Max(), w.Len())
	}
	if !SliceEqual(v, w) {
		t.Fatal("widen changed content")
	}
	// Same bound is allowed.
	if got := v.Widen(2).Max(); got != 2 {
		t.Fatalf("max = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	v.Widen(1)
}

func TestSliceRebound(t *testing.T) {
	v, err := Slice([]int{1, 2, 3}, 10)
	if err != nil {
		t.Fatal(err)
	}
	n, err := v.Rebound(3)
	if err != nil {
		t.Fatal(err)
	}
	if n.Max() != 3 {
		t.Fatalf("max = %d", n.Max())
	}
	if _, err := v.Rebound(2); err == nil {
		t.Fatal("expected error")
	}
}

func TestSliceMaterialize(t *testing.T) {
	backing := []int{1, 2, 3}
	v := SliceUnchecked(backing, 5)
	owned := v.Materialize()
	if owned.Len() != 3 || owned.Max() != 5 {
		t.Fatalf("len=%d max=%d", owned.Len(), owned.Max())
	}
	backing[0] = 99
	if owned.Borrow().At(0) != 1 {
		t.Fatal("materialize did not copy")
	}
}

func TestSliceEqual(t *testing.T) {
	a := SliceUnchecked([]int{1, 2}, 5)
	b := SliceUnchecked([]int{1, 2}, 9)
	c := SliceUnchecked([]int{1, 3}, 5)
	if !SliceEqual(a, b) {
		t.Fatal("bounds should not participate in equality")
	}
	if SliceEqual(a, c) {
		t.Fatal("expected inequality")
	}
	if SliceEqual(a, a.Sub(0, 1)) {
		t.Fatal("length mismatch should be unequal")
	}
}
