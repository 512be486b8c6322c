package buffer

import "testing"

func TestNew_CursorAtEnd(t *testing.T) {
	b := New("1,234", Options{})
	if got, want := b.Text(), "1,234"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := b.Len(), 5; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if got := b.Version(); got != 0 {
		t.Fatalf("version=%d, want 0", got)
	}
}

func TestBuffer_SetCursor_ClampsAndSkipsNoOps(t *testing.T) {
	b := New("123", Options{})
	v := b.Version()

	b.SetCursor(3)
	if got := b.Version(); got != v {
		t.Fatalf("version after no-op=%d, want %d", got, v)
	}

	b.SetCursor(-5)
	if got := b.Cursor(); got != 0 {
		t.Fatalf("cursor=%d, want 0", got)
	}
	b.SetCursor(99)
	if got := b.Cursor(); got != 3 {
		t.Fatalf("cursor=%d, want 3", got)
	}
	if got := b.Version(); got != v+2 {
		t.Fatalf("version=%d, want %d", got, v+2)
	}
}

func TestBuffer_SetSelection(t *testing.T) {
	b := New("12345", Options{})
	b.SetSelection(Range{Start: 4, End: 1})

	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected active selection")
	}
	if r != (Range{Start: 1, End: 4}) {
		t.Fatalf("selection=%v, want [1,4)", r)
	}
	raw, _ := b.SelectionRaw()
	if raw != (Range{Start: 4, End: 1}) {
		t.Fatalf("raw selection=%v, want [4,1)", raw)
	}
	if got, want := b.SelectedText(), "234"; got != want {
		t.Fatalf("selected=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != 1 {
		t.Fatalf("cursor=%d, want 1", got)
	}

	b.SetSelection(Range{Start: 2, End: 2})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected empty selection to be inactive")
	}

	b.SetSelection(Range{Start: 0, End: 2})
	b.ClearSelection()
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestNormalizeAndClampRange(t *testing.T) {
	r := NormalizeRange(Range{Start: 5, End: 2})
	if r != (Range{Start: 2, End: 5}) {
		t.Fatalf("unexpected range: %#v", r)
	}
	if r2 := NormalizeRange(r); r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
	if got := (Range{Start: 5, End: 2}).Len(); got != 3 {
		t.Fatalf("len=%d, want 3", got)
	}
	if got := ClampRange(Range{Start: -1, End: 10}, 4); got != (Range{Start: 0, End: 4}) {
		t.Fatalf("clamped=%v, want [0,4)", got)
	}
	if got := ClampOffset(3, -1); got != 0 {
		t.Fatalf("clamp offset=%d, want 0", got)
	}
}
