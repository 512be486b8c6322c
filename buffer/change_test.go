package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("1", Options{})

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.DeleteForward() // no-op at EOL
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutation")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("13", Options{})
	b.SetCursor(1)
	v := b.Version()

	b.InsertText("2")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.Source, ChangeSourceLocal; got != want {
		t.Fatalf("source=%v, want %v", got, want)
	}
	if got, want := ch.VersionBefore, v; got != want {
		t.Fatalf("version before=%d, want %d", got, want)
	}
	if got, want := ch.VersionAfter, v+1; got != want {
		t.Fatalf("version after=%d, want %d", got, want)
	}
	if got, want := ch.CursorBefore, 1; got != want {
		t.Fatalf("cursor before=%d, want %d", got, want)
	}
	if got, want := ch.CursorAfter, 2; got != want {
		t.Fatalf("cursor after=%d, want %d", got, want)
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	e := ch.AppliedEdits[0]
	if e.RangeBefore != (Range{Start: 1, End: 1}) || e.RangeAfter != (Range{Start: 1, End: 2}) {
		t.Fatalf("unexpected ranges: %+v", e)
	}
	if e.InsertText != "2" || e.DeletedText != "" {
		t.Fatalf("unexpected edit text: %+v", e)
	}
}

func TestBuffer_OnChange_ReportsTextMutationsOnly(t *testing.T) {
	var got []Change
	b := New("12", Options{OnChange: func(_ *Buffer, ch Change) {
		got = append(got, ch)
	}})

	b.SetCursor(0)
	b.Move(Move{Unit: MoveRune, Dir: DirRight})
	b.SetSelection(Range{Start: 0, End: 2})
	if len(got) != 0 {
		t.Fatalf("events after cursor/selection updates: got %d, want 0", len(got))
	}

	b.InsertText("5")
	if len(got) != 1 {
		t.Fatalf("events after insert: got %d, want 1", len(got))
	}
	b.Replace("5", 0)
	if len(got) != 1 {
		t.Fatalf("events after caret-only replace: got %d, want 1", len(got))
	}
	b.Undo()
	if len(got) != 2 || got[1].Source != ChangeSourceHistory {
		t.Fatalf("expected history event, got %+v", got)
	}
}

func TestBuffer_OnChange_NestedWriteBack(t *testing.T) {
	var sources []ChangeSource
	b := New("", Options{})
	b.opt.OnChange = func(b *Buffer, ch Change) {
		sources = append(sources, ch.Source)
		if ch.Source == ChangeSourceLocal && b.Text() == "1000" {
			b.Replace("1,000", 5)
		}
	}

	b.SetText("1000")
	if got, want := b.Text(), "1,000"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if len(sources) != 2 || sources[0] != ChangeSourceLocal || sources[1] != ChangeSourceFormat {
		t.Fatalf("unexpected event sources: %v", sources)
	}
	ch, _ := b.LastChange()
	if got, want := ch.Source, ChangeSourceFormat; got != want {
		t.Fatalf("last change source=%v, want %v", got, want)
	}
}

func TestChangeSource_String(t *testing.T) {
	cases := map[ChangeSource]string{
		ChangeSourceLocal:   "local",
		ChangeSourceFormat:  "format",
		ChangeSourceHistory: "history",
		ChangeSource(9):     "unknown",
	}
	for src, want := range cases {
		if got := src.String(); got != want {
			t.Fatalf("String(%d)=%q, want %q", src, got, want)
		}
	}
}
