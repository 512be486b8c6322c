package buffer

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
// Line breaks are dropped: the field is single-line.
func (b *Buffer) InsertText(s string) {
	s = stripLineBreaks(s)
	if s == "" {
		if _, ok := b.Selection(); ok {
			b.DeleteSelection()
		}
		return
	}

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(ChangeSourceLocal, r, s)
}

// InsertRune inserts a single rune at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == 0 {
		return
	}
	b.edit(ChangeSourceLocal, Range{Start: b.cursor - 1, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	if b.cursor == len(b.text) {
		return
	}
	b.edit(ChangeSourceLocal, Range{Start: b.cursor, End: b.cursor + 1}, "")
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(ChangeSourceLocal, r, "")
}

// SetText replaces the whole text as a local edit and moves the cursor to the
// end. It is undoable and reported like any other edit.
func (b *Buffer) SetText(s string) {
	s = stripLineBreaks(s)
	b.edit(ChangeSourceLocal, Range{Start: 0, End: len(b.text)}, s)
}

// Replace swaps in text and caret as one mutation with ChangeSourceFormat.
//
// It never pushes an undo entry. Called from OnChange during a local edit,
// it joins that edit's entry, so one Undo reverts both.
func (b *Buffer) Replace(text string, caret int) {
	prevText := b.Text()
	next := []rune(stripLineBreaks(text))
	caret = ClampOffset(caret, len(next))
	if string(next) == prevText && caret == b.cursor && !b.sel.active {
		return
	}

	change := b.beginChange(ChangeSourceFormat)
	b.text = next
	b.cursor = caret
	b.sel = selectionState{}
	b.version++
	b.foldFormat()
	if applied, ok := replacementAppliedEdit(prevText, string(next)); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
}

func (b *Buffer) edit(source ChangeSource, r Range, text string) {
	prev := b.snapshot()
	change := b.beginChange(source)

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.recordEdit(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	b.closeEdit()
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor int, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.text)))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deleted := string(b.text[r.Start:r.End])
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	ins := []rune(text)
	out := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	out = append(out, b.text[:r.Start]...)
	out = append(out, ins...)
	out = append(out, b.text[r.End:]...)
	b.text = out

	nextCursor = r.Start + len(ins)
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deleted,
	}
	return nextCursor, applied, true
}

func stripLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}
