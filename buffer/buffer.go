package buffer

type Options struct {
	HistoryLimit int // default: 1000

	// OnChange is called after every effective text mutation, once the
	// buffer is consistent again. Cursor-only and selection-only updates
	// are not reported.
	OnChange func(b *Buffer, ch Change)
}

type selectionState struct {
	active bool
	anchor int
	end    int
}

// Buffer is the pure field state: text, caret, and selection.
type Buffer struct {
	text    []rune
	version uint64

	cursor int
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	rs := []rune(stripLineBreaks(text))
	return &Buffer{
		text:    rs,
		version: 0,
		cursor:  len(rs),
		sel:     selectionState{},
		opt:     opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

// Caret is Cursor under the name text watchers use.
func (b *Buffer) Caret() int { return b.cursor }

func (b *Buffer) SetCursor(off int) {
	next := ClampOffset(off, len(b.text))
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns the raw selection anchor/end without normalization.
//
// This is useful for UI layers that need to preserve the selection direction
// while still treating empty selections as inactive.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r and places the caret at r.End.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.text))
	next := selectionState{
		active: true,
		anchor: clamped.Start,
		end:    clamped.End,
	}
	if clamped.IsEmpty() {
		next = selectionState{}
	}
	if next == b.sel && b.cursor == clamped.End {
		return
	}

	b.sel = next
	b.cursor = clamped.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text under the active selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[r.Start:r.End])
}
