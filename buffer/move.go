package buffer

import "unicode"

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	// MoveGroup jumps over a run of digits, so in grouped numbers it moves
	// one digit group at a time.
	MoveGroup
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, updates selection anchor/end; if false clears selection
}

func (b *Buffer) Move(m Move) {
	prevCursor := b.cursor
	prevSel := b.sel

	nextCursor := ClampOffset(b.moveCursor(prevCursor, m), len(b.text))

	nextSel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != nextCursor {
			nextSel = selectionState{active: true, anchor: anchor, end: nextCursor}
		}
	}

	if prevCursor == nextCursor && selectionStateEqual(prevSel, nextSel) {
		return
	}

	b.cursor = nextCursor
	b.sel = nextSel
	b.version++
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a.active == b.active && a.anchor == b.anchor && a.end == b.end
}

func (b *Buffer) moveCursor(off int, m Move) int {
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.text)
	}

	switch m.Unit {
	case MoveRune:
		if m.Dir == DirLeft {
			return off - 1
		}
		return off + 1
	case MoveGroup:
		if m.Dir == DirLeft {
			return prevGroupBoundary(b.text, off)
		}
		return nextGroupBoundary(b.text, off)
	case MoveLine:
		if m.Dir == DirLeft {
			return 0
		}
		return len(b.text)
	default:
		return off
	}
}

// Group boundary rules:
// - skip non-digits, then skip digits
func prevGroupBoundary(text []rune, off int) int {
	i := ClampOffset(off, len(text))
	for i > 0 && !unicode.IsDigit(text[i-1]) {
		i--
	}
	for i > 0 && unicode.IsDigit(text[i-1]) {
		i--
	}
	return i
}

func nextGroupBoundary(text []rune, off int) int {
	i := ClampOffset(off, len(text))
	for i < len(text) && !unicode.IsDigit(text[i]) {
		i++
	}
	for i < len(text) && unicode.IsDigit(text[i]) {
		i++
	}
	return i
}
