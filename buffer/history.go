package buffer

type bufferSnapshot struct {
	text   string
	cursor int
	sel    selectionState
}

// undoEntry is one undoable step: a local edit plus any formatter write-back
// that ran while the edit was being reported.
type undoEntry struct {
	before bufferSnapshot
	// discarded is the redo stack the edit cleared. It comes back if the
	// formatter absorbs the edit.
	discarded []bufferSnapshot
}

type historyState struct {
	undo []undoEntry
	redo []bufferSnapshot

	// open is set while OnChange runs for a local edit; a Replace in that
	// window belongs to the edit's entry.
	open bool
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		text:   b.Text(),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.text = []rune(s.text)
	b.cursor = ClampOffset(s.cursor, len(b.text))
	b.sel = selectionState{}
	if !s.sel.active {
		return
	}
	anchor := ClampOffset(s.sel.anchor, len(b.text))
	end := ClampOffset(s.sel.end, len(b.text))
	if anchor != end {
		b.sel = selectionState{active: true, anchor: anchor, end: end}
	}
}

func (b *Buffer) pushUndo(e undoEntry) {
	b.hist.undo = append(b.hist.undo, e)
	if over := len(b.hist.undo) - b.opt.HistoryLimit; over > 0 {
		b.hist.undo = b.hist.undo[over:]
	}
}

// recordEdit opens an undo entry for a local edit whose prior state is prev.
func (b *Buffer) recordEdit(prev bufferSnapshot) {
	if b.opt.HistoryLimit <= 0 {
		return
	}
	b.pushUndo(undoEntry{before: prev, discarded: b.hist.redo})
	b.hist.redo = nil
	b.hist.open = true
}

func (b *Buffer) closeEdit() { b.hist.open = false }

// foldFormat merges a formatter write-back into the open entry. If the
// formatted text equals the text before the edit (a separator typed and then
// stripped, say) the keystroke left nothing to undo, so the entry is dropped
// and the redo stack it cleared is put back.
func (b *Buffer) foldFormat() {
	n := len(b.hist.undo)
	if !b.hist.open || n == 0 {
		return
	}
	top := b.hist.undo[n-1]
	if top.before.text != b.Text() {
		return
	}
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = top.discarded
	b.hist.open = false
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo reverts the last local edit together with its formatting.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	e := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]

	cur := b.snapshot()
	b.hist.redo = append(b.hist.redo, cur)
	b.travel(cur, e.before)
	return true
}

// Redo reapplies the last undone edit in its formatted form.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	next := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]

	cur := b.snapshot()
	if b.opt.HistoryLimit > 0 {
		b.pushUndo(undoEntry{before: cur})
	}
	b.travel(cur, next)
	return true
}

func (b *Buffer) travel(from, to bufferSnapshot) {
	change := b.beginChange(ChangeSourceHistory)
	b.restore(to)
	b.version++
	if applied, ok := replacementAppliedEdit(from.text, to.text); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
}
