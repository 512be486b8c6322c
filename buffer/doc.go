// Package buffer implements the pure, rune-accurate model of a single-line
// editable field: text, caret, selection, undo history, and change records.
//
// Offsets are 0-based rune indexes. Ranges are half-open: [Start, End).
// Every effective text mutation is reported synchronously to Options.OnChange;
// observers may write back into the buffer from inside the callback.
package buffer
