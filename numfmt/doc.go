// Package numfmt implements live thousands grouping for editable numeric
// text.
//
// Format is a pure function: given the previous and current text of a field
// and the caret offset (in runes), it returns the grouped text and the caret
// offset to restore. Watcher wraps Format with the per-field state a host
// needs: the previous-text memory and a suppress flag so that writing the
// formatted result back into the field does not trigger another pass.
//
// Only the integer part is grouped. Everything from the first decimal
// separator onward is carried through unchanged.
package numfmt
