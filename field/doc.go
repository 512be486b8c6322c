// Package field provides a Bubble Tea single-line numeric input backed by the
// buffer package and formatted live by numfmt.
//
// Every text edit goes through a numfmt.Watcher bound to the field's buffer,
// so digits are grouped as they are typed and the caret stays where the user
// expects it. Keystrokes come from the terminal; an on-screen keyboard or any
// other producer can drive the same model by sending tea.KeyMsg values.
package field
