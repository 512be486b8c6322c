package numfmt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeField notifies its watcher on every write, like a text widget whose
// change listener stays attached during programmatic updates.
type fakeField struct {
	text     string
	caret    int
	w        *Watcher
	writes   int
	panicOut bool
}

func (f *fakeField) Text() string { return f.text }
func (f *fakeField) Caret() int   { return f.caret }

func (f *fakeField) Replace(text string, caret int) {
	if f.panicOut {
		panic("write failed")
	}
	f.text, f.caret = text, caret
	f.writes++
	f.w.AfterTextChanged(f)
}

func (f *fakeField) typeAt(s string, caret int) {
	f.text, f.caret = s, caret
	f.w.AfterTextChanged(f)
}

func newFakeField(t *testing.T, cfg Config) (*fakeField, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := &fakeField{}
	f.w = NewWatcher(cfg, WithLogger(log))
	return f, &logs
}

func TestWatcher_FormatsAndRemembersPrevious(t *testing.T) {
	f, _ := newFakeField(t, comma)

	for _, s := range []string{"9", "99", "999"} {
		f.typeAt(s, len(s))
	}
	require.Equal(t, "999", f.text)
	require.Equal(t, "999", f.w.Previous())

	f.typeAt("9999", 4)
	require.Equal(t, "9,999", f.text)
	require.Equal(t, 5, f.caret)
	require.Equal(t, "9999", f.w.Previous())
}

func TestWatcher_WriteBackIsNotReentrant(t *testing.T) {
	f, _ := newFakeField(t, comma)

	f.typeAt("1234567", 7)
	require.Equal(t, "1,234,567", f.text)
	require.Equal(t, 1, f.writes)
	require.False(t, f.w.Formatting())
}

func TestWatcher_NotANumberLeavesFieldUntouched(t *testing.T) {
	f, logs := newFakeField(t, comma)
	f.typeAt("12", 2)
	writes := f.writes

	f.typeAt("1-2", 2)
	require.Equal(t, "1-2", f.text)
	require.Equal(t, 2, f.caret)
	require.Equal(t, writes, f.writes)
	require.Equal(t, "12", f.w.Previous())
	require.Contains(t, logs.String(), "skipping non-numeric text")
}

func TestWatcher_RecoversFromPanickingField(t *testing.T) {
	f, logs := newFakeField(t, comma)
	f.panicOut = true

	require.NotPanics(t, func() { f.typeAt("1000", 4) })
	require.Equal(t, "1000", f.text)
	require.Equal(t, "", f.w.Previous())
	require.False(t, f.w.Formatting())
	require.Contains(t, logs.String(), "format pass failed")

	f.panicOut = false
	f.typeAt("1000", 4)
	require.Equal(t, "1,000", f.text)
}

func TestWatcher_Reset(t *testing.T) {
	f, _ := newFakeField(t, Config{})
	require.Equal(t, DefaultConfig(), f.w.Config())

	f.w.Reset("1,000")
	require.Equal(t, "1,000", f.w.Previous())

	var nilField Field
	require.NotPanics(t, func() { f.w.AfterTextChanged(nilField) })
}
