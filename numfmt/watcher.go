package numfmt

import (
	stderrors "errors"
	"fmt"
	"log/slog"
)

// Field is the editable text a Watcher is bound to. Caret is a rune offset.
//
// Replace must set the text and then the caret as one update from the
// field's point of view.
type Field interface {
	Text() string
	Caret() int
	Replace(text string, caret int)
}

type WatcherOption func(*Watcher)

// WithLogger sets the logger used for recovered failures.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher reformats one field after each text change.
//
// A Watcher is bound to exactly one field and is not safe for concurrent use.
type Watcher struct {
	cfg      Config
	log      *slog.Logger
	previous string
	suppress bool
}

func NewWatcher(cfg Config, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		cfg: cfg.WithDefaults(),
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Watcher) Config() Config { return w.cfg }

// Previous returns the text remembered from the last successful pass.
func (w *Watcher) Previous() string { return w.previous }

// Reset replaces the remembered previous text, e.g. when the host loads a
// new value into the field without going through the watcher.
func (w *Watcher) Reset(previous string) { w.previous = previous }

// Formatting reports whether a write-back is in progress.
func (w *Watcher) Formatting() bool { return w.suppress }

// AfterTextChanged formats the field's current text and writes the result
// back. Calls made while the write-back is in progress return immediately.
//
// It never panics and never leaves the field half-written: a parse failure
// or any recovered panic leaves the field as it was.
func (w *Watcher) AfterTextChanged(f Field) {
	if w.suppress || f == nil {
		return
	}
	w.suppress = true
	defer func() {
		w.suppress = false
		if r := recover(); r != nil {
			w.log.Error("numfmt: format pass failed", "panic", fmt.Sprint(r))
		}
	}()

	cur := f.Text()
	res, err := Format(w.cfg, EditState{Previous: w.previous, Current: cur, Caret: f.Caret()})
	if err != nil {
		if stderrors.Is(err, ErrNotANumber) {
			w.log.Debug("numfmt: skipping non-numeric text", "text", cur, "error", err)
		} else {
			w.log.Error("numfmt: format failed", "text", cur, "error", err)
		}
		return
	}
	f.Replace(res.Text, res.Caret)
	w.previous = cur
}
