package field

import "log/slog"

// Config configures the field Model.
type Config struct {
	// Initial text. It is formatted on construction.
	Text string

	// Separators. Zero values fall back to '.' and ','.
	Decimal  rune
	Thousand rune

	// AllowNegative accepts a leading '-'.
	AllowNegative bool
	ReadOnly      bool

	// Rendering options. Width is the total cell width the field is
	// right-aligned in; 0 means no padding.
	Prompt      string
	Placeholder string
	Width       int
	Style       Style

	// Forwarded to buffer.Options.
	HistoryLimit int

	// KeyMap defaults to DefaultKeyMap when left empty.
	KeyMap    KeyMap
	Clipboard Clipboard

	// OnChange is called after each update that changed the text, caret, or
	// selection, once formatting has settled.
	OnChange func(ChangeEvent)

	// Logger receives recovered formatting failures. Defaults to
	// slog.Default().
	Logger *slog.Logger
}
