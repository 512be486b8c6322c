package numfmt

import (
	stderrors "errors"
	"unicode"
)

var (
	ErrSameSeparators = stderrors.New("numfmt: decimal and thousand separators must differ")
	ErrDigitSeparator = stderrors.New("numfmt: separators must not be digits")
)

// Config holds the two separator runes bound to a field.
type Config struct {
	Decimal  rune
	Thousand rune
}

func DefaultConfig() Config {
	return Config{Decimal: '.', Thousand: ','}
}

// Validate reports whether c is usable. Format does not call it; results for
// an invalid Config are unspecified.
func (c Config) Validate() error {
	if c.Decimal == c.Thousand {
		return ErrSameSeparators
	}
	if unicode.IsDigit(c.Decimal) || unicode.IsDigit(c.Thousand) {
		return ErrDigitSeparator
	}
	return nil
}

// WithDefaults fills zero runes. A zero rune takes the default unless that
// would collide with the other separator, in which case the two defaults swap.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	switch {
	case c.Decimal == 0 && c.Thousand == 0:
		return def
	case c.Decimal == 0:
		c.Decimal = def.Decimal
		if c.Thousand == def.Decimal {
			c.Decimal = def.Thousand
		}
	case c.Thousand == 0:
		c.Thousand = def.Thousand
		if c.Decimal == def.Thousand {
			c.Thousand = def.Decimal
		}
	}
	return c
}
