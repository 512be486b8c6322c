package numfmt

import (
	stderrors "errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrNotANumber reports that the integer part of the text could not be parsed
// after removing thousand separators. It is recoverable: the input is
// returned unchanged alongside it.
var ErrNotANumber = stderrors.New("numfmt: not a number")

// EditState is the field state observed after one edit.
//
// Caret is a rune offset into Current.
type EditState struct {
	Previous string
	Current  string
	Caret    int
}

// Result is the text and caret to write back into the field.
type Result struct {
	Text  string
	Caret int
}

// Format groups the integer part of st.Current and repairs the caret.
//
// If the caret was at the end of the text, it stays at the end of the grouped
// text. Otherwise it keeps its offset, except when the edit grew the text and
// pushed the integer digit count past a group boundary: the new separator then
// lands just left of the caret and the caret moves over it.
//
// On a parse failure the returned Result carries st.Current and st.Caret
// unchanged and the error matches ErrNotANumber.
func Format(cfg Config, st EditState) (Result, error) {
	cur := []rune(st.Current)
	unchanged := Result{Text: st.Current, Caret: st.Caret}
	interior := st.Caret != len(cur)

	intPart, frac := cur, []rune(nil)
	decIdx := indexRune(cur, cfg.Decimal)
	if decIdx >= 0 {
		intPart, frac = cur[:decIdx], cur[decIdx:]
	}

	digits := Strip(string(intPart), cfg.Thousand)
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return unchanged, errors.Wrapf(ErrNotANumber, "integer part %q", digits)
	}

	text := Group(v, cfg.Thousand) + string(frac)
	n := utf8.RuneCountInString(text)
	if !interior {
		return Result{Text: text, Caret: n}, nil
	}

	caret := st.Caret
	grew := len(cur) > utf8.RuneCountInString(st.Previous)
	d := utf8.RuneCountInString(digits)
	if grew && d != 1 && d%3 == 1 && st.Caret != decIdx {
		caret++
	}
	return Result{Text: text, Caret: clamp(caret, 0, n)}, nil
}

// Group renders v in base 10 with sep between groups of three digits,
// counted from the least significant digit. A leading '-' is never followed
// by a separator.
func Group(v int64, sep rune) string {
	s := strconv.FormatInt(v, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	var sb strings.Builder
	sb.Grow(len(sign) + len(s) + (len(s)-1)/3*utf8.RuneLen(sep))
	sb.WriteString(sign)
	sb.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		sb.WriteRune(sep)
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// Strip removes every occurrence of sep from s.
func Strip(s string, sep rune) string {
	if !strings.ContainsRune(s, sep) {
		return s
	}
	return strings.ReplaceAll(s, string(sep), "")
}

// Parse reads the integer value and the fraction suffix (including the
// decimal separator, empty if absent) out of grouped text.
func Parse(cfg Config, text string) (int64, string, error) {
	intPart, frac := text, ""
	if i := strings.IndexRune(text, cfg.Decimal); i >= 0 {
		intPart, frac = text[:i], text[i:]
	}
	digits := Strip(intPart, cfg.Thousand)
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, "", errors.Wrapf(ErrNotANumber, "integer part %q", digits)
	}
	return v, frac, nil
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
