package field

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/livenum/internal/grapheme"
)

type runKind uint8

const (
	runText runKind = iota
	runSelection
	runCursor
)

func (m Model) View() string {
	if m.buf == nil {
		return ""
	}
	st := m.cfg.Style

	prompt := ""
	if m.cfg.Prompt != "" {
		prompt = st.Prompt.Render(m.cfg.Prompt)
	}
	body, bodyWidth := m.renderBody()

	pad := ""
	if m.cfg.Width > 0 {
		if n := m.cfg.Width - lipgloss.Width(prompt) - bodyWidth; n > 0 {
			pad = strings.Repeat(" ", n)
		}
	}
	return st.Frame.Render(prompt + pad + body)
}

// renderBody renders the text with selection and cursor applied, and returns
// its width in cells.
func (m Model) renderBody() (string, int) {
	st := m.cfg.Style
	text := []rune(m.buf.Text())

	if len(text) == 0 && m.cfg.Placeholder != "" {
		ph := []rune(m.cfg.Placeholder)
		if !m.focused {
			return st.Placeholder.Render(string(ph)), grapheme.Width(string(ph))
		}
		return st.Cursor.Render(string(ph[:1])) + st.Placeholder.Render(string(ph[1:])),
			grapheme.Width(string(ph))
	}

	textStyle := st.Text
	if len(text) > 0 {
		if _, _, err := m.Value(); err != nil {
			textStyle = st.Invalid
		}
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	kindAt := func(i int) runKind {
		switch {
		case m.focused && i == cursor:
			return runCursor
		case selOK && i >= sel.Start && i < sel.End:
			return runSelection
		default:
			return runText
		}
	}
	render := func(k runKind, s string) string {
		switch k {
		case runCursor:
			return st.Cursor.Render(s)
		case runSelection:
			return st.Selection.Render(s)
		default:
			return textStyle.Render(s)
		}
	}

	var sb strings.Builder
	start := 0
	for i := 1; i <= len(text); i++ {
		if i < len(text) && kindAt(i) == kindAt(start) {
			continue
		}
		sb.WriteString(render(kindAt(start), string(text[start:i])))
		start = i
	}
	width := grapheme.Width(string(text))

	if m.focused && cursor == len(text) {
		sb.WriteString(st.Cursor.Render(" "))
		width++
	}
	return sb.String(), width
}
