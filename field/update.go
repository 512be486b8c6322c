package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/livenum/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.insertFiltered(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.GroupLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGroup, Dir: buffer.DirLeft})
	case key.Matches(msg, km.GroupRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGroup, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Clear):
		if !m.cfg.ReadOnly {
			m.buf.SetText("")
		}

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			_ = m.buf.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			m.pasteClipboard()
		}

	default:
		if m.cfg.ReadOnly || msg.Alt {
			break
		}
		// Space arrives as KeySpace, not as runes.
		if msg.Type == tea.KeySpace {
			if m.acceptRune(' ') {
				m.buf.InsertRune(' ')
			}
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			for _, r := range msg.Runes {
				if m.acceptRune(r) {
					m.buf.InsertRune(r)
				}
			}
		}
	}

	return m, nil
}

// acceptRune reports whether r may be inserted at the current caret: ASCII
// digits and the thousand separator always, the decimal separator once, and
// '-' only in front when negatives are allowed.
func (m Model) acceptRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == m.fmtCfg.Thousand:
		return true
	case r == m.fmtCfg.Decimal:
		return !strings.ContainsRune(m.textOutsideSelection(), r)
	case r == '-':
		return m.cfg.AllowNegative && m.insertOffset() == 0 &&
			!strings.HasPrefix(m.textOutsideSelection(), "-")
	default:
		return false
	}
}

func (m Model) insertOffset() int {
	if r, ok := m.buf.Selection(); ok {
		return r.Start
	}
	return m.buf.Cursor()
}

func (m Model) textOutsideSelection() string {
	text := []rune(m.buf.Text())
	r, ok := m.buf.Selection()
	if !ok {
		return string(text)
	}
	return string(text[:r.Start]) + string(text[r.End:])
}

// insertFiltered inserts the acceptable runes of s as one edit.
func (m Model) insertFiltered(s string) {
	var sb strings.Builder
	seenDecimal := strings.ContainsRune(m.textOutsideSelection(), m.fmtCfg.Decimal)
	for i, r := range []rune(s) {
		switch {
		case r >= '0' && r <= '9', r == m.fmtCfg.Thousand:
		case r == m.fmtCfg.Decimal && !seenDecimal:
			seenDecimal = true
		case r == '-' && i == 0 && m.acceptRune(r):
		default:
			continue
		}
		sb.WriteRune(r)
	}
	if sb.Len() > 0 {
		m.buf.InsertText(sb.String())
	}
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s := m.buf.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.buf.DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insertFiltered(strings.TrimSpace(s))
}
