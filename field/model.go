package field

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/livenum/buffer"
	"github.com/iw2rmb/livenum/numfmt"
)

// Model is a Bubble Tea component for a live-formatted numeric field.
type Model struct {
	cfg     Config
	fmtCfg  numfmt.Config
	buf     *buffer.Buffer
	watcher *numfmt.Watcher

	focused bool

	lastBufVersion uint64
	lastCursor     int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	fmtCfg := numfmt.Config{Decimal: cfg.Decimal, Thousand: cfg.Thousand}.WithDefaults()
	if err := fmtCfg.Validate(); err != nil {
		cfg.Logger.Warn("field: invalid separators, using defaults", "error", err)
		fmtCfg = numfmt.DefaultConfig()
	}
	cfg.Decimal, cfg.Thousand = fmtCfg.Decimal, fmtCfg.Thousand

	w := numfmt.NewWatcher(fmtCfg, numfmt.WithLogger(cfg.Logger))
	buf := buffer.New(cfg.Text, buffer.Options{
		HistoryLimit: cfg.HistoryLimit,
		OnChange:     bindWatcher(w),
	})
	w.AfterTextChanged(buf)

	m := Model{
		cfg:     cfg,
		fmtCfg:  fmtCfg,
		buf:     buf,
		watcher: w,
		focused: true,
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	return m
}

// bindWatcher routes buffer changes through w. Undo and redo restore text
// that was already formatted, so they only resync the watcher's memory.
// Write-backs from w itself arrive with ChangeSourceFormat while w is
// formatting and are dropped by its suppress flag.
func bindWatcher(w *numfmt.Watcher) func(*buffer.Buffer, buffer.Change) {
	return func(b *buffer.Buffer, ch buffer.Change) {
		if ch.Source == buffer.ChangeSourceHistory {
			w.Reset(b.Text())
			return
		}
		w.AfterTextChanged(b)
	}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Separators returns the effective separator configuration.
func (m Model) Separators() numfmt.Config { return m.fmtCfg }

// Value parses the field text into its integer value and fraction suffix.
func (m Model) Value() (int64, string, error) {
	return numfmt.Parse(m.fmtCfg, m.buf.Text())
}

// SetValue loads text into the field as an undoable edit.
func (m Model) SetValue(s string) Model {
	if m.buf != nil {
		m.buf.SetText(s)
		m.emitIfChanged()
	}
	return m
}

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	return m
}

func (m Model) Width() int { return m.cfg.Width }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.emitIfChanged()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly; report what changed.
		m.emitIfChanged()
		return m, nil
	}
}

func (m *Model) emitIfChanged() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}
