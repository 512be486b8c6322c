package field

import "github.com/iw2rmb/livenum/buffer"

type ChangeEvent struct {
	Version   uint64
	Caret     int
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Text is the formatted text as displayed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Caret:   b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
