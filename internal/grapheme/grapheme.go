package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width returns the terminal cell width of text, summed per grapheme cluster.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	w := 0
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

// PadLeft prefixes text with spaces so that it spans at least width cells.
func PadLeft(text string, width int) string {
	pad := width - Width(text)
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
