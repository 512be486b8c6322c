package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering.
type Style struct {
	// Frame wraps the whole field; its padding plays the role of key gap
	// sizing in on-screen keyboards.
	Frame lipgloss.Style

	Prompt      lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style

	// Invalid replaces Text when the content is not a number.
	Invalid lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Frame:       lipgloss.NewStyle().Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Invalid:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}
