package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/livenum/field"
)

type demoModel struct {
	field  field.Model
	help   help.Model
	quit   key.Binding
	events int
	last   field.ChangeEvent
}

func newDemoModel(cfg field.Config) *demoModel {
	d := &demoModel{
		help: help.New(),
		quit: key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("esc", "quit")),
	}
	cfg.OnChange = d.handleChange
	d.field = field.New(cfg)
	d.last.Text = d.field.Buffer().Text()
	d.last.Caret = d.field.Buffer().Cursor()
	return d
}

func (d *demoModel) handleChange(ev field.ChangeEvent) {
	d.events++
	d.last = ev
}

func (d *demoModel) Init() tea.Cmd { return nil }

func (d *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.field = d.field.SetWidth(msg.Width - 2)
		d.help.Width = msg.Width
		return d, nil
	case tea.KeyMsg:
		if key.Matches(msg, d.quit) {
			return d, tea.Quit
		}
	}

	var cmd tea.Cmd
	d.field, cmd = d.field.Update(msg)
	return d, cmd
}

func (d *demoModel) View() string {
	value := "not a number"
	if v, frac, err := d.field.Value(); err == nil {
		value = fmt.Sprintf("%d (fraction %q)", v, frac)
	}

	status := strings.Join([]string{
		"",
		fmt.Sprintf("events: %d", d.events),
		fmt.Sprintf("caret: %d", d.last.Caret),
		fmt.Sprintf("value: %s", value),
		"",
		d.help.View(d.field.KeyMap()),
		d.help.ShortHelpView([]key.Binding{d.quit}),
	}, "\n")

	return d.field.View() + "\n" + status
}

func newDemoCmd(v *viper.Viper) *cobra.Command {
	var (
		initial  string
		negative bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an interactive numeric field",
		RunE: func(cmd *cobra.Command, _ []string) error {
			seps, err := separatorsFromConfig(v)
			if err != nil {
				return err
			}
			d := newDemoModel(field.Config{
				Text:          initial,
				Decimal:       seps.Decimal,
				Thousand:      seps.Thousand,
				AllowNegative: negative,
				Prompt:        "amount ",
				Placeholder:   "0",
				Style:         field.DefaultStyle(),
				Logger:        slog.Default(),
			})
			p := tea.NewProgram(d, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&initial, "value", "", "initial field value")
	cmd.Flags().BoolVar(&negative, "negative", false, "accept a leading minus sign")
	return cmd
}
