package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/livenum/internal/grapheme"
	"github.com/iw2rmb/livenum/numfmt"
)

func newFormatCmd(v *viper.Viper) *cobra.Command {
	var (
		previous  string
		caret     int
		showCaret bool
	)

	cmd := &cobra.Command{
		Use:   "format TEXT",
		Short: "Format one edit and print the grouped text",
		Long: `Runs a single formatting pass as if TEXT had just been typed into a field
that previously held --previous, with the caret at --caret (rune offset;
negative means end of text).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := separatorsFromConfig(v)
			if err != nil {
				return err
			}

			text := args[0]
			n := utf8.RuneCountInString(text)
			if caret < 0 {
				caret = n
			}
			if caret > n {
				return errors.Errorf("caret %d is past the end of %q", caret, text)
			}
			res, err := numfmt.Format(cfg, numfmt.EditState{Previous: previous, Current: text, Caret: caret})
			if err != nil {
				return errors.Wrap(err, "format")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Text)
			if showCaret {
				before := string([]rune(res.Text)[:res.Caret])
				fmt.Fprintln(out, grapheme.PadLeft("^", grapheme.Width(before)+1))
			} else {
				fmt.Fprintln(out, res.Caret)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&previous, "previous", "", "field text before this edit")
	cmd.Flags().IntVar(&caret, "caret", -1, "caret offset in TEXT after the edit")
	cmd.Flags().BoolVar(&showCaret, "show-caret", false, "draw a caret marker instead of printing the offset")
	return cmd
}
