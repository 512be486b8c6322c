package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	livenum "github.com/iw2rmb/livenum"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:           "livenum",
		Short:         "Live thousands grouping for numeric input fields.",
		Version:       livenum.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// A missing .env is fine.
			_ = godotenv.Load()
			if err := loadConfigFile(v); err != nil {
				return err
			}
			setupLogger(cmd, v)
			return nil
		},
	}

	root.PersistentFlags().String("decimal", ".", "decimal separator (one character)")
	root.PersistentFlags().String("thousand", ",", "thousand separator (one character)")
	root.PersistentFlags().String("config", "", "config file (default: ./livenum.yaml if present)")
	root.PersistentFlags().String("log-level", "warn", `log level, one of "debug", "info", "warn", "error"`)

	for _, name := range []string{"decimal", "thousand", "config", "log-level"} {
		if err := v.BindPFlag(name, root.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
	v.SetDefault("decimal", ".")
	v.SetDefault("thousand", ",")
	v.SetDefault("log-level", "warn")
	v.SetEnvPrefix("livenum")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newFormatCmd(v), newDemoCmd(v))
	return root
}

func setupLogger(cmd *cobra.Command, v *viper.Viper) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		level = slog.LevelWarn
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "livenum:", err)
		os.Exit(1)
	}
}
