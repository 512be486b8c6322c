package main

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/iw2rmb/livenum/numfmt"
)

const defaultConfigFile = "livenum.yaml"

// loadConfigFile reads the file named by --config, or livenum.yaml from the
// working directory when it exists. Flags and LIVENUM_* variables override it.
func loadConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	return nil
}

func separatorsFromConfig(v *viper.Viper) (numfmt.Config, error) {
	dec, err := singleRune("decimal", v.GetString("decimal"))
	if err != nil {
		return numfmt.Config{}, err
	}
	th, err := singleRune("thousand", v.GetString("thousand"))
	if err != nil {
		return numfmt.Config{}, err
	}
	cfg := numfmt.Config{Decimal: dec, Thousand: th}
	if err := cfg.Validate(); err != nil {
		return numfmt.Config{}, errors.WithStack(err)
	}
	return cfg, nil
}

func singleRune(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.Errorf("%s separator must be exactly one character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
