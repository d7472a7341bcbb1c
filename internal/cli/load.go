package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/Ryuk2git/infogain/pkg/data"
)

// loadDataset reads path using the dataset settings from flags, env and config.
func loadDataset(path string) (*data.Dataset, error) {
	comma := viper.GetString("comma")
	if utf8.RuneCountInString(comma) != 1 {
		return nil, fmt.Errorf("comma must be a single character, got %q", comma)
	}
	r, _ := utf8.DecodeRuneInString(comma)

	opts := []data.Option{data.WithComma(r)}
	if viper.GetBool("header") {
		opts = append(opts, data.WithHeader())
	}

	target, rows := viper.GetInt("target"), viper.GetInt("rows")
	log.Info().Str("file", path).Int("target", target).Int("rows", rows).Msg("loading dataset")

	ds, err := data.ReadFile(path, target, rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return ds, nil
}
