package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/Aleod-m/typers/cmd/typers/ui"
	"github.com/Aleod-m/typers/internal/config"
)

// outputFormat overrides output.format from the config when set.
var outputFormat string

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: text or json (default from config)")
}

func resolveFormat() (string, error) {
	f := cfg.Output.Format
	if outputFormat != "" {
		f = outputFormat
	}
	if !slices.Contains(config.ValidFormats, f) {
		return "", fmt.Errorf("invalid output format: %s (valid: %v)", f, config.ValidFormats)
	}
	return f, nil
}

func currentStyles() ui.Styles {
	return ui.ForColorMode(cfg.Output.Color)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
