// Command typers evaluates, inspects and law-checks unsigned binary
// arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Aleod-m/typers/internal/config"
	"github.com/Aleod-m/typers/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    = config.DefaultConfig()
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "typers",
	Short: "Unsigned binary arithmetic built from single bits",
	Long: `typers represents unsigned integers as a chain of binary digits and
implements increment, decrement, ripple-carry addition, ripple-borrow
subtraction, multiplication and shifts purely in terms of bit operations.

Evaluate expressions, inspect representations, print the bit-level truth
tables, trace a ripple digit by digit, or cross-check the arithmetic
against native integers with a Datalog law checker.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
		cfg = loaded

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		opts := cfg.Logging.Options()
		if verbose {
			opts.DebugMode = true
			opts.Level = "debug"
			logging.Use(logger, opts)
		} else if err := logging.Initialize(opts); err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", path), zap.String("format", cfg.Output.Format))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		_ = logging.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/typers/typers.yaml)")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
