// Package cli implements the spdxmatch command line, a read-only inspector
// for templates and normalized text.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spdxmatch/internal/config"
	"spdxmatch/internal/engine"
	"spdxmatch/internal/logger"
)

// ErrInvalidColorMode is returned for an unknown --color value.
var ErrInvalidColorMode = errors.New("color must be one of: auto, always, never")

var version = "dev"

var (
	configPath string
	logLevel   string
	colorMode  string

	eng *engine.Engine
)

var rootCmd = &cobra.Command{
	Use:   "spdxmatch",
	Short: "Inspect license templates and normalize candidate text",
	Long: `spdxmatch parses SPDX license template markup, shows its flattened
segments and token stream, and normalizes candidate text while keeping
track of where every normalized character came from.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML or TOML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
}

// Execute runs the root command with output on standard output.
func Execute() error {
	rootCmd.SetOut(os.Stdout)

	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel

		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := applyColor(colorMode, cmd.OutOrStdout()); err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

	built, err := engine.New(cfg, log)
	if err != nil {
		return err
	}

	eng = built

	return nil
}

func applyColor(mode string, out io.Writer) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		f, ok := out.(*os.File)
		color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, mode)
	}

	return nil
}

// readInput reads a file, or standard input when path is empty or "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read standard input: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return string(data), nil
}
