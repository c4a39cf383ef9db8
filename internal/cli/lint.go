package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"spdxmatch/internal/validator"
)

// ErrLintFailed is returned when any linted template has errors.
var ErrLintFailed = errors.New("lint found errors")

var lintCmd = &cobra.Command{
	Use:   "lint file...",
	Short: "Check templates for invalid spacing values and match patterns",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	failed := 0

	for _, path := range args {
		markup, err := readInput(cmd, path)
		if err != nil {
			return err
		}

		tmpl, err := eng.Parse(markup)
		if err != nil {
			cmd.Println(color.RedString("%s: %v", path, err))

			failed++

			continue
		}

		result := eng.Lint(tmpl)
		printLintResult(cmd, path, result)

		if !result.IsValid {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d templates", ErrLintFailed, failed, len(args))
	}

	return nil
}

func printLintResult(cmd *cobra.Command, path string, result *validator.ValidationResult) {
	status := color.GreenString(result.String())
	if !result.IsValid {
		status = color.RedString(result.String())
	}

	cmd.Printf("%s: %s\n", path, status)

	for _, e := range result.Errors {
		cmd.Println("  " + color.RedString(e.String()))
	}

	for _, w := range result.Warnings {
		cmd.Println("  " + color.YellowString(w.String()))
	}
}
