package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"spdxmatch/internal/formatter"
	"spdxmatch/internal/normalizer"
)

// mappingRadius is how many runes around --at are shown.
const mappingRadius = 5

var (
	normalizeAt    int
	normalizeSteps bool
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Normalize candidate text and map positions back to the original",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().IntVar(&normalizeAt, "at", -1, "show where the normalized character at this index came from")
	normalizeCmd.Flags().BoolVar(&normalizeSteps, "steps", false, "list the normalization steps applied")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	s := eng.Normalize(text)

	if normalizeSteps {
		cmd.Println("steps: " + strings.Join(s.Steps, ", "))
	}

	cmd.Println(s.Text())

	if normalizeAt < 0 {
		return nil
	}

	pos, ok := s.Locate(normalizeAt)
	if !ok {
		return fmt.Errorf("index %d outside normalized text of %d characters", normalizeAt, s.Len())
	}

	cmd.Println()
	cmd.Println(formatter.Mapping(s, normalizeAt-mappingRadius, normalizeAt+mappingRadius+1))
	cmd.Println()
	cmd.Printf("%d:%d  %s\n", pos.Row, pos.Col, highlight(s, pos))

	return nil
}

// highlight returns the original line at pos with the character at pos
// colored.
func highlight(s *normalizer.State, pos normalizer.Position) string {
	lines := strings.Split(s.Original, "\n")
	if pos.Row < 1 || pos.Row > len(lines) {
		return ""
	}

	line := []rune(lines[pos.Row-1])
	col := pos.Col - 1

	if col >= len(line) {
		return string(line) + color.New(color.FgRed, color.Bold).Sprint(`\n`)
	}

	return string(line[:col]) + color.New(color.FgRed, color.Bold).Sprint(string(line[col])) + string(line[col+1:])
}
