package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"spdxmatch/internal/formatter"
)

var templateJSON bool

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Show the parsed node tree of a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

var flattenCmd = &cobra.Command{
	Use:   "flatten [file]",
	Short: "Show the flattened segments of a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFlatten,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Show the token stream of a template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	for _, c := range []*cobra.Command{treeCmd, flattenCmd, tokensCmd} {
		c.Flags().BoolVar(&templateJSON, "json", false, "output as JSON")
		rootCmd.AddCommand(c)
	}
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

func runTree(cmd *cobra.Command, args []string) error {
	markup, err := readInput(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	tmpl, err := eng.Parse(markup)
	if err != nil {
		return err
	}

	if templateJSON {
		return printJSON(cmd, tmpl)
	}

	cmd.Printf("%s %q (%s), %d nodes\n", tmpl.Kind, tmpl.ID, tmpl.Name, tmpl.NodeCount())
	cmd.Println(formatter.Tree(tmpl))

	return nil
}

func runFlatten(cmd *cobra.Command, args []string) error {
	markup, err := readInput(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	tmpl, err := eng.Load(markup)
	if err != nil {
		return err
	}

	if templateJSON {
		return printJSON(cmd, tmpl.Segments)
	}

	cmd.Println(formatter.Segments(tmpl.Segments))

	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	markup, err := readInput(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}

	tmpl, err := eng.Load(markup)
	if err != nil {
		return err
	}

	if templateJSON {
		return printJSON(cmd, tmpl.Tokens)
	}

	cmd.Println(formatter.Tokens(tmpl.Tokens))

	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	cmd.Println(string(data))

	return nil
}
