package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save the effective configuration",
	Long: `Show the configuration in effect after --config and --log-level are
applied, or write it to a file that --config can load later.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfigShow,
}

var configSaveCmd = &cobra.Command{
	Use:   "save file",
	Short: "Write the effective configuration to a .yaml, .yml or .toml file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSave,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(eng.Config())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	cmd.Print(string(data))

	return nil
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	if err := eng.Config().SaveConfig(args[0]); err != nil {
		return err
	}

	cmd.Printf("configuration written to %s\n", args[0])

	return nil
}
