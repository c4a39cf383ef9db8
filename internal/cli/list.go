package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"spdxmatch/internal/catalog"
	"spdxmatch/internal/formatter"
)

// ErrNoCatalogPath is returned when neither an argument nor catalog.path
// names a directory.
var ErrNoCatalogPath = errors.New("no catalog directory given and catalog.path is not set")

const digestPrefix = 12

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "Load every template in a directory and list them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	dir := argOrEmpty(args)
	if dir == "" {
		dir = eng.Config().Catalog.Path
	}

	if dir == "" {
		return ErrNoCatalogPath
	}

	cat, err := catalog.LoadDir(dir, eng)
	if err != nil {
		return err
	}

	rows := [][]string{{"id", "name", "kind", "osi", "tokens", "digest"}}

	for _, id := range cat.IDs() {
		entry, err := cat.Get(id)
		if err != nil {
			return err
		}

		t := entry.Template
		rows = append(rows, []string{
			entry.ID,
			t.Name,
			string(t.Kind),
			strconv.FormatBool(t.OSIApproved),
			strconv.Itoa(len(t.Tokens)),
			entry.Digest[:digestPrefix],
		})
	}

	cmd.Println(strings.Join(formatter.Table(rows), "\n"))
	cmd.Printf("%d templates\n", cat.Len())

	return nil
}
