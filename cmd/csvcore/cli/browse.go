package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
	"github.com/ooyeku/csvcore/present"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Interactively inspect a CSV file",
	Long: `Load a CSV file into memory and inspect it interactively: preview rows,
print its schema, compute per-column statistics, or filter rows.

Example:
  csvcore browse data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()

		reader, err := csvcore.NewReader(file, csvcore.DefaultOptions())
		if err != nil {
			return fmt.Errorf("error creating reader: %w", err)
		}
		table, err := present.LoadTable(reader)
		if err != nil {
			return fmt.Errorf("error reading table: %w", err)
		}

		browser := present.NewBrowser(table, filePath, os.Stdout)
		browser.Run(os.Stdin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
