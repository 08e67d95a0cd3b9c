package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
)

var infoHasHeader bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about a CSV file",
	Long: `Display basic information about a CSV file including row count, column
count, and a sample of the header row.

Example:
  csvcore info data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()

		opts := buildOptions("", "", "", infoHasHeader, "", "")
		reader, err := csvcore.NewReader(file, opts)
		if err != nil {
			return fmt.Errorf("error creating reader: %w", err)
		}

		rowCount := 0
		var columnCount int
		for {
			row, ok, err := reader.TryReadRow()
			if err != nil {
				return fmt.Errorf("error reading row: %w", err)
			}
			if !ok {
				break
			}
			rowCount++
			if rowCount == 1 {
				columnCount = row.FieldCount()
			}
		}

		fmt.Printf("File: %s\n", filePath)
		fmt.Printf("Total Rows: %d\n", rowCount)
		fmt.Printf("Columns: %d\n", columnCount)

		if header := reader.Header(); len(header) > 0 {
			fmt.Println("\nColumn Headers:")
			for i, h := range header {
				fmt.Printf("%d. %s\n", i+1, h)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoHasHeader, "header", true, "Treat the first row as a header")
}
