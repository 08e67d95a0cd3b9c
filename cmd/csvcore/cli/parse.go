package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
)

var (
	parseDelimiter string
	parseQuote     string
	parseEscape    string
	parseHasHeader bool
	parseTrim      string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and display CSV file contents",
	Long: `Parse and display the contents of a CSV file with customizable options for
delimiter, quote character, escape character, and trimming.

Example:
  csvcore parse data.csv
  csvcore parse --delimiter=";" --quote="'" data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()

		opts := buildOptions(parseDelimiter, parseQuote, parseEscape, parseHasHeader, parseTrim, "")
		reader, err := csvcore.NewReader(file, opts)
		if err != nil {
			return fmt.Errorf("error creating reader: %w", err)
		}

		for {
			row, ok, err := reader.TryReadRow()
			if err != nil {
				return fmt.Errorf("error reading row: %w", err)
			}
			if !ok {
				break
			}
			for i := 0; i < row.FieldCount(); i++ {
				if i > 0 {
					fmt.Print("\t")
				}
				fmt.Print(row.FieldString(i))
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseDelimiter, "delimiter", "d", "", "Field delimiter character")
	parseCmd.Flags().StringVarP(&parseQuote, "quote", "q", "", "Quote character")
	parseCmd.Flags().StringVarP(&parseEscape, "escape", "e", "", "Escape character (defaults to the quote character)")
	parseCmd.Flags().BoolVar(&parseHasHeader, "header", true, "Treat the first row as a header")
	parseCmd.Flags().StringVarP(&parseTrim, "trim", "t", "", "Trim policy: none, start, end, both")
}
