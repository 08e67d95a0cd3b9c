package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
)

var (
	validateStrict    bool
	validateHasHeader bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate CSV file structure",
	Long: `Validate the structure of a CSV file: consistent column counts across
rows and no malformed quoting.

Example:
  csvcore validate data.csv
  csvcore validate --strict data.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]

		file, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("error opening file: %w", err)
		}
		defer file.Close()

		opts := buildOptions("", "", "", validateHasHeader, "", "")
		opts.ReadMode = csvcore.ReadModeLenient
		var issues []string
		opts.BadDataCallback = func(ctx csvcore.BadDataContext) {
			issues = append(issues, fmt.Sprintf("row %d, line %d, field %d: %s",
				ctx.RowIndex, ctx.LineNumber, ctx.FieldIndex, ctx.Message))
		}

		reader, err := csvcore.NewReader(file, opts)
		if err != nil {
			return fmt.Errorf("error creating reader: %w", err)
		}

		rowCount := 0
		columnCount := 0
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
			if validateStrict {
				for i := 0; i < row.FieldCount(); i++ {
					if row.FieldString(i) == "" {
						issues = append(issues, fmt.Sprintf("row %d, column %d: empty field", rowCount, i+1))
					}
				}
			}
		}

		fmt.Printf("File: %s\n", filePath)
		fmt.Printf("Rows processed: %d\n", rowCount)
		fmt.Printf("Columns per row: %d\n", columnCount)

		if len(issues) > 0 {
			fmt.Println("\nValidation Issues:")
			for _, msg := range issues {
				fmt.Printf("- %s\n", msg)
			}
			return fmt.Errorf("validation failed with %d issues", len(issues))
		}

		fmt.Println("\nValidation successful! No issues found.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVarP(&validateStrict, "strict", "s", false, "Also flag empty fields as issues")
	validateCmd.Flags().BoolVar(&validateHasHeader, "header", true, "Treat the first row as a header")
}
