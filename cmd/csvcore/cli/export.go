package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
	"github.com/ooyeku/csvcore/present"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [input.csv] [output.json|html]",
	Short: "Export CSV data to different formats",
	Long: `Export CSV data to different formats (JSON, HTML), detecting the
output format from the destination file's extension unless --format is given.

Example:
  csvcore export data.csv output.json
  csvcore export data.csv output.html
  csvcore export --format=json data.csv output.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		outputFile := args[1]

		format := exportFormat
		if format == "" {
			switch strings.ToLower(filepath.Ext(outputFile)) {
			case ".json":
				format = "json"
			case ".html":
				format = "html"
			default:
				return fmt.Errorf("unknown output format for %s", outputFile)
			}
		}

		input, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("error opening input file: %w", err)
		}
		defer input.Close()

		reader, err := csvcore.NewReader(input, csvcore.DefaultOptions())
		if err != nil {
			return fmt.Errorf("error creating reader: %w", err)
		}
		table, err := present.LoadTable(reader)
		if err != nil {
			return fmt.Errorf("error reading CSV: %w", err)
		}

		output, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer output.Close()

		switch format {
		case "json":
			if err := table.ExportToJSON(output); err != nil {
				return fmt.Errorf("error exporting to JSON: %w", err)
			}
		case "html":
			if err := table.ExportToHTML(output); err != nil {
				return fmt.Errorf("error exporting to HTML: %w", err)
			}
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}

		fmt.Printf("Successfully exported to %s\n", outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format (json, html)")
}
