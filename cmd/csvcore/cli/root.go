// Package cli wires the csvcore CLI's cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var cfgFile string

// fileConfig mirrors the subset of Options exposed as CLI defaults,
// loaded from --config (spec §9 ambient config concern).
type fileConfig struct {
	Delimiter string `yaml:"delimiter"`
	Quote     string `yaml:"quote"`
	Escape    string `yaml:"escape"`
	HasHeader *bool  `yaml:"has_header"`
	TrimMode  string `yaml:"trim"`
	Culture   string `yaml:"culture"`
}

var loadedConfig fileConfig

var rootCmd = &cobra.Command{
	Use:   "csvcore",
	Short: "Stream, inspect, and reshape CSV data",
	Long: `csvcore is a command-line front end for the csvcore streaming CSV
reader/writer core: parse, validate, inspect, export, and benchmark CSV
files from one binary.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return nil
		}
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &loadedConfig); err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
		return nil
	},
}

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file overriding default options")
}
