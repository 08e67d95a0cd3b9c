package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ooyeku/csvcore"
	"github.com/ooyeku/csvcore/present/benchmark"
)

var (
	benchDir      string
	benchGenerate bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run benchmarks on the csvcore parser",
	Long: `Run throughput benchmarks on the csvcore parser across datasets of
varying size, quoting density, and column width.

Example:
  csvcore bench
  csvcore bench --generate
  csvcore bench --dir=/path/to/data`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchGenerate {
			fmt.Println("Generating benchmark data...")
			if err := benchmark.SaveBenchmarkData(benchDir); err != nil {
				return fmt.Errorf("failed to generate benchmark data: %w", err)
			}
		}

		if _, err := os.Stat(benchDir); os.IsNotExist(err) {
			return fmt.Errorf("benchmark directory %s does not exist; use --generate to create data", benchDir)
		}

		files, err := filepath.Glob(filepath.Join(benchDir, "bench_*.csv"))
		if err != nil {
			return fmt.Errorf("failed to list benchmark files: %w", err)
		}

		fmt.Println(benchmark.CPUFeatureReport())
		fmt.Println("Running benchmarks...")
		for _, file := range files {
			if err := benchmarkFile(file); err != nil {
				fmt.Printf("Error benchmarking %s: %v\n", file, err)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVarP(&benchDir, "dir", "d", "testdata/bench", "Directory containing benchmark data")
	benchCmd.Flags().BoolVarP(&benchGenerate, "generate", "g", false, "Generate new benchmark data")
}

func benchmarkFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	results, err := benchmark.Run([]benchmark.BenchData{{
		Name:     filepath.Base(file),
		Content:  string(data),
		FileSize: int64(len(data)),
	}}, csvcore.DefaultOptions())
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("File: %s\n", r.Name)
		fmt.Printf("  Rows: %d\n", r.Rows)
		fmt.Printf("  Time: %v\n", r.Duration)
		fmt.Printf("  Speed: %.2f MB/s\n\n", r.BytesPerSec/1024/1024)
	}
	return nil
}
