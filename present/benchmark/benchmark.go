// Package benchmark generates synthetic CSV datasets for throughput
// testing and times csvcore.Reader against them.
package benchmark

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/ooyeku/csvcore"
	"github.com/ooyeku/csvcore/internal/bufpool"
)

// BenchData is one generated dataset.
type BenchData struct {
	Name     string
	Content  string
	FileSize int64
}

// GenerateBenchmarkData creates datasets spanning the shapes that stress
// different parts of the parser: plain numeric rows, quoted fields with
// embedded delimiters, mixed-content rows with nulls and escaped quotes,
// and wide rows with many columns.
func GenerateBenchmarkData() []BenchData {
	return []BenchData{
		generateSimpleCSV(1000),
		generateSimpleCSV(100000),
		generateSimpleCSV(1000000),
		generateQuotedCSV(1000),
		generateQuotedCSV(100000),
		generateComplexCSV(1000),
		generateComplexCSV(100000),
		generateWideCSV(1000, 100),
		generateWideCSV(100000, 100),
	}
}

// SaveBenchmarkData writes every generated dataset to dir. Each dataset is
// copied into a write buffer rented from bufpool before being handed to
// os.WriteFile, and the buffer is returned to the pool afterwards.
// Datasets larger than the pool's largest bucket (64 KiB) get a freshly
// allocated buffer.
func SaveBenchmarkData(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create benchmark directory: %w", err)
	}
	for _, data := range GenerateBenchmarkData() {
		filename := fmt.Sprintf("%s/bench_%s.csv", dir, strings.ReplaceAll(data.Name, " ", "_"))
		buf := bufpool.GetBytes(len(data.Content))
		buf = append(buf, data.Content...)
		err := os.WriteFile(filename, buf, 0644)
		bufpool.PutBytes(buf)
		if err != nil {
			return fmt.Errorf("failed to write benchmark file %s: %w", filename, err)
		}
	}
	return nil
}

// Result is one dataset's timing outcome.
type Result struct {
	Name     string
	Rows     int
	Duration time.Duration
	BytesPerSec float64
}

// Run parses every dataset in data with opts and reports elapsed time and
// throughput for each.
func Run(data []BenchData, opts csvcore.Options) ([]Result, error) {
	results := make([]Result, 0, len(data))
	for _, d := range data {
		start := time.Now()
		reader, err := csvcore.NewReaderFromBytes([]byte(d.Content), opts)
		if err != nil {
			return nil, err
		}
		rows := 0
		for {
			_, ok, err := reader.TryReadRow()
			if err != nil {
				return nil, fmt.Errorf("benchmark %s: %w", d.Name, err)
			}
			if !ok {
				break
			}
			rows++
		}
		elapsed := time.Since(start)
		results = append(results, Result{
			Name:        d.Name,
			Rows:        rows,
			Duration:    elapsed,
			BytesPerSec: float64(d.FileSize) / elapsed.Seconds(),
		})
	}
	return results, nil
}

// CPUFeatureReport summarizes the SIMD-adjacent CPU features available on
// the current machine, informational only — csvcore itself does not
// branch on these (vectorized scanning is out of scope).
func CPUFeatureReport() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SSE2: %v, AVX: %v, AVX2: %v\n", cpu.X86.HasSSE2, cpu.X86.HasAVX, cpu.X86.HasAVX2)
	return sb.String()
}

func generateSimpleCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,value1,value2,value3,value4,value5\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,%d,%d,%d,%d,%d\n", i, i*2, i*3, i*4, i*5, i*6)
	}
	content := sb.String()
	return BenchData{Name: fmt.Sprintf("simple_%dk", rows/1000), Content: content, FileSize: int64(len(content))}
}

func generateQuotedCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,description,data,notes\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,\"Description, with comma\",\"Data, with, multiple, commas\",\"Note %d\"\n", i, i)
	}
	content := sb.String()
	return BenchData{Name: fmt.Sprintf("quoted_%dk", rows/1000), Content: content, FileSize: int64(len(content))}
}

func generateComplexCSV(rows int) BenchData {
	var sb strings.Builder
	sb.WriteString("id,text,quoted,null,comment,empty\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%d,normal text,\"quoted, with \"\"escaped\"\" quotes\",\\N,#comment,\n", i)
	}
	content := sb.String()
	return BenchData{Name: fmt.Sprintf("complex_%dk", rows/1000), Content: content, FileSize: int64(len(content))}
}

func generateWideCSV(rows, cols int) BenchData {
	var sb strings.Builder
	for i := 0; i < cols; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, "col%d", i)
	}
	sb.WriteString("\n")
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(",")
			}
			fmt.Fprintf(&sb, "value_%d_%d", i, j)
		}
		sb.WriteString("\n")
	}
	content := sb.String()
	return BenchData{Name: fmt.Sprintf("wide_%dk_%dcols", rows/1000, cols), Content: content, FileSize: int64(len(content))}
}
