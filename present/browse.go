package present

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Browser is a trimmed interactive inspector over a loaded Table: head,
// schema, stats, filter, help, and quit. The teacher's REPL also carried
// undo/redo stacks and named format presets; those are dropped here since
// nothing downstream exercises session history.
type Browser struct {
	table *Table
	file  string
	out   io.Writer
}

// NewBrowser constructs a Browser over table, loaded from file (used only
// for display in the "schema" output).
func NewBrowser(table *Table, file string, out io.Writer) *Browser {
	return &Browser{table: table, file: file, out: out}
}

// Run drives the inspector's read-eval-print loop against in, writing
// output to the Browser's configured writer. It returns when the user
// types "quit" or "exit", or when in is exhausted.
func (b *Browser) Run(in io.Reader) {
	fmt.Fprintln(b.out, "csvcore browse — type 'help' for commands, 'quit' to exit")
	scanner := bufio.NewScanner(in)
	format := DefaultFormat()

	for {
		fmt.Fprint(b.out, "\n> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit":
			fmt.Fprintln(b.out, "goodbye")
			return

		case "help":
			fmt.Fprintln(b.out, "commands: head [n], schema, stats, filter <column> <op> <value>, quit")

		case "head":
			n := 5
			if len(fields) > 1 {
				if parsed, err := strconv.Atoi(fields[1]); err == nil {
					n = parsed
				}
			}
			b.head(n, format)

		case "schema":
			b.schema()

		case "stats":
			b.stats(format)

		case "filter":
			if len(fields) < 4 {
				fmt.Fprintln(b.out, "usage: filter <column> <operator> <value>")
				continue
			}
			filtered, err := b.filter(fields[1], fields[2], fields[3])
			if err != nil {
				fmt.Fprintf(b.out, "error: %v\n", err)
				continue
			}
			b.table = filtered
			fmt.Fprintf(b.out, "filtered to %d rows\n", len(b.table.Rows))
			b.head(5, format)

		default:
			fmt.Fprintf(b.out, "unknown command: %s (type 'help')\n", fields[0])
		}
	}
}

func (b *Browser) head(n int, format FormatOptions) {
	preview := NewTable(b.table.Headers)
	limit := n
	if limit > len(b.table.Rows) {
		limit = len(b.table.Rows)
	}
	for i := 0; i < limit; i++ {
		_ = preview.AddRow(b.table.Rows[i])
	}
	fmt.Fprintln(b.out, preview.Format(format))
}

func (b *Browser) schema() {
	fmt.Fprintf(b.out, "file: %s\n", b.file)
	fmt.Fprintf(b.out, "rows: %d\n", len(b.table.Rows))
	fmt.Fprintf(b.out, "columns: %d\n\n", len(b.table.Headers))
	for i, header := range b.table.Headers {
		colType, _ := b.table.GetColumnType(header)
		fmt.Fprintf(b.out, "%d. %s (%v)\n", i+1, header, colType)
	}
}

func (b *Browser) stats(format FormatOptions) {
	stats := NewTable([]string{"Column", "Type", "Unique Values", "Null Count"})
	for _, header := range b.table.Headers {
		col, _ := b.table.GetColumn(header)
		colType, _ := b.table.GetColumnType(header)

		unique := make(map[string]struct{})
		nullCount := 0
		for _, val := range col {
			if val == "" {
				nullCount++
			} else {
				unique[val] = struct{}{}
			}
		}

		_ = stats.AddRow([]string{
			header,
			fmt.Sprintf("%v", colType),
			strconv.Itoa(len(unique)),
			strconv.Itoa(nullCount),
		})
	}
	fmt.Fprintln(b.out, stats.Format(format))
}

func (b *Browser) filter(column, op, value string) (*Table, error) {
	colIdx, ok := b.table.index[column]
	if !ok {
		return nil, fmt.Errorf("column %s not found", column)
	}
	filtered := NewTable(b.table.Headers)
	for _, row := range b.table.Rows {
		if matchesFilter(row[colIdx], op, value) {
			if err := filtered.AddRow(row); err != nil {
				return nil, err
			}
		}
	}
	return filtered, nil
}

func matchesFilter(val, op, target string) bool {
	switch op {
	case "=", "==":
		return val == target
	case "!=":
		return val != target
	case ">", "<", ">=", "<=":
		v1, err1 := strconv.ParseFloat(val, 64)
		v2, err2 := strconv.ParseFloat(target, 64)
		if err1 != nil || err2 != nil {
			return false
		}
		switch op {
		case ">":
			return v1 > v2
		case "<":
			return v1 < v2
		case ">=":
			return v1 >= v2
		case "<=":
			return v1 <= v2
		}
	}
	return false
}
