// Package present turns a csvcore.Reader into an in-memory Table for
// downstream display, filtering, sorting, and export — the layer the
// teacher's CLI built directly on top of its own fastcsv.Reader, adapted
// here to sit on top of csvcore instead.
package present

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/ooyeku/csvcore"
)

// Table holds a fully materialized set of rows plus per-column type
// detection, the same shape the teacher's pkg.Table used.
type Table struct {
	Headers []string
	Rows    [][]string
	types   []ColumnType
	index   map[string]int
}

// ColumnType is the detected type of a column.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeNull
)

// NewTable creates an empty table with the given headers.
func NewTable(headers []string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}
	types := make([]ColumnType, len(headers))
	for i := range types {
		types[i] = TypeNull
	}
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
		types:   types,
		index:   index,
	}
}

// LoadTable drains reader into a Table, materializing every row up
// front. It is meant for the CLI's bounded-size use cases (export,
// browse); streaming consumers should use csvcore.Reader directly.
func LoadTable(reader *csvcore.Reader) (*Table, error) {
	t := NewTable(nil)
	for {
		row, ok, err := reader.TryReadRow()
		if err != nil {
			return nil, err
		}
		if t.Headers == nil && reader.Header() != nil {
			t = NewTable(append([]string(nil), reader.Header()...))
		}
		if !ok {
			break
		}
		fields := make([]string, row.FieldCount())
		for i := range fields {
			fields[i] = row.FieldString(i)
		}
		if t.Headers == nil {
			t = NewTable(fields)
			continue
		}
		if err := t.AddRow(fields); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddRow appends row, updating per-column type detection.
func (t *Table) AddRow(row []string) error {
	if len(row) != len(t.Headers) {
		return fmt.Errorf("row length %d does not match headers length %d", len(row), len(t.Headers))
	}
	t.Rows = append(t.Rows, row)
	t.updateTypes(row)
	return nil
}

func (t *Table) updateTypes(row []string) {
	for i, val := range row {
		if t.types[i] == TypeNull {
			t.types[i] = DetectType(val)
			continue
		}
		if newType := DetectType(val); newType != t.types[i] {
			t.types[i] = TypeString
		}
	}
}

// DetectType sniffs val's likely column type from its textual form.
func DetectType(val string) ColumnType {
	if val == "" || strings.EqualFold(val, "null") || strings.EqualFold(val, "\\N") {
		return TypeNull
	}
	if strings.EqualFold(val, "true") || strings.EqualFold(val, "false") {
		return TypeBoolean
	}
	if _, err := strconv.ParseInt(val, 10, 64); err == nil {
		return TypeInteger
	}
	if _, err := strconv.ParseFloat(val, 64); err == nil {
		return TypeFloat
	}
	return TypeString
}

// GetColumn returns every value in the named column.
func (t *Table) GetColumn(header string) ([]string, error) {
	idx, ok := t.index[header]
	if !ok {
		return nil, fmt.Errorf("column %q not found", header)
	}
	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}
	return col, nil
}

// GetColumnType returns the detected type of the named column.
func (t *Table) GetColumnType(header string) (ColumnType, error) {
	idx, ok := t.index[header]
	if !ok {
		return TypeString, fmt.Errorf("column %q not found", header)
	}
	return t.types[idx], nil
}

// Filter returns a new table holding only the rows predicate accepts.
func (t *Table) Filter(predicate func(row []string) bool) *Table {
	newTable := NewTable(t.Headers)
	for _, row := range t.Rows {
		if predicate(row) {
			if err := newTable.AddRow(row); err != nil {
				return nil
			}
		}
	}
	return newTable
}

// Sort orders rows by columns given as "name:asc" or "name:desc" pairs,
// applied in priority order.
func (t *Table) Sort(columns []string) error {
	type sortKey struct {
		desc bool
	}
	keys := make([]sortKey, len(columns))
	indices := make([]int, len(columns))

	for i, col := range columns {
		parts := strings.Split(col, ":")
		if len(parts) != 2 {
			return fmt.Errorf("invalid sort format for %q, expected 'column:asc' or 'column:desc'", col)
		}
		idx, ok := t.index[parts[0]]
		if !ok {
			return fmt.Errorf("column %q not found", parts[0])
		}
		keys[i] = sortKey{desc: strings.EqualFold(parts[1], "desc")}
		indices[i] = idx
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		for k, key := range keys {
			idx := indices[k]
			a, b := t.Rows[i][idx], t.Rows[j][idx]
			if a == b {
				continue
			}
			less := a < b
			if key.desc {
				less = !less
			}
			return less
		}
		return false
	})
	return nil
}

// GroupBy groups rows by groupCols and applies the named aggregation to
// each column in aggs. Aggregated columns follow the group columns in
// ascending name order.
func (t *Table) GroupBy(groupCols []string, aggs map[string]string) (*Table, error) {
	groupIndices := make([]int, len(groupCols))
	for i, col := range groupCols {
		idx, ok := t.index[col]
		if !ok {
			return nil, fmt.Errorf("group column %q not found", col)
		}
		groupIndices[i] = idx
	}

	aggCols := make([]string, 0, len(aggs))
	for col := range aggs {
		aggCols = append(aggCols, col)
	}
	sort.Strings(aggCols)
	headers := make([]string, 0, len(groupCols)+len(aggs))
	headers = append(headers, groupCols...)
	headers = append(headers, aggCols...)

	groups := make(map[string][][]string)
	var order []string
	for _, row := range t.Rows {
		key := make([]string, len(groupIndices))
		for i, idx := range groupIndices {
			key[i] = row[idx]
		}
		groupKey := strings.Join(key, "\x00")
		if _, seen := groups[groupKey]; !seen {
			order = append(order, groupKey)
		}
		groups[groupKey] = append(groups[groupKey], row)
	}

	result := NewTable(headers)
	for _, groupKey := range order {
		rows := groups[groupKey]
		groupVals := strings.Split(groupKey, "\x00")
		newRow := make([]string, len(headers))
		copy(newRow, groupVals)

		i := len(groupVals)
		for _, col := range aggCols {
			agg := aggs[col]
			idx, ok := t.index[col]
			if !ok {
				return nil, fmt.Errorf("aggregation column %q not found", col)
			}
			vals := make([]string, len(rows))
			for j, row := range rows {
				vals[j] = row[idx]
			}
			aggVal, err := aggregate(vals, agg)
			if err != nil {
				return nil, fmt.Errorf("aggregation error for %q: %w", col, err)
			}
			newRow[i] = aggVal
			i++
		}
		if err := result.AddRow(newRow); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func aggregate(vals []string, agg string) (string, error) {
	switch strings.ToLower(agg) {
	case "count":
		return strconv.Itoa(len(vals)), nil
	case "sum":
		var sum float64
		for _, v := range vals {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return "", fmt.Errorf("invalid number %q for sum", v)
			}
			sum += f
		}
		return strconv.FormatFloat(sum, 'f', -1, 64), nil
	case "avg":
		if len(vals) == 0 {
			return "0", nil
		}
		var sum float64
		for _, v := range vals {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return "", fmt.Errorf("invalid number %q for average", v)
			}
			sum += f
		}
		return strconv.FormatFloat(sum/float64(len(vals)), 'f', -1, 64), nil
	case "minimum":
		if len(vals) == 0 {
			return "", nil
		}
		minValue := vals[0]
		for _, v := range vals[1:] {
			if v < minValue {
				minValue = v
			}
		}
		return minValue, nil
	case "maximum":
		if len(vals) == 0 {
			return "", nil
		}
		maximum := vals[0]
		for _, v := range vals[1:] {
			if v > maximum {
				maximum = v
			}
		}
		return maximum, nil
	default:
		return "", fmt.Errorf("unknown aggregation %q", agg)
	}
}

// String renders the table as a plain fixed-width grid.
func (t *Table) String() string {
	if len(t.Headers) == 0 {
		return "empty table"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString(" | ")
		}
		fmt.Fprintf(&sb, "%-*s", widths[i], h)
	}
	sb.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("-+-")
		}
		sb.WriteString(strings.Repeat("-", w))
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(" | ")
			}
			fmt.Fprintf(&sb, "%-*s", widths[i], cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	newTable := NewTable(append([]string{}, t.Headers...))
	newTable.types = append([]ColumnType{}, t.types...)
	for k, v := range t.index {
		newTable.index[k] = v
	}
	for _, row := range t.Rows {
		newTable.Rows = append(newTable.Rows, append([]string{}, row...))
	}
	return newTable
}

// ExportToJSON writes the table as an array of objects, converting each
// cell to its detected type.
func (t *Table) ExportToJSON(w io.Writer) error {
	if t == nil || len(t.Headers) == 0 {
		return fmt.Errorf("cannot export empty table")
	}
	data := make([]map[string]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		rowMap := make(map[string]interface{})
		for j, header := range t.Headers {
			colType, _ := t.GetColumnType(header)
			value := row[j]
			switch colType {
			case TypeInteger:
				if val, err := strconv.ParseInt(value, 10, 64); err == nil {
					rowMap[header] = val
					continue
				}
			case TypeFloat:
				if val, err := strconv.ParseFloat(value, 64); err == nil {
					rowMap[header] = val
					continue
				}
			case TypeBoolean:
				if strings.EqualFold(value, "true") {
					rowMap[header] = true
					continue
				} else if strings.EqualFold(value, "false") {
					rowMap[header] = false
					continue
				}
			case TypeNull:
				if value == "" || strings.EqualFold(value, "null") || strings.EqualFold(value, "\\N") {
					rowMap[header] = nil
					continue
				}
			}
			rowMap[header] = value
		}
		data[i] = rowMap
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>CSV Data</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; max-width: 100%; overflow-x: auto; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; background-color: white; box-shadow: 0 1px 3px rgba(0,0,0,0.2); }
        th, td { padding: 12px 15px; text-align: left; border-bottom: 1px solid #ddd; }
        th { background-color: #f8f9fa; font-weight: 600; color: #333; position: sticky; top: 0; }
        tr:nth-child(even) { background-color: #f8f9fa; }
        tr:hover { background-color: #f2f2f2; }
        @media (max-width: 600px) { table { display: block; overflow-x: auto; } th, td { min-width: 120px; } }
    </style>
</head>
<body>
    <table>
        <thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
        <tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>
    </table>
</body>
</html>`

// ExportToHTML writes the table as a responsive, self-contained HTML page.
func (t *Table) ExportToHTML(w io.Writer) error {
	if t == nil || len(t.Headers) == 0 {
		return fmt.Errorf("cannot export empty table")
	}
	tmpl, err := template.New("table").Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("error parsing HTML template: %w", err)
	}
	return tmpl.Execute(w, t)
}

// GetTypes returns the per-column detected types.
func (t *Table) GetTypes() []ColumnType { return t.types }

// GetIndex returns the header-to-column-index mapping.
func (t *Table) GetIndex() map[string]int { return t.index }
