package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ooyeku/csvcore"
)

func TestLoadTableFromReader(t *testing.T) {
	r, err := csvcore.NewReaderFromBytes([]byte("name,age\nalice,30\nbob,40\n"), csvcore.DefaultOptions())
	if err != nil {
		t.Fatalf("NewReaderFromBytes error: %v", err)
	}
	table, err := LoadTable(r)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if table.Headers[0] != "name" || table.Headers[1] != "age" {
		t.Fatalf("headers = %v", table.Headers)
	}
}

func TestLoadTableWithoutHeaderUsesFirstRowAsHeader(t *testing.T) {
	opts := csvcore.DefaultOptions()
	opts.HasHeader = false
	r, err := csvcore.NewReaderFromBytes([]byte("x,y\n1,2\n"), opts)
	if err != nil {
		t.Fatalf("NewReaderFromBytes error: %v", err)
	}
	table, err := LoadTable(r)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if table.Headers[0] != "x" || table.Headers[1] != "y" {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
}

func TestDetectType(t *testing.T) {
	cases := map[string]ColumnType{
		"":      TypeNull,
		"null":  TypeNull,
		"true":  TypeBoolean,
		"false": TypeBoolean,
		"42":    TypeInteger,
		"3.14":  TypeFloat,
		"hello": TypeString,
	}
	for val, want := range cases {
		if got := DetectType(val); got != want {
			t.Errorf("DetectType(%q) = %v, want %v", val, got, want)
		}
	}
}

func TestAddRowUpdatesColumnTypes(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	if err := table.AddRow([]string{"1", "x"}); err != nil {
		t.Fatalf("AddRow error: %v", err)
	}
	if got, _ := table.GetColumnType("a"); got != TypeInteger {
		t.Fatalf("column a type = %v, want TypeInteger", got)
	}
	if err := table.AddRow([]string{"notanumber", "y"}); err != nil {
		t.Fatalf("AddRow error: %v", err)
	}
	if got, _ := table.GetColumnType("a"); got != TypeString {
		t.Fatalf("column a type after mixed values = %v, want TypeString", got)
	}
}

func TestAddRowRejectsWrongLength(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	if err := table.AddRow([]string{"1"}); err == nil {
		t.Fatal("expected error for mismatched row length")
	}
}

func TestGetColumn(t *testing.T) {
	table := NewTable([]string{"a", "b"})
	_ = table.AddRow([]string{"1", "x"})
	_ = table.AddRow([]string{"2", "y"})
	col, err := table.GetColumn("b")
	if err != nil {
		t.Fatalf("GetColumn error: %v", err)
	}
	if len(col) != 2 || col[0] != "x" || col[1] != "y" {
		t.Fatalf("col = %v", col)
	}
	if _, err := table.GetColumn("missing"); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestFilter(t *testing.T) {
	table := NewTable([]string{"a"})
	_ = table.AddRow([]string{"1"})
	_ = table.AddRow([]string{"2"})
	_ = table.AddRow([]string{"3"})
	filtered := table.Filter(func(row []string) bool {
		return row[0] != "2"
	})
	if len(filtered.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(filtered.Rows))
	}
}

func TestSortAscendingAndDescending(t *testing.T) {
	table := NewTable([]string{"a"})
	_ = table.AddRow([]string{"3"})
	_ = table.AddRow([]string{"1"})
	_ = table.AddRow([]string{"2"})
	if err := table.Sort([]string{"a:asc"}); err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if table.Rows[0][0] != "1" || table.Rows[1][0] != "2" || table.Rows[2][0] != "3" {
		t.Fatalf("rows after asc sort = %v", table.Rows)
	}

	if err := table.Sort([]string{"a:desc"}); err != nil {
		t.Fatalf("Sort error: %v", err)
	}
	if table.Rows[0][0] != "3" {
		t.Fatalf("rows after desc sort = %v", table.Rows)
	}
}

func TestSortRejectsBadFormat(t *testing.T) {
	table := NewTable([]string{"a"})
	if err := table.Sort([]string{"a"}); err == nil {
		t.Fatal("expected error for sort spec missing direction")
	}
}

func TestGroupByAggregatesDeterministically(t *testing.T) {
	table := NewTable([]string{"dept", "salary"})
	_ = table.AddRow([]string{"eng", "100"})
	_ = table.AddRow([]string{"eng", "200"})
	_ = table.AddRow([]string{"sales", "50"})

	result, err := table.GroupBy([]string{"dept"}, map[string]string{"salary": "sum"})
	if err != nil {
		t.Fatalf("GroupBy error: %v", err)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("got %d groups, want 2", len(result.Rows))
	}
	// first-seen group order must be preserved: eng before sales.
	if result.Rows[0][0] != "eng" || result.Rows[1][0] != "sales" {
		t.Fatalf("group order = %v", result.Rows)
	}
}

func TestGroupByRejectsUnknownColumn(t *testing.T) {
	table := NewTable([]string{"dept"})
	_ = table.AddRow([]string{"eng"})
	if _, err := table.GroupBy([]string{"missing"}, nil); err == nil {
		t.Fatal("expected error for unknown group column")
	}
}

func TestAggregateFunctions(t *testing.T) {
	vals := []string{"1", "2", "3"}
	if got, _ := aggregate(vals, "count"); got != "3" {
		t.Fatalf("count = %s, want 3", got)
	}
	if got, _ := aggregate(vals, "sum"); got != "6" {
		t.Fatalf("sum = %s, want 6", got)
	}
	if got, _ := aggregate(vals, "avg"); got != "2" {
		t.Fatalf("avg = %s, want 2", got)
	}
	if got, _ := aggregate(vals, "minimum"); got != "1" {
		t.Fatalf("minimum = %s, want 1", got)
	}
	if got, _ := aggregate(vals, "maximum"); got != "3" {
		t.Fatalf("maximum = %s, want 3", got)
	}
	if _, err := aggregate(vals, "bogus"); err == nil {
		t.Fatal("expected error for unknown aggregation")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	table := NewTable([]string{"a"})
	_ = table.AddRow([]string{"1"})
	dup := table.Copy()
	dup.Rows[0][0] = "changed"
	if table.Rows[0][0] != "1" {
		t.Fatal("Copy() did not deep-copy rows")
	}
}

func TestExportToJSON(t *testing.T) {
	table := NewTable([]string{"name", "age"})
	_ = table.AddRow([]string{"alice", "30"})
	var buf bytes.Buffer
	if err := table.ExportToJSON(&buf); err != nil {
		t.Fatalf("ExportToJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), "alice") || !strings.Contains(buf.String(), "30") {
		t.Fatalf("json output = %s", buf.String())
	}
}

func TestExportToJSONRejectsEmptyTable(t *testing.T) {
	table := NewTable(nil)
	var buf bytes.Buffer
	if err := table.ExportToJSON(&buf); err == nil {
		t.Fatal("expected error exporting an empty table")
	}
}

func TestExportToHTML(t *testing.T) {
	table := NewTable([]string{"name"})
	_ = table.AddRow([]string{"alice"})
	var buf bytes.Buffer
	if err := table.ExportToHTML(&buf); err != nil {
		t.Fatalf("ExportToHTML error: %v", err)
	}
	if !strings.Contains(buf.String(), "alice") || !strings.Contains(buf.String(), "<table>") {
		t.Fatalf("html output missing expected content: %s", buf.String())
	}
}
