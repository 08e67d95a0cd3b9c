package present

import (
	"bytes"
	"strings"
	"testing"
)

func newTestTable() *Table {
	table := NewTable([]string{"name", "age"})
	_ = table.AddRow([]string{"alice", "30"})
	_ = table.AddRow([]string{"bob", "40"})
	return table
}

func TestBrowserHeadCommand(t *testing.T) {
	var out bytes.Buffer
	b := NewBrowser(newTestTable(), "data.csv", &out)
	b.Run(strings.NewReader("head 1\nquit\n"))
	if !strings.Contains(out.String(), "alice") {
		t.Fatalf("expected head output to include alice: %s", out.String())
	}
	if strings.Contains(out.String(), "bob") {
		t.Fatalf("head 1 should not include bob: %s", out.String())
	}
}

func TestBrowserSchemaCommand(t *testing.T) {
	var out bytes.Buffer
	b := NewBrowser(newTestTable(), "data.csv", &out)
	b.Run(strings.NewReader("schema\nquit\n"))
	if !strings.Contains(out.String(), "data.csv") || !strings.Contains(out.String(), "columns: 2") {
		t.Fatalf("schema output missing expected fields: %s", out.String())
	}
}

func TestBrowserFilterCommand(t *testing.T) {
	var out bytes.Buffer
	b := NewBrowser(newTestTable(), "data.csv", &out)
	b.Run(strings.NewReader("filter age > 35\nquit\n"))
	if !strings.Contains(out.String(), "filtered to 1 rows") {
		t.Fatalf("expected filter to reduce to 1 row: %s", out.String())
	}
	if !strings.Contains(out.String(), "bob") {
		t.Fatalf("expected filtered output to include bob: %s", out.String())
	}
}

func TestBrowserUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	b := NewBrowser(newTestTable(), "data.csv", &out)
	b.Run(strings.NewReader("bogus\nquit\n"))
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected unknown command message: %s", out.String())
	}
}

func TestMatchesFilterOperators(t *testing.T) {
	cases := []struct {
		val, op, target string
		want            bool
	}{
		{"5", "=", "5", true},
		{"5", "!=", "6", true},
		{"5", ">", "3", true},
		{"5", "<", "3", false},
		{"5", ">=", "5", true},
		{"5", "<=", "4", false},
		{"abc", ">", "1", false},
	}
	for _, c := range cases {
		if got := matchesFilter(c.val, c.op, c.target); got != c.want {
			t.Errorf("matchesFilter(%q, %q, %q) = %v, want %v", c.val, c.op, c.target, got, c.want)
		}
	}
}
