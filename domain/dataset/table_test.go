package dataset

import (
	"testing"
)

func col(name string, values ...Value) Column {
	return Column{Name: name, Values: values}
}

func TestNewTablePadsShortColumns(t *testing.T) {
	table := NewTable([]Column{
		col("a", NewNumericValue(1), NewNumericValue(2), NewNumericValue(3)),
		col("b", NewStringValue("x")),
	})

	if table.NumRows() != 3 {
		t.Fatalf("NumRows = %d, want 3", table.NumRows())
	}
	b, ok := table.Column("b")
	if !ok {
		t.Fatal("column b not found")
	}
	if !b.Values[1].IsMissing || !b.Values[2].IsMissing {
		t.Error("short column should be padded with missing cells")
	}
}

func TestNewTableDisambiguatesDuplicateNames(t *testing.T) {
	table := NewTable([]Column{
		col("x", NewNumericValue(1)),
		col("x", NewNumericValue(2)),
		col("x", NewNumericValue(3)),
	})

	names := table.ColumnNames()
	want := []string{"x", "x_1", "x_2"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestRowKeyDistinguishesBoundaries(t *testing.T) {
	table := NewTable([]Column{
		col("a", NewStringValue("ab"), NewStringValue("a")),
		col("b", NewStringValue("c"), NewStringValue("bc")),
	})

	k0 := table.RowKey(0, []string{"a", "b"})
	k1 := table.RowKey(1, []string{"a", "b"})
	if k0 == k1 {
		t.Errorf("rows (ab,c) and (a,bc) must not collide: %q", k0)
	}
}

func TestRowExportsTypedValues(t *testing.T) {
	table := NewTable([]Column{
		col("n", NewNumericValue(1.5)),
		col("s", NewStringValue("hi")),
		col("m", NewMissingValue()),
	})

	row := table.Row(0)
	if row["n"] != 1.5 {
		t.Errorf("row[n] = %v, want 1.5", row["n"])
	}
	if row["s"] != "hi" {
		t.Errorf("row[s] = %v, want hi", row["s"])
	}
	if row["m"] != nil {
		t.Errorf("row[m] = %v, want nil", row["m"])
	}
}
