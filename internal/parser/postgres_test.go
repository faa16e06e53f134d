package parser_test

import (
	"reflect"
	"testing"

	"tabx/internal/parser"
)

func TestPostgresBasic(t *testing.T) {
	input := ` id | store_id | location_id | name | active
----+----------+-------------+------+--------
  1 |        1 | loc-2299    | 2299 | t
  2 |        1 | loc-4510    | 4510 | t`

	tbl, err := parser.Postgres(input)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"id", "store_id", "location_id", "name", "active"}
	if !reflect.DeepEqual(tbl.Headers(), want) {
		t.Errorf("headers = %v, want %v", tbl.Headers(), want)
	}
	if !reflect.DeepEqual(tbl.Rows()[0], []string{"1", "1", "loc-2299", "2299", "t"}) {
		t.Errorf("rows = %v", tbl.Rows())
	}
}

// An empty cell is a SQL NULL. It must be preserved, not filtered,
// or every later column silently shifts left.
func TestPostgresPreservesNullCells(t *testing.T) {
	input := "id | name | email\n----+-------+-----\n 1 | Alice |\n 2 |  | bob@example.com"

	tbl, err := parser.Postgres(input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tbl.Rows()[0], []string{"1", "Alice", ""}) {
		t.Errorf("row 1 = %v, want trailing empty cell", tbl.Rows()[0])
	}
	if !reflect.DeepEqual(tbl.Rows()[1], []string{"2", "", "bob@example.com"}) {
		t.Errorf("row 2 = %v, want middle empty cell", tbl.Rows()[1])
	}
}

func TestPostgresStrictSeparatorOnly(t *testing.T) {
	// "+ - + -" is not a separator; with no separator seen, later lines
	// are not data rows and the table keeps only its header.
	input := "id | name\n+ - + -\n 1 | Alice"

	tbl, err := parser.Postgres(input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tbl.Headers(), []string{"id", "name"}) {
		t.Errorf("headers = %v", tbl.Headers())
	}
	if !tbl.IsEmpty() {
		t.Errorf("rows = %v, want none without a valid separator", tbl.Rows())
	}
}

func TestPostgresSeparatorWithPadding(t *testing.T) {
	input := "a | b\n  ----+----  \n 1 | 2"

	tbl, err := parser.Postgres(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows()) != 1 {
		t.Errorf("rows = %v", tbl.Rows())
	}
}

func TestPostgresEmptyInput(t *testing.T) {
	tbl, err := parser.Postgres("")
	if err != nil {
		t.Fatal(err)
	}
	if !tbl.IsEmpty() {
		t.Error("expected empty table")
	}
}
