package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setKey(t *testing.T, key string, value interface{}) {
	t.Helper()
	old := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, old) })
}

func TestPipelineMarkdownToTSV(t *testing.T) {
	input := "| id | name |\n|----|----|\n| 1 | Alice |\n| 2 | Bob |"

	var out strings.Builder
	if err := runPipeline(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "id\tname\n1\tAlice\n2\tBob\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPipelineCSVToTSV(t *testing.T) {
	input := "id,name\n1,Alice\n2,Bob"

	var out strings.Builder
	if err := runPipeline(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "id\tname\n1\tAlice\n2\tBob\n" {
		t.Errorf("output = %q", out.String())
	}
}

// A psql NULL must survive the full convert pipeline as an empty
// trailing TSV field.
func TestPipelinePostgresNullRoundTrip(t *testing.T) {
	input := "id | name | email\n----+-------+-----\n 1 | Alice |\n"

	var out strings.Builder
	if err := runPipeline(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "id\tname\temail\n1\tAlice\t\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPipelineMySQLToCSV(t *testing.T) {
	setKey(t, "output.format", "csv")

	input := "+----+-------+\n| id | name  |\n+----+-------+\n|  1 | Alice |\n+----+-------+"

	var out strings.Builder
	if err := runPipeline(input, &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "id,name\n1,Alice\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPipelineBlankInputIsSilent(t *testing.T) {
	var out strings.Builder
	if err := runPipeline("  \n \n", &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "" {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestPipelineForcedInputFormat(t *testing.T) {
	setKey(t, "input.format", "csv")

	// Detection would call this markdown; the explicit format wins.
	input := "a|b\n|---|---|\n1|2"

	var out strings.Builder
	if err := runPipeline(input, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "a|b\n") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPipelineUnknownInputFormat(t *testing.T) {
	setKey(t, "input.format", "excel")

	err := runPipeline("a,b\n1,2", &strings.Builder{})
	var uErr *usageError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected usageError, got %v", err)
	}
}

func TestPipelineUnknownOutputFormat(t *testing.T) {
	setKey(t, "output.format", "xml")

	err := runPipeline("a,b\n1,2", &strings.Builder{})
	var uErr *usageError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected usageError, got %v", err)
	}
}

func TestPipelineCustomOutputDelimiter(t *testing.T) {
	setKey(t, "output.delimiter", ";")

	var out strings.Builder
	if err := runPipeline("a,b\n1,2", &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "a;b\n1;2\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPipelineMultiCharDelimiterRejected(t *testing.T) {
	setKey(t, "input.delimiter", "ab")

	err := runPipeline("a,b\n1,2", &strings.Builder{})
	var uErr *usageError
	if !errors.As(err, &uErr) {
		t.Fatalf("expected usageError, got %v", err)
	}
}

func TestReadInputSizeCap(t *testing.T) {
	setKey(t, "settings.max_input_bytes", int64(16))

	_, err := readInput(strings.NewReader(strings.Repeat("x", 32)))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum size") {
		t.Errorf("expected size cap error, got %v", err)
	}

	got, err := readInput(strings.NewReader("id,name"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "id,name" {
		t.Errorf("got %q", got)
	}
}
