package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tabx/internal/detect"
	"tabx/internal/parser"
	"tabx/internal/table"
	"tabx/internal/writer"
)

var (
	cfgFile        string
	inputFormat    string
	outputFormat   string
	outDelimiter   string
	inputDelimiter string
	maxSize        int64
)

// usageError marks bad command-line input (unknown formats, bad
// delimiters). Exits with code 2.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// readError wraps input I/O failures so they exit with code 3 and stay
// distinguishable from parse errors at display time.
type readError struct{ err error }

func (e *readError) Error() string { return e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

var RootCmd = &cobra.Command{
	Use:   "tabx",
	Short: "Convert tabular text formats into TSV or CSV",
	Long: `tabx reads a table rendered as Markdown, MySQL CLI output,
PostgreSQL CLI output, CSV or TSV, auto-detects the format, and writes
it back out as TSV or CSV.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(os.Stdin)
		if err != nil {
			return err
		}
		return runPipeline(input, os.Stdout)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tabx: error: %v\n", err)
		var uErr *usageError
		var rErr *readError
		switch {
		case errors.As(err, &uErr):
			os.Exit(2)
		case errors.As(err, &rErr):
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tabx.yaml)")
	RootCmd.PersistentFlags().StringVarP(&inputFormat, "input-format", "i", "auto", "input format (auto, markdown, mysql, postgres, csv, tsv)")
	RootCmd.PersistentFlags().StringVarP(&outputFormat, "output-format", "o", "tsv", "output format (tsv, csv)")
	RootCmd.PersistentFlags().StringVarP(&outDelimiter, "delimiter", "d", "", "custom output delimiter (overrides --output-format)")
	RootCmd.PersistentFlags().StringVar(&inputDelimiter, "input-delimiter", "", "custom input delimiter for CSV/TSV")
	RootCmd.PersistentFlags().Int64Var(&maxSize, "max-size", 0, "maximum input size in bytes (overrides config)")

	viper.BindPFlag("input.format", RootCmd.PersistentFlags().Lookup("input-format"))
	viper.BindPFlag("output.format", RootCmd.PersistentFlags().Lookup("output-format"))
	viper.BindPFlag("output.delimiter", RootCmd.PersistentFlags().Lookup("delimiter"))
	viper.BindPFlag("input.delimiter", RootCmd.PersistentFlags().Lookup("input-delimiter"))

	viper.SetDefault("settings.max_input_bytes", int64(100*1024*1024))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable directory
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		// 2. Current directory
		viper.AddConfigPath(".")

		viper.SetConfigName("tabx")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// Stdout carries table data; keep the notice out of the pipe.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// runPipeline detects (or accepts) the input format, parses the input
// into a validated table and writes it in the selected output format.
// Blank input produces no output and no error.
func runPipeline(input string, out io.Writer) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	format, err := resolveInputFormat(input)
	if err != nil {
		return err
	}

	delim, err := parseDelimiterFlag(viper.GetString("input.delimiter"))
	if err != nil {
		return err
	}

	tbl, err := parser.Parse(format, input, delim)
	if err != nil {
		return err
	}

	return writeTable(tbl, out)
}

// resolveInputFormat applies flag > config > auto precedence. Detection
// never fails; an explicit format name must be valid.
func resolveInputFormat(input string) (table.Format, error) {
	name := viper.GetString("input.format")
	if name == "" || name == "auto" {
		return detect.Format(input), nil
	}

	format, err := table.ParseFormat(name)
	if err != nil {
		return 0, &usageError{err: err}
	}
	return format, nil
}

// writeTable serializes in the selected output format. A custom output
// delimiter takes the unquoted (TSV-style) path.
func writeTable(tbl *table.Table, out io.Writer) error {
	if custom := viper.GetString("output.delimiter"); custom != "" {
		delim, err := parseDelimiterFlag(custom)
		if err != nil {
			return err
		}
		return writer.TSV(tbl, out, delim)
	}

	switch name := viper.GetString("output.format"); name {
	case "tsv":
		return writer.TSV(tbl, out, '\t')
	case "csv":
		return writer.CSV(tbl, out)
	default:
		return &usageError{err: fmt.Errorf("invalid output format %q (valid formats: tsv, csv)", name)}
	}
}

// parseDelimiterFlag turns a flag value into a single delimiter rune.
// Empty means no override.
func parseDelimiterFlag(s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, &usageError{err: fmt.Errorf("delimiter must be a single character, got %q", s)}
	}
	return runes[0], nil
}

// readInput slurps r up to the configured size cap. The cap keeps a
// runaway pipe from exhausting memory before parsing even starts.
func readInput(r io.Reader) (string, error) {
	limit := viper.GetInt64("settings.max_input_bytes")
	if maxSize > 0 {
		limit = maxSize
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", &readError{err: fmt.Errorf("failed to read input: %w", err)}
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("input exceeds maximum size of %d bytes", limit)
	}
	return string(data), nil
}
