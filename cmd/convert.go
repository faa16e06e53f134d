package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertFile string

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a table from a file or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSource(convertFile)
		if err != nil {
			return err
		}
		return runPipeline(input, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "input file (defaults to stdin)")
}

// readSource reads from path when given, stdin otherwise. Both honor
// the input size cap.
func readSource(path string) (string, error) {
	if path == "" {
		return readInput(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &readError{err: fmt.Errorf("failed to open %s: %w", path, err)}
	}
	defer f.Close()

	return readInput(f)
}
