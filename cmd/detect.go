package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tabx/internal/detect"
)

var detectFile string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected input format and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readSource(detectFile)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, detect.Format(input))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(detectCmd)
	detectCmd.Flags().StringVarP(&detectFile, "file", "f", "", "input file (defaults to stdin)")
}
