package cmd

import (
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tabx/internal/sample"
)

var (
	sampleRows int
	sampleSeed int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a fake data table for testing pipelines",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := viper.GetInt("settings.sample_rows")
		if sampleRows > 0 {
			rows = sampleRows
		}

		// Progress goes to stderr; stdout carries the table.
		var onProgress func()
		var p *uiprogress.Progress
		if rows > 0 {
			p = uiprogress.New()
			p.Out = os.Stderr
			p.Start()
			bar := p.AddBar(rows).AppendCompleted().PrependElapsed()
			onProgress = func() { bar.Incr() }
		}

		tbl, err := sample.Generate(rows, sampleSeed, onProgress)
		if p != nil {
			p.Stop()
		}
		if err != nil {
			return err
		}
		return writeTable(tbl, os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleRows, "rows", 0, "number of rows to generate (overrides config)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed for reproducible output (0 = random)")

	viper.SetDefault("settings.sample_rows", 100)
}
