package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/airtable"
)

func newBatchCmd(a *app) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate the properties of a CSV table of air states",
		Long: `Read air states from a CSV file with the columns
pressure,temperature,relative_humidity and write one row of properties
per state. An empty pressure cell takes the value of --pressure.

Examples:
  moist_air_calc batch --input states.csv
  moist_air_calc batch -i states.csv -o properties.csv --log-level info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			slog.Info("reading air states", "input", input)
			rows, err := airtable.ReadFile(input)
			if err != nil {
				return err
			}

			slog.Info("evaluating", "rows", len(rows))
			var out []*airtable.OutputRow
			if err := a.collector.Observe("batch", func() error {
				out, err = airtable.Evaluate(rows, a.cfg.Pressure)
				return err
			}); err != nil {
				return err
			}
			a.collector.RecordBatch(len(out), time.Since(start))

			if output == "" {
				if err := airtable.Write(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else {
				slog.Info("writing properties", "output", output)
				if err := writeTable(output, out); err != nil {
					return err
				}
			}

			slog.Info("done", "rows", len(out), "elapsed_time", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV file of air states [required]")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file for the properties, stdout when empty")
	cmd.MarkFlagRequired("input")
	return cmd
}

func writeTable(path string, rows []*airtable.OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := airtable.Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
