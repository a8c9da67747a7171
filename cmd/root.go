package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/version"
)

func newRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:   "moist_air_calc",
		Short: "Moist air properties and air handling process calculator",
		Long: `moist_air_calc - moist air properties and HVAC processes

Calculates the thermophysical properties of moist air and the outlet
state, heat and condensate of air handling processes:
  - Heating by heat, target temperature or target relative humidity
  - Dry and real coil cooling (bypass factor model)
  - Mixing of two or more air streams

Units: degree C, Pa, %, kg/kg(DA), kg/s, W.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Metrics {
				return nil
			}
			return a.collector.WriteText(cmd.ErrOrStderr())
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moist_air_calc v%s\n\n", version.Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Use 'moist_air_calc --help' to see available commands.")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().Float64Var(&a.cfg.Pressure, "pressure", a.cfg.Pressure, "absolute pressure, Pa")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.cfg.Metrics, "metrics", false, "write Prometheus metrics to stderr on exit")

	root.AddCommand(
		newVersionCmd(),
		newPropertiesCmd(a),
		newBatchCmd(a),
		newHeatCmd(a),
		newCoolCmd(a),
		newMixCmd(a),
	)
	return root
}

// Execute runs the command tree and exits with status 1 on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
