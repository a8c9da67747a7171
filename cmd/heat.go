package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/process"
)

func newHeatCmd(a *app) *cobra.Command {
	var in stateFlags
	var power, targetT, targetRH float64

	cmd := &cobra.Command{
		Use:   "heat",
		Short: "Calculate a heater",
		Long: `Calculate the outlet of a heater from the heat it supplies, the
outlet temperature or the outlet relative humidity.

Examples:
  moist_air_calc heat --temperature 20 --rh 50 --mass-flow 1 --power 10000
  moist_air_calc heat --temperature -10 --rh 90 --mass-flow 2 --target-temperature 22
  moist_air_calc heat --temperature 20 --rh 50 --target-rh 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inlet, err := in.flow(a.cfg.Pressure)
			if err != nil {
				return err
			}

			var res process.HeatingResult
			if err := a.collector.Observe("heat", func() error {
				switch {
				case cmd.Flags().Changed("power"):
					res, err = process.HeatingForInputHeat(inlet, power)
				case cmd.Flags().Changed("target-temperature"):
					res, err = process.HeatingForTargetTemperature(inlet, targetT)
				default:
					res, err = process.HeatingForTargetRH(inlet, targetRH)
				}
				return err
			}); err != nil {
				return err
			}

			return printHeating(cmd.OutOrStdout(), inlet, res)
		},
	}

	in.bind(cmd.Flags(), "", humidair.DefaultTemperature, humidair.DefaultRelativeHumidity, 1)
	cmd.Flags().Float64Var(&power, "power", 0, "heat supplied to the air, W")
	cmd.Flags().Float64Var(&targetT, "target-temperature", 0, "outlet dry bulb temperature, degree C")
	cmd.Flags().Float64Var(&targetRH, "target-rh", 0, "outlet relative humidity, %")
	cmd.MarkFlagsMutuallyExclusive("power", "target-temperature", "target-rh")
	cmd.MarkFlagsOneRequired("power", "target-temperature", "target-rh")
	return cmd
}

func printHeating(w io.Writer, inlet humidair.Flow, res process.HeatingResult) error {
	if err := printFlow(w, "INLET", inlet); err != nil {
		return err
	}
	if err := printFlow(w, "OUTLET", res.Outlet); err != nil {
		return err
	}
	fmt.Fprintf(w, "Heat of process: %.1f W\n", res.HeatOfProcess)
	return nil
}
