package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/process"
)

func newCoolCmd(a *app) *cobra.Command {
	var in stateFlags
	var supply, ret float64
	var dry bool
	var power, targetT, targetRH float64

	cmd := &cobra.Command{
		Use:   "cool",
		Short: "Calculate a cooling coil",
		Long: `Calculate the outlet, heat and condensate of a cooling coil from the
heat it takes away, the outlet temperature or the outlet relative
humidity. The coil wall temperature is the mean of the coolant supply
and return temperatures. With --dry the coil is treated as a sensible
cooler that never condenses water.

Examples:
  moist_air_calc cool --temperature 28 --rh 50 --mass-flow 1 --target-temperature 18
  moist_air_calc cool --temperature 28 --rh 50 --supply 7 --return 16 --target-rh 75
  moist_air_calc cool --temperature 28 --rh 50 --dry --power -5000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inlet, err := in.flow(a.cfg.Pressure)
			if err != nil {
				return err
			}
			coolant, err := process.NewCoolant(supply, ret)
			if err != nil {
				return err
			}
			if dry && cmd.Flags().Changed("target-rh") {
				return fmt.Errorf("a dry cooler cannot target relative humidity: %w", humidair.ErrInvalidArgument)
			}

			operation := "cool"
			if dry {
				operation = "dry_cool"
			}

			var res process.CoolingResult
			if err := a.collector.Observe(operation, func() error {
				switch {
				case dry && cmd.Flags().Changed("power"):
					res, err = process.DryCoolingForInputHeat(inlet, power)
				case dry:
					res, err = process.DryCoolingForTargetTemperature(inlet, targetT)
				case cmd.Flags().Changed("power"):
					res, err = process.CoolingForInputHeat(inlet, coolant, power)
				case cmd.Flags().Changed("target-temperature"):
					res, err = process.CoolingForTargetTemperature(inlet, coolant, targetT)
				default:
					res, err = process.CoolingForTargetRH(inlet, coolant, targetRH)
				}
				return err
			}); err != nil {
				return err
			}

			return printCooling(cmd.OutOrStdout(), inlet, res, !dry)
		},
	}

	in.bind(cmd.Flags(), "", 28, humidair.DefaultRelativeHumidity, 1)
	cmd.Flags().Float64Var(&supply, "supply", process.DefaultSupplyTemperature, "coolant supply temperature, degree C")
	cmd.Flags().Float64Var(&ret, "return", process.DefaultReturnTemperature, "coolant return temperature, degree C")
	cmd.Flags().BoolVar(&dry, "dry", false, "sensible cooling only, use with caution")
	cmd.Flags().Float64Var(&power, "power", 0, "heat of process, W, negative")
	cmd.Flags().Float64Var(&targetT, "target-temperature", 0, "outlet dry bulb temperature, degree C")
	cmd.Flags().Float64Var(&targetRH, "target-rh", 0, "outlet relative humidity, %")
	cmd.MarkFlagsMutuallyExclusive("power", "target-temperature", "target-rh")
	cmd.MarkFlagsOneRequired("power", "target-temperature", "target-rh")
	return cmd
}

func printCooling(w io.Writer, inlet humidair.Flow, res process.CoolingResult, coil bool) error {
	if err := printFlow(w, "INLET", inlet); err != nil {
		return err
	}
	if err := printFlow(w, "OUTLET", res.Outlet); err != nil {
		return err
	}
	fmt.Fprintf(w, "Heat of process: %.1f W\n", res.HeatOfProcess)
	fmt.Fprintf(w, "Condensate: %.6f kg/s at %.2f degree C\n", res.Condensate.MassFlow, res.Condensate.Temperature)
	if coil {
		fmt.Fprintf(w, "Bypass factor: %.4f\n", res.BypassFactor)
	}
	return nil
}
