package cmd

import (
	"github.com/spf13/cobra"

	"moist_air_calc/internal/humidair"
)

func newPropertiesCmd(a *app) *cobra.Command {
	var ta, rh, x float64

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Calculate the properties of a moist air state",
		Long: `Calculate every property of a moist air state given by its dry bulb
temperature and either its relative humidity or its humidity ratio.

Examples:
  moist_air_calc properties --temperature 20 --rh 50
  moist_air_calc properties --temperature 30 --x 0.012 --pressure 90000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var air humidair.Air
			var err error
			if cmd.Flags().Changed("x") {
				air, err = humidair.NewAir(a.cfg.Pressure, ta, x)
			} else {
				air, err = humidair.NewAirFromRH(a.cfg.Pressure, ta, rh)
			}
			if err != nil {
				return err
			}

			var props humidair.Properties
			if err := a.collector.Observe("properties", func() error {
				props, err = air.Properties()
				return err
			}); err != nil {
				return err
			}

			printProperties(cmd.OutOrStdout(), props)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&ta, "temperature", "t", humidair.DefaultTemperature, "dry bulb temperature, degree C")
	cmd.Flags().Float64Var(&rh, "rh", humidair.DefaultRelativeHumidity, "relative humidity, %")
	cmd.Flags().Float64Var(&x, "x", 0, "humidity ratio, kg/kg(DA), used instead of --rh")
	cmd.MarkFlagsMutuallyExclusive("rh", "x")
	return cmd
}
