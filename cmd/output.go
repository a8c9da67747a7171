package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"moist_air_calc/internal/humidair"
)

// stateFlags describes one air stream on the command line.
type stateFlags struct {
	temperature float64
	rh          float64
	massFlow    float64
}

// bind registers the stream flags, their names ending in suffix ("", "1" or "2").
func (s *stateFlags) bind(fs *pflag.FlagSet, suffix string, ta, rh, massFlow float64) {
	fs.Float64Var(&s.temperature, "temperature"+suffix, ta, "dry bulb temperature, degree C")
	fs.Float64Var(&s.rh, "rh"+suffix, rh, "relative humidity, %")
	fs.Float64Var(&s.massFlow, "mass-flow"+suffix, massFlow, "dry air mass flow, kg/s")
}

func (s *stateFlags) flow(pat float64) (humidair.Flow, error) {
	air, err := humidair.NewAirFromRH(pat, s.temperature, s.rh)
	if err != nil {
		return humidair.Flow{}, err
	}
	return humidair.NewFlowOfDryAir(air, s.massFlow)
}

func printProperties(w io.Writer, p humidair.Properties) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Pressure:\t%.1f\tPa\n", p.Pressure)
	fmt.Fprintf(tw, "  Dry bulb temperature:\t%.3f\tdegree C\n", p.Temperature)
	fmt.Fprintf(tw, "  Relative humidity:\t%.3f\t%%\n", p.RelativeHumidity)
	fmt.Fprintf(tw, "  Humidity ratio:\t%.6f\tkg/kg(DA)\n", p.HumidityRatio)
	fmt.Fprintf(tw, "  Max humidity ratio:\t%.6f\tkg/kg(DA)\n", p.MaxHumidityRatio)
	fmt.Fprintf(tw, "  Saturation pressure:\t%.2f\tPa\n", p.SaturationPressure)
	fmt.Fprintf(tw, "  Dew point:\t%.3f\tdegree C\n", p.DewPoint)
	fmt.Fprintf(tw, "  Wet bulb temperature:\t%.3f\tdegree C\n", p.WetBulb)
	fmt.Fprintf(tw, "  Specific enthalpy:\t%.3f\tkJ/kg(DA)\n", p.SpecificEnthalpy)
	fmt.Fprintf(tw, "  Specific heat:\t%.5f\tkJ/(kg K)\n", p.SpecificHeat)
	fmt.Fprintf(tw, "  Density:\t%.5f\tkg/m3\n", p.Density)
	fmt.Fprintf(tw, "  Dynamic viscosity:\t%.4e\tkg/(m s)\n", p.DynamicViscosity)
	fmt.Fprintf(tw, "  Kinematic viscosity:\t%.4e\tm2/s\n", p.KinematicViscosity)
	fmt.Fprintf(tw, "  Thermal conductivity:\t%.5f\tW/(m K)\n", p.ThermalConductivity)
	fmt.Fprintf(tw, "  Thermal diffusivity:\t%.4e\tm2/s\n", p.ThermalDiffusivity)
	fmt.Fprintf(tw, "  Prandtl number:\t%.4f\t-\n", p.PrandtlNumber)
	tw.Flush()
}

func printFlow(w io.Writer, title string, f humidair.Flow) error {
	rh, err := f.RelativeHumidity()
	if err != nil {
		return err
	}
	i, err := f.SpecificEnthalpy()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s:\n", title)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Dry bulb temperature:\t%.3f\tdegree C\n", f.Temperature)
	fmt.Fprintf(tw, "  Relative humidity:\t%.3f\t%%\n", rh)
	fmt.Fprintf(tw, "  Humidity ratio:\t%.6f\tkg/kg(DA)\n", f.HumidityRatio)
	fmt.Fprintf(tw, "  Specific enthalpy:\t%.3f\tkJ/kg(DA)\n", i)
	fmt.Fprintf(tw, "  Dry air mass flow:\t%.4f\tkg/s\n", f.DryAirMassFlow())
	fmt.Fprintf(tw, "  Volumetric flow:\t%.4f\tm3/s\n", f.VolumetricFlow())
	return tw.Flush()
}
