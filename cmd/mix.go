package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/process"
)

func newMixCmd(a *app) *cobra.Command {
	var first, second stateFlags
	var streams []string
	var minFirst, minSecond, targetFlow, targetT float64

	cmd := &cobra.Command{
		Use:   "mix",
		Short: "Calculate the mixing of air streams",
		Long: `Mix two air streams adiabatically, or find the split of two streams
that gives a target outlet flow and temperature. With --stream any
number of streams given as "temperature,rh,mass-flow" are mixed.

Examples:
  moist_air_calc mix --temperature1 20 --rh1 50 --temperature2 -20 --rh2 100
  moist_air_calc mix --min-flow1 0.2 --min-flow2 0.2 --target-flow 2 --target-temperature 5
  moist_air_calc mix --stream 20,50,1 --stream -20,100,1 --stream 30,40,0.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(streams) > 0 {
				flows, err := parseStreams(streams, a.cfg.Pressure)
				if err != nil {
					return err
				}
				var outlet humidair.Flow
				if err := a.collector.Observe("mix_multiple", func() error {
					outlet, err = process.MixMultipleFlows(flows...)
					return err
				}); err != nil {
					return err
				}
				return printFlow(w, "OUTLET", outlet)
			}

			f1, err := first.flow(a.cfg.Pressure)
			if err != nil {
				return err
			}
			f2, err := second.flow(a.cfg.Pressure)
			if err != nil {
				return err
			}

			var res process.MixingResult
			if cmd.Flags().Changed("target-flow") {
				err = a.collector.Observe("mix_target", func() error {
					res, err = process.MixForTargetFlowAndTemperature(f1, f2, minFirst, minSecond, targetFlow, targetT)
					return err
				})
			} else {
				err = a.collector.Observe("mix", func() error {
					res, err = process.MixTwoFlows(f1, f2)
					return err
				})
			}
			if err != nil {
				return err
			}
			return printMixing(w, res)
		},
	}

	first.bind(cmd.Flags(), "1", humidair.DefaultTemperature, humidair.DefaultRelativeHumidity, 1)
	second.bind(cmd.Flags(), "2", -20, 100, 1)
	cmd.Flags().StringArrayVar(&streams, "stream", nil, `stream as "temperature,rh,mass-flow", repeatable`)
	cmd.Flags().Float64Var(&minFirst, "min-flow1", 0, "minimum dry air mass flow of stream 1, kg/s")
	cmd.Flags().Float64Var(&minSecond, "min-flow2", 0, "minimum dry air mass flow of stream 2, kg/s")
	cmd.Flags().Float64Var(&targetFlow, "target-flow", 0, "outlet dry air mass flow, kg/s")
	cmd.Flags().Float64Var(&targetT, "target-temperature", 0, "outlet dry bulb temperature, degree C")
	cmd.MarkFlagsRequiredTogether("target-flow", "target-temperature")
	cmd.MarkFlagsMutuallyExclusive("stream", "target-flow")
	return cmd
}

// parseStreams reads "temperature,rh,mass-flow" triples.
func parseStreams(values []string, pat float64) ([]humidair.Flow, error) {
	flows := make([]humidair.Flow, 0, len(values))
	for _, value := range values {
		fields := strings.Split(value, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("stream %q: want temperature,rh,mass-flow: %w", value, humidair.ErrInvalidArgument)
		}
		var v [3]float64
		for i, field := range fields {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("stream %q: %w", value, err)
			}
			v[i] = f
		}
		s := stateFlags{temperature: v[0], rh: v[1], massFlow: v[2]}
		f, err := s.flow(pat)
		if err != nil {
			return nil, fmt.Errorf("stream %q: %w", value, err)
		}
		flows = append(flows, f)
	}
	return flows, nil
}

func printMixing(w io.Writer, res process.MixingResult) error {
	if err := printFlow(w, "STREAM 1", res.First); err != nil {
		return err
	}
	if err := printFlow(w, "STREAM 2", res.Second); err != nil {
		return err
	}
	return printFlow(w, "OUTLET", res.Outlet)
}
