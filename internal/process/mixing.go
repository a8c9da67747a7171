package process

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/solver"
)

/*
MixTwoFlows mixes two moist air streams.

	Args:
	    first: first inlet flow
	    second: second inlet flow

	Returns:
	    both inlets and the outlet

	Notes:
	    Humidity ratio and specific enthalpy are averaged by dry air mass
	    flow. The outlet pressure is the higher inlet pressure, also when
	    one stream carries no dry air and the other passes through with its
	    temperature and humidity ratio.
*/
func MixTwoFlows(first, second humidair.Flow) (MixingResult, error) {
	m, err := newMixer(first, second)
	if err != nil {
		return MixingResult{}, err
	}
	outlet, err := m.mix(first.DryAirMassFlow(), second.DryAirMassFlow())
	if err != nil {
		return MixingResult{}, err
	}
	return MixingResult{First: first, Second: second, Outlet: outlet}, nil
}

/*
MixMultipleFlows mixes any number of moist air streams.

	Args:
	    flows: inlet flows

	Returns:
	    outlet flow

	Notes:
	    The outlet pressure is the highest inlet pressure.
*/
func MixMultipleFlows(flows ...humidair.Flow) (humidair.Flow, error) {
	if len(flows) == 0 {
		return humidair.Flow{}, fmt.Errorf("no flows to mix: %w", humidair.ErrInvalidArgument)
	}

	n := len(flows)
	mda := make([]float64, n)
	x := make([]float64, n)
	i := make([]float64, n)
	pat := make([]float64, n)
	for k, f := range flows {
		var err error
		if i[k], err = f.SpecificEnthalpy(); err != nil {
			return humidair.Flow{}, err
		}
		mda[k] = f.DryAirMassFlow()
		x[k] = f.HumidityRatio
		pat[k] = f.Pressure
	}

	total := floats.Sum(mda)
	if total == 0 {
		return humidair.Flow{}, fmt.Errorf("sum of dry air mass flows is zero: %w", humidair.ErrInvalidArgument)
	}

	return outletOf(floats.Max(pat), floats.Dot(mda, i)/total, floats.Dot(mda, x)/total, total)
}

/*
MixForTargetFlowAndTemperature splits a target outlet flow between two
streams so that the mix reaches the target temperature.

	Args:
	    first: first inlet, its state is used
	    second: second inlet, its state is used
	    minFirst: minimum dry air mass flow of the first stream, kg/s
	    minSecond: minimum dry air mass flow of the second stream, kg/s
	    mdaOut: target outlet dry air mass flow, kg/s
	    ta: target outlet temperature, degree C

	Returns:
	    both inlets at the chosen dry air mass flows and the outlet

	Notes:
	    When the minimum flows exceed mdaOut, the minimum flows are mixed.
	    When ta cannot be reached, the extreme split closest to it is
	    returned, the one with the most of the first stream on a tie.
*/
func MixForTargetFlowAndTemperature(first, second humidair.Flow, minFirst, minSecond, mdaOut, ta float64) (MixingResult, error) {
	if !(minFirst >= 0) || !(minSecond >= 0) || !(mdaOut >= 0) || math.IsNaN(ta) {
		return MixingResult{}, fmt.Errorf("mixing flows min %g, %g to %g kg/s at %g degree C: %w",
			minFirst, minSecond, mdaOut, ta, humidair.ErrInvalidArgument)
	}
	minSum := minFirst + minSecond
	if minSum == 0 && mdaOut == 0 {
		return MixingResult{}, fmt.Errorf("target outlet flow is zero: %w", humidair.ErrInvalidArgument)
	}

	m, err := newMixer(first, second)
	if err != nil {
		return MixingResult{}, err
	}
	if minSum > mdaOut {
		return m.result(minFirst, minSecond)
	}

	maxFirst := mdaOut - minSecond
	maxSecond := mdaOut - minFirst
	nearFirst, err := m.result(maxFirst, minSecond)
	if err != nil {
		return MixingResult{}, err
	}
	nearSecond, err := m.result(minFirst, maxSecond)
	if err != nil {
		return MixingResult{}, err
	}

	t1 := nearFirst.Outlet.Temperature
	t2 := nearSecond.Outlet.Temperature
	if (t1 <= t2 && ta <= t1) || (t1 >= t2 && ta >= t1) {
		return nearFirst, nil
	}
	if (t2 <= t1 && ta <= t2) || (t2 >= t1 && ta >= t2) {
		return nearSecond, nil
	}

	s := solver.New("mixing flow for temperature", solver.WithBounds(minFirst, maxFirst))
	mdaFirst, err := s.FindRoot(func(mda float64) (float64, error) {
		outlet, err := m.mix(mda, mdaOut-mda)
		if err != nil {
			return 0, err
		}
		return ta - outlet.Temperature, nil
	}, minFirst, maxFirst)
	if err != nil {
		return MixingResult{}, fmt.Errorf("mixing %g kg/s at %g degree C: %w", mdaOut, ta, err)
	}

	return m.result(mdaFirst, mdaOut-mdaFirst)
}

// mixer holds the two inlet states, so a mix at other dry air flows needs a
// single enthalpy inversion.
type mixer struct {
	first, second humidair.Flow
	i1, i2        float64
	pat           float64
}

func newMixer(first, second humidair.Flow) (*mixer, error) {
	m := &mixer{
		first:  first,
		second: second,
		pat:    math.Max(first.Pressure, second.Pressure),
	}
	var err error
	if m.i1, err = first.SpecificEnthalpy(); err != nil {
		return nil, err
	}
	if m.i2, err = second.SpecificEnthalpy(); err != nil {
		return nil, err
	}
	return m, nil
}

/*
mix blends the inlets carried by the given dry air mass flows.

	Args:
	    m1: dry air mass flow of the first inlet, kg/s
	    m2: dry air mass flow of the second inlet, kg/s

	Returns:
	    outlet flow
*/
func (m *mixer) mix(m1, m2 float64) (humidair.Flow, error) {
	total := m1 + m2
	if m1 == 0 {
		return m.alone(m.second, m2)
	}
	if m2 == 0 || total == 0 {
		return m.alone(m.first, total)
	}

	x3 := (m1*m.first.HumidityRatio + m2*m.second.HumidityRatio) / total
	i3 := (m1*m.i1 + m2*m.i2) / total
	return outletOf(m.pat, i3, x3, total)
}

// alone passes a single inlet through at the mixing pressure.
func (m *mixer) alone(f humidair.Flow, mda float64) (humidair.Flow, error) {
	air, err := humidair.NewAir(m.pat, f.Temperature, f.HumidityRatio)
	if err != nil {
		return humidair.Flow{}, err
	}
	return humidair.NewFlowOfDryAir(air, mda)
}

func (m *mixer) result(m1, m2 float64) (MixingResult, error) {
	first, err := withDryAirFlow(m.first, m1)
	if err != nil {
		return MixingResult{}, err
	}
	second, err := withDryAirFlow(m.second, m2)
	if err != nil {
		return MixingResult{}, err
	}
	outlet, err := m.mix(m1, m2)
	if err != nil {
		return MixingResult{}, err
	}
	return MixingResult{First: first, Second: second, Outlet: outlet}, nil
}

// outletOf inverts the blended enthalpy to the outlet state.
func outletOf(pat, i, x, mda float64) (humidair.Flow, error) {
	ta, err := humidair.DryBulbTemperatureIX(i, x, pat)
	if err != nil {
		return humidair.Flow{}, err
	}
	air, err := humidair.NewAir(pat, ta, x)
	if err != nil {
		return humidair.Flow{}, err
	}
	return humidair.NewFlowOfDryAir(air, mda)
}
