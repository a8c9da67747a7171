package humidair

import "fmt"

// Flow is a stream of moist air. MassFlow includes the water carried by the
// air.
type Flow struct {
	Air
	MassFlow float64 // kg/s
}

// NewFlow creates a flow of moist air from its total mass flow, kg/s.
func NewFlow(air Air, massFlow float64) (Flow, error) {
	if !(massFlow >= 0 && massFlow <= MaxMassFlow) {
		return Flow{}, fmt.Errorf("mass flow %g kg/s outside [0, %g]: %w", massFlow, MaxMassFlow, ErrInvalidArgument)
	}
	return Flow{Air: air, MassFlow: massFlow}, nil
}

// NewFlowOfDryAir creates a flow of moist air from its dry air mass flow, kg/s.
func NewFlowOfDryAir(air Air, dryAirMassFlow float64) (Flow, error) {
	return NewFlow(air, dryAirMassFlow*(1+air.HumidityRatio))
}

// NewFlowOfVolume creates a flow of moist air from its volumetric flow, m3/s.
func NewFlowOfVolume(air Air, volumetricFlow float64) (Flow, error) {
	return NewFlow(air, volumetricFlow*air.Density())
}

// DryAirMassFlow, kg/s
func (f Flow) DryAirMassFlow() float64 {
	return f.MassFlow / (1 + f.HumidityRatio)
}

// VolumetricFlow, m3/s
func (f Flow) VolumetricFlow() float64 {
	return f.MassFlow / f.Density()
}

// WithAir returns a flow of another air state carrying the same dry air.
func (f Flow) WithAir(air Air) (Flow, error) {
	return NewFlowOfDryAir(air, f.DryAirMassFlow())
}
