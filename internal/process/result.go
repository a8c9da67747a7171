// Package process simulates steady state air handling processes: heating,
// dry and real coil cooling and mixing of moist air streams.
//
// Heat of process is in W, positive for heating and negative for cooling.
// Mass balances run on the dry air mass flow of each stream. Errors wrap
// humidair.ErrInvalidArgument, humidair.ErrPhysicallyImpossible or
// solver.ErrNotConverged.
package process

import (
	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/liquidwater"
)

// HeatingResult is the outcome of a heating or a dry cooling process.
type HeatingResult struct {
	Outlet        humidair.Flow
	HeatOfProcess float64 // W
}

// CoolingResult is the outcome of a cooling process. Condensate has zero
// mass flow when the coil stays dry.
type CoolingResult struct {
	Outlet        humidair.Flow
	HeatOfProcess float64 // W
	Condensate    liquidwater.Flow
	BypassFactor  float64 // -
}

// MixingResult holds both inlet streams at the dry air flows that were mixed
// and the resulting outlet stream.
type MixingResult struct {
	First  humidair.Flow
	Second humidair.Flow
	Outlet humidair.Flow
}

// withDryAirFlow returns the state of f carried by another dry air mass flow.
func withDryAirFlow(f humidair.Flow, mda float64) (humidair.Flow, error) {
	return humidair.NewFlowOfDryAir(f.Air, mda)
}
