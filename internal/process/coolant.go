package process

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"moist_air_calc/internal/humidair"
)

const (
	// DefaultSupplyTemperature of chilled water, degree C
	DefaultSupplyTemperature = 6.0
	// DefaultReturnTemperature of chilled water, degree C
	DefaultReturnTemperature = 12.0
)

// Coolant is the medium flowing through a cooling coil.
type Coolant struct {
	SupplyTemperature float64 // degree C
	ReturnTemperature float64 // degree C
}

// NewCoolant validates supply and return temperatures. The coolant warms up
// in the coil, so the return cannot be colder than the supply.
func NewCoolant(supply, ret float64) (Coolant, error) {
	if math.IsNaN(supply) || math.IsNaN(ret) || supply > ret {
		return Coolant{}, fmt.Errorf("coolant supply %g and return %g degree C: %w",
			supply, ret, humidair.ErrInvalidArgument)
	}
	return Coolant{SupplyTemperature: supply, ReturnTemperature: ret}, nil
}

// DefaultCoolant is chilled water at 6/12 degree C.
func DefaultCoolant() Coolant {
	return Coolant{SupplyTemperature: DefaultSupplyTemperature, ReturnTemperature: DefaultReturnTemperature}
}

// AverageWallTemperature of the coil surface, degree C
func (c Coolant) AverageWallTemperature() float64 {
	return stat.Mean([]float64{c.SupplyTemperature, c.ReturnTemperature}, nil)
}
