package humidair

import (
	"fmt"
	"math"
)

// Air is a moist air state. Every other property is derived from these three
// values.
type Air struct {
	Pressure      float64 // absolute pressure, Pa
	Temperature   float64 // dry bulb temperature, degree C
	HumidityRatio float64 // kg/kg(DA)
}

// Properties is a snapshot of the derived properties of an Air.
type Properties struct {
	Air
	RelativeHumidity    float64 // %
	SaturationPressure  float64 // Pa
	MaxHumidityRatio    float64 // kg/kg(DA)
	DewPoint            float64 // degree C
	WetBulb             float64 // degree C
	SpecificEnthalpy    float64 // kJ/kg(DA)
	SpecificHeat        float64 // kJ/(kg K)
	Density             float64 // kg/m3
	DynamicViscosity    float64 // kg/(m s)
	KinematicViscosity  float64 // m2/s
	ThermalConductivity float64 // W/(m K)
	ThermalDiffusivity  float64 // m2/s
	PrandtlNumber       float64 // -
}

/*
NewAir creates an air state from its humidity ratio.

	Args:
	    pat: absolute pressure, Pa
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)
*/
func NewAir(pat, ta, x float64) (Air, error) {
	if !(pat > 0) || math.IsInf(pat, 0) {
		return Air{}, fmt.Errorf("pressure %g Pa: %w", pat, ErrInvalidArgument)
	}
	if !(ta >= MinTemperature && ta <= MaxTemperature) {
		return Air{}, fmt.Errorf("temperature %g degree C outside [%g, %g]: %w",
			ta, MinTemperature, MaxTemperature, ErrInvalidArgument)
	}
	if !(x >= 0) || math.IsInf(x, 0) {
		return Air{}, fmt.Errorf("humidity ratio %g: %w", x, ErrInvalidArgument)
	}
	return Air{Pressure: pat, Temperature: ta, HumidityRatio: x}, nil
}

/*
NewAirFromRH creates an air state from its relative humidity.

	Args:
	    pat: absolute pressure, Pa
	    ta: dry bulb temperature, degree C
	    rh: relative humidity, %, [0, 100]
*/
func NewAirFromRH(pat, ta, rh float64) (Air, error) {
	if !(rh >= 0 && rh <= 100) {
		return Air{}, fmt.Errorf("relative humidity %g %%: %w", rh, ErrInvalidArgument)
	}
	if _, err := NewAir(pat, ta, 0); err != nil {
		return Air{}, err
	}
	ps, err := SaturationPressure(ta)
	if err != nil {
		return Air{}, err
	}
	if rh/100*ps >= pat {
		return Air{}, fmt.Errorf("vapour pressure at %g degree C, %g %% exceeds %g Pa: %w",
			ta, rh, pat, ErrPhysicallyImpossible)
	}
	return NewAir(pat, ta, HumidityRatio(rh, ps, pat))
}

// WithTemperature returns a copy of the state at another temperature.
func (a Air) WithTemperature(ta float64) (Air, error) {
	return NewAir(a.Pressure, ta, a.HumidityRatio)
}

func (a Air) SaturationPressure() (float64, error) {
	return SaturationPressure(a.Temperature)
}

func (a Air) RelativeHumidity() (float64, error) {
	return RelativeHumidity(a.Temperature, a.HumidityRatio, a.Pressure)
}

func (a Air) MaxHumidityRatio() (float64, error) {
	ps, err := a.SaturationPressure()
	if err != nil {
		return 0, err
	}
	return MaxHumidityRatio(ps, a.Pressure), nil
}

func (a Air) DewPoint() (float64, error) {
	rh, err := a.RelativeHumidity()
	if err != nil {
		return 0, err
	}
	return DewPointTemperature(a.Temperature, rh, a.Pressure)
}

func (a Air) WetBulb() (float64, error) {
	rh, err := a.RelativeHumidity()
	if err != nil {
		return 0, err
	}
	return WetBulbTemperature(a.Temperature, rh, a.Pressure)
}

func (a Air) SpecificEnthalpy() (float64, error) {
	return SpecificEnthalpy(a.Temperature, a.HumidityRatio, a.Pressure)
}

func (a Air) Density() float64 {
	return Density(a.Temperature, a.HumidityRatio, a.Pressure)
}

// Properties evaluates every derived property of the state.
func (a Air) Properties() (Properties, error) {
	p := Properties{Air: a}

	ps, err := a.SaturationPressure()
	if err != nil {
		return Properties{}, err
	}
	p.SaturationPressure = ps
	p.MaxHumidityRatio = MaxHumidityRatio(ps, a.Pressure)
	p.RelativeHumidity = relativeHumidityAt(a.HumidityRatio, ps, a.Pressure)

	if p.DewPoint, err = DewPointTemperature(a.Temperature, p.RelativeHumidity, a.Pressure); err != nil {
		return Properties{}, err
	}
	if p.WetBulb, err = WetBulbTemperature(a.Temperature, p.RelativeHumidity, a.Pressure); err != nil {
		return Properties{}, err
	}
	p.SpecificEnthalpy = specificEnthalpyAt(a.Temperature, a.HumidityRatio, ps, a.Pressure)

	p.SpecificHeat = SpecificHeat(a.Temperature, a.HumidityRatio)
	p.Density = a.Density()
	p.DynamicViscosity = DynamicViscosity(a.Temperature, a.HumidityRatio)
	p.KinematicViscosity = p.DynamicViscosity / p.Density
	p.ThermalConductivity = ThermalConductivity(a.Temperature, a.HumidityRatio)
	p.ThermalDiffusivity = ThermalDiffusivity(p.Density, p.ThermalConductivity, p.SpecificHeat)
	p.PrandtlNumber = PrandtlNumber(p.DynamicViscosity, p.ThermalConductivity, p.SpecificHeat)

	return p, nil
}
