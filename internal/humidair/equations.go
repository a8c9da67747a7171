// Package humidair computes thermophysical properties of moist air as a
// mixture of dry air and water vapour, with liquid or ice fog when the air
// holds more water than saturation allows.
//
// Units: temperature degree C, pressure Pa, humidity ratio kg/kg(DA),
// relative humidity %, specific enthalpy kJ/kg(DA).
//
// Functions that invert a relation run their own solver instance per call,
// so every function in this package is safe for concurrent use.
package humidair

import (
	"fmt"
	"math"

	"moist_air_calc/internal/dryair"
	"moist_air_calc/internal/ice"
	"moist_air_calc/internal/liquidwater"
	"moist_air_calc/internal/solver"
	"moist_air_calc/internal/watervapour"
)

/*
SaturationPressure calculates the saturation pressure of water vapour over
liquid water (ta >= 0) or over ice (ta < 0).

	Args:
	    ta: dry bulb temperature, degree C

	Returns:
	    saturation pressure, Pa

	Notes:
	    Hyland and Wexler (1983). The Arden-Buck value is used as the
	    starting estimate of the search, valid between -100 and 200 degree C.
*/
func SaturationPressure(ta float64) (float64, error) {
	tk := ta + kelvin

	var a float64
	var lnPs float64
	if ta < 0 {
		const c1 = -5.6745359e+03
		const c2 = 6.3925247e+00
		const c3 = -9.6778430e-03
		const c4 = 6.2215701e-07
		const c5 = 2.0747825e-09
		const c6 = -9.4840240e-13
		const c7 = 4.1635019e+00
		a = 6.1115
		lnPs = c1/tk + c2 + c3*tk + c4*tk*tk + c5*tk*tk*tk + c6*tk*tk*tk*tk + c7*math.Log(tk)
	} else {
		const c8 = -5.8002206e+03
		const c9 = 1.3914993e+00
		const c10 = -4.8640239e-02
		const c11 = 4.1764768e-05
		const c12 = -1.4452093e-08
		const c13 = 6.5459673e+00
		a = 6.1121
		lnPs = c8/tk + c9 + c10*tk + c11*tk*tk + c12*tk*tk*tk + c13*math.Log(tk)
	}

	// higher temperatures need a wider bracket
	n := 1.0
	if ta > 50 {
		n = 1.1
	}
	estimated := a * math.Exp(alfaT(ta)) * 100

	// searching on ln(Ps) keeps the tolerance relative over the whole range
	s := solver.New("saturation pressure", solver.WithAccuracy(1e-12))
	y, err := s.FindRoot(func(y float64) (float64, error) {
		return y - lnPs, nil
	}, math.Log(estimated*solverACoef), math.Log(estimated*solverBCoef*n))
	if err != nil {
		return 0, fmt.Errorf("saturation pressure at %g degree C: %w", ta, err)
	}

	return math.Exp(y), nil
}

/*
SaturationPressureXRH calculates the saturation pressure from the humidity
ratio and the relative humidity.

	Args:
	    x: humidity ratio, kg/kg(DA)
	    rh: relative humidity, %
	    pat: absolute pressure, Pa

	Returns:
	    saturation pressure, Pa
*/
func SaturationPressureXRH(x, rh, pat float64) float64 {
	return x * pat / (wgRatio*rh/100 + x*rh/100)
}

/*
DewPointTemperature calculates the dew point temperature.

	Args:
	    ta: dry bulb temperature, degree C
	    rh: relative humidity, %
	    pat: absolute pressure, Pa

	Returns:
	    dew point temperature, degree C, -Inf for rh = 0

	Notes:
	    Arden-Buck inversion, over ice when the dew point is at or below
	    0 degree C. Below 25 % it loses accuracy and only serves as the
	    estimate for a search on the maximum humidity ratio, which stays
	    below the boiling point of pat.
*/
func DewPointTemperature(ta, rh, pat float64) (float64, error) {
	if rh >= 100 {
		return ta, nil
	}
	if rh == 0 {
		return math.Inf(-1), nil
	}
	if rh < 0 {
		return 0, fmt.Errorf("relative humidity %g %%: %w", rh, ErrInvalidArgument)
	}

	estimated := inverseAlfaT(math.Log(rh/100) + alfaT(ta))
	if rh >= 25 {
		return estimated, nil
	}

	ps, err := SaturationPressure(ta)
	if err != nil {
		return 0, err
	}
	x := HumidityRatio(rh, ps, pat)
	upper, err := saturationSearchLimit(ta, ps, pat)
	if err != nil {
		return 0, err
	}

	s := solver.New("dew point",
		solver.WithAccuracy(1e-10),
		solver.WithBounds(MinTemperature, upper))
	tdp, err := s.FindRoot(func(t float64) (float64, error) {
		ps, err := SaturationPressure(t)
		if err != nil {
			return 0, err
		}
		return MaxHumidityRatio(ps, pat)/x - 1, nil
	}, estimated*solverACoef, estimated*solverBCoef)
	if err != nil {
		return 0, fmt.Errorf("dew point at %g degree C, %g %%: %w", ta, rh, err)
	}

	return tdp, nil
}

/*
WetBulbTemperature calculates the wet bulb temperature.

	Args:
	    ta: dry bulb temperature, degree C
	    rh: relative humidity, %
	    pat: absolute pressure, Pa

	Returns:
	    wet bulb temperature, degree C

	Notes:
	    Stull (2011) gives the estimate, then the adiabatic saturation balance
	    h + (x* - x) hw(t) = h*(t) is solved. hw is the ice enthalpy at or
	    below 0 degree C and the liquid water enthalpy above it.
*/
func WetBulbTemperature(ta, rh, pat float64) (float64, error) {
	if rh >= 100 {
		return ta, nil
	}

	estimated := ta*math.Atan(0.151977*math.Pow(rh+8.313659, 0.5)) +
		math.Atan(ta+rh) - math.Atan(rh-1.676331) +
		0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035

	ps, err := SaturationPressure(ta)
	if err != nil {
		return 0, err
	}
	x := HumidityRatio(rh, ps, pat)
	h, err := SpecificEnthalpy(ta, x, pat)
	if err != nil {
		return 0, err
	}
	upper, err := saturationSearchLimit(ta, ps, pat)
	if err != nil {
		return 0, err
	}

	s := solver.New("wet bulb", solver.WithBounds(MinTemperature, upper))
	wbt, err := s.FindRoot(func(t float64) (float64, error) {
		ps, err := SaturationPressure(t)
		if err != nil {
			return 0, err
		}
		xs := MaxHumidityRatio(ps, pat)
		hs := specificEnthalpyAt(t, xs, ps, pat)
		var hw float64
		if t <= 0 {
			hw = ice.SpecificEnthalpy(t)
		} else {
			hw = liquidwater.SpecificEnthalpy(t)
		}
		return h + (xs-x)*hw - hs, nil
	}, estimated*solverACoef, estimated*solverBCoef)
	if err != nil {
		return 0, fmt.Errorf("wet bulb at %g degree C, %g %%: %w", ta, rh, err)
	}

	return wbt, nil
}

/*
RelativeHumidityTdp calculates the relative humidity from the dew point.

	Args:
	    tdp: dew point temperature, degree C
	    ta: dry bulb temperature, degree C

	Returns:
	    relative humidity, %
*/
func RelativeHumidityTdp(tdp, ta float64) float64 {
	return math.Exp(alfaT(tdp)-alfaT(ta)) * 100
}

/*
RelativeHumidity calculates the relative humidity from the humidity ratio.

	Args:
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)
	    pat: absolute pressure, Pa

	Returns:
	    relative humidity, %, at most 100
*/
func RelativeHumidity(ta, x, pat float64) (float64, error) {
	if x == 0 {
		return 0, nil
	}
	ps, err := SaturationPressure(ta)
	if err != nil {
		return 0, err
	}
	return relativeHumidityAt(x, ps, pat), nil
}

func relativeHumidityAt(x, ps, pat float64) float64 {
	if x == 0 {
		return 0
	}
	rh := x * pat / (wgRatio*ps + x*ps)
	if rh > 1 {
		return 100
	}
	return rh * 100
}

/*
HumidityRatio calculates the humidity ratio.

	Args:
	    rh: relative humidity, %
	    ps: saturation pressure, Pa
	    pat: absolute pressure, Pa

	Returns:
	    humidity ratio, kg/kg(DA)
*/
func HumidityRatio(rh, ps, pat float64) float64 {
	if rh == 0 {
		return 0
	}
	pv := rh / 100 * ps
	return wgRatio * pv / (pat - pv)
}

// MaxHumidityRatio is the humidity ratio of saturated air, kg/kg(DA).
func MaxHumidityRatio(ps, pat float64) float64 {
	return HumidityRatio(100, ps, pat)
}

/*
DynamicViscosity calculates the dynamic viscosity of moist air.

	Args:
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)

	Returns:
	    dynamic viscosity, kg/(m s)

	Notes:
	    Wilke's mixing rule, 1.61 x approximates the vapour mole ratio
*/
func DynamicViscosity(ta, x float64) float64 {
	muDa := dryair.DynamicViscosity(ta)
	if x == 0 {
		return muDa
	}
	xm := x * 1.61
	muWv := watervapour.DynamicViscosity(ta)
	mDa, mWv := dryair.MolarMass, watervapour.MolarMass

	fiAV := math.Pow(1+math.Sqrt(muDa/muWv)*math.Pow(mWv/mDa, 0.25), 2) /
		(2 * math.Sqrt2 * math.Sqrt(1+mDa/mWv))
	fiVA := math.Pow(1+math.Sqrt(muWv/muDa)*math.Pow(mDa/mWv, 0.25), 2) /
		(2 * math.Sqrt2 * math.Sqrt(1+mWv/mDa))

	return muDa/(1+fiAV*xm) + muWv/(1+fiVA/xm)
}

// KinematicViscosity of moist air of density rho, m2/s
func KinematicViscosity(ta, x, rho float64) float64 {
	return DynamicViscosity(ta, x) / rho
}

/*
ThermalConductivity calculates the thermal conductivity of moist air.

	Args:
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)

	Returns:
	    thermal conductivity, W/(m K)

	Notes:
	    Wassiljewa equation with Mason-Saxena coefficients corrected by the
	    Sutherland constants of both components
*/
func ThermalConductivity(ta, x float64) float64 {
	kDa := dryair.ThermalConductivity(ta)
	if x == 0 {
		return kDa
	}
	muDa := dryair.DynamicViscosity(ta)
	muWv := watervapour.DynamicViscosity(ta)
	kWv := watervapour.ThermalConductivity(ta)
	sDa, sWv := dryair.SutherlandConstant, watervapour.SutherlandConstant
	sAV := 0.733 * math.Sqrt(sDa*sWv)
	tk := ta + kelvin
	xm := 1.61 * x

	alfaAV := (muDa / muWv) * math.Pow(wgRatio, 0.75) * ((1 + sDa/tk) / (1 + sWv/tk))
	alfaVA := (muWv / muDa) * math.Pow(wgRatio, 0.75) * ((1 + sWv/tk) / (1 + sDa/tk))
	betaAV := (1 + sAV/tk) / (1 + sDa/tk)
	betaVA := (1 + sAV/tk) / (1 + sWv/tk)
	aAV := 0.25 * math.Pow(1+alfaAV, 2) * betaAV
	aVA := 0.25 * math.Pow(1+alfaVA, 2) * betaVA

	return kDa/(1+aAV*xm) + kWv/(1+aVA/xm)
}

/*
SpecificEnthalpy calculates the specific enthalpy of moist air per kg of dry air.

	Args:
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)
	    pat: absolute pressure, Pa

	Returns:
	    specific enthalpy, kJ/kg(DA)

	Notes:
	    Above the maximum humidity ratio the surplus water is fog. Liquid
	    and ice fog terms are both added; each one is zero outside of its
	    own temperature range.
*/
func SpecificEnthalpy(ta, x, pat float64) (float64, error) {
	if x == 0 {
		return dryair.SpecificEnthalpy(ta), nil
	}
	ps, err := SaturationPressure(ta)
	if err != nil {
		return 0, err
	}
	return specificEnthalpyAt(ta, x, ps, pat), nil
}

// specificEnthalpyAt is SpecificEnthalpy for a known saturation pressure.
// Above the boiling point of the given pressure there is no saturation
// limit and the air is treated as unsaturated.
func specificEnthalpyAt(ta, x, ps, pat float64) float64 {
	iDa := dryair.SpecificEnthalpy(ta)
	if x == 0 {
		return iDa
	}
	xMax := MaxHumidityRatio(ps, pat)
	if x <= xMax || ps >= pat {
		return iDa + watervapour.SpecificEnthalpy(ta)*x
	}

	iWv := watervapour.SpecificEnthalpy(ta) * xMax
	iWt := liquidwater.SpecificEnthalpy(ta) * (x - xMax)
	iIce := ice.SpecificEnthalpy(ta) * (x - xMax)

	return iDa + iWv + iWt + iIce
}

// SpecificHeat of moist air per kg of dry air, kJ/(kg K)
func SpecificHeat(ta, x float64) float64 {
	return dryair.SpecificHeat(ta) + x*watervapour.SpecificHeat(ta)
}

/*
Density calculates the density of moist air.

	Args:
	    ta: dry bulb temperature, degree C
	    x: humidity ratio, kg/kg(DA)
	    pat: absolute pressure, Pa

	Returns:
	    density, kg/m3
*/
func Density(ta, x, pat float64) float64 {
	if x == 0 {
		return dryair.Density(ta, pat)
	}
	tk := ta + kelvin
	return 1 / ((0.2871 * tk * (1 + 1.6078*x)) / (pat / 1000))
}

// ThermalDiffusivity, m2/s, from density kg/m3, conductivity W/(m K) and specific heat kJ/(kg K).
func ThermalDiffusivity(rho, k, cp float64) float64 {
	return k / (rho * cp * 1000)
}

// PrandtlNumber from dynamic viscosity kg/(m s), conductivity W/(m K) and specific heat kJ/(kg K).
func PrandtlNumber(mu, k, cp float64) float64 {
	return mu * cp * 1000 / k
}

/*
DryBulbTemperatureTdpRH calculates the dry bulb temperature from the dew
point and the relative humidity.

	Args:
	    tdp: dew point temperature, degree C
	    rh: relative humidity, %
	    pat: absolute pressure, Pa

	Returns:
	    dry bulb temperature, degree C, +Inf for rh = 0
*/
func DryBulbTemperatureTdpRH(tdp, rh, pat float64) (float64, error) {
	if rh == 0 {
		return math.Inf(1), nil
	}
	if rh >= 100 {
		return tdp, nil
	}
	if rh < 0 {
		return 0, fmt.Errorf("relative humidity %g %%: %w", rh, ErrInvalidArgument)
	}

	r8 := math.Pow(rh/100, 1.0/8)
	estimated := (tdp - 112*r8 + 112) / (0.9*r8 + 0.1)

	tMax, err := DryBulbTemperatureMax(pat)
	if err != nil {
		return 0, err
	}
	s := solver.New("dry bulb from dew point", solver.WithBounds(tdp, tMax))
	ta, err := s.FindRoot(func(t float64) (float64, error) {
		dp, err := DewPointTemperature(t, rh, pat)
		if err != nil {
			return 0, err
		}
		return tdp - dp, nil
	}, estimated*solverACoef, estimated*solverBCoef)
	if err != nil {
		return 0, fmt.Errorf("dry bulb for dew point %g degree C, %g %%: %w", tdp, rh, err)
	}

	return ta, nil
}

/*
DryBulbTemperatureXRH calculates the dry bulb temperature from the humidity
ratio and the relative humidity.

	Args:
	    x: humidity ratio, kg/kg(DA), > 0
	    rh: relative humidity, %, (0, 100]
	    pat: absolute pressure, Pa

	Returns:
	    dry bulb temperature, degree C
*/
func DryBulbTemperatureXRH(x, rh, pat float64) (float64, error) {
	if x <= 0 || rh <= 0 || rh > 100 {
		return 0, fmt.Errorf("no dry bulb temperature for x=%g, rh=%g %%: %w", x, rh, ErrInvalidArgument)
	}
	target := SaturationPressureXRH(x, rh, pat)

	// Magnus formula inverted for the estimate
	l := math.Log(target / 610.94)
	estimated := 243.04 * l / (17.625 - l)

	s := solver.New("dry bulb from x and RH",
		solver.WithAccuracy(1e-10),
		solver.WithBounds(MinTemperature, MaxTemperature))
	ta, err := s.FindRoot(func(t float64) (float64, error) {
		ps, err := SaturationPressure(t)
		if err != nil {
			return 0, err
		}
		return 1 - ps/target, nil
	}, estimated-1, estimated+1)
	if err != nil {
		return 0, fmt.Errorf("dry bulb for x=%g, rh=%g %%: %w", x, rh, err)
	}

	return ta, nil
}

/*
DryBulbTemperatureIX calculates the dry bulb temperature from the specific
enthalpy and the humidity ratio.

	Args:
	    i: specific enthalpy, kJ/kg(DA)
	    x: humidity ratio, kg/kg(DA)
	    pat: absolute pressure, Pa

	Returns:
	    dry bulb temperature, degree C

	Notes:
	    In the fog region the enthalpy jumps by the heat of fusion at
	    0 degree C. An enthalpy inside of that jump resolves to 0 degree C.
*/
func DryBulbTemperatureIX(i, x, pat float64) (float64, error) {
	estimated := (i - watervapour.LatentHeat*x) / (1.005 + 1.86*x)

	s := solver.New("dry bulb from i and x", solver.WithBounds(MinTemperature, MaxTemperature))
	ta, err := s.FindRoot(func(t float64) (float64, error) {
		it, err := SpecificEnthalpy(t, x, pat)
		if err != nil {
			return 0, err
		}
		return i - it, nil
	}, estimated-1, estimated+1)
	if err != nil {
		return 0, fmt.Errorf("dry bulb for i=%g kJ/kg, x=%g: %w", i, x, err)
	}

	return ta, nil
}

/*
DryBulbTemperatureWbtRH calculates the dry bulb temperature from the wet
bulb temperature and the relative humidity.

	Args:
	    wbt: wet bulb temperature, degree C
	    rh: relative humidity, %
	    pat: absolute pressure, Pa

	Returns:
	    dry bulb temperature, degree C
*/
func DryBulbTemperatureWbtRH(wbt, rh, pat float64) (float64, error) {
	if rh >= 100 {
		return wbt, nil
	}
	if rh < 0 {
		return 0, fmt.Errorf("relative humidity %g %%: %w", rh, ErrInvalidArgument)
	}

	tMax, err := DryBulbTemperatureMax(pat)
	if err != nil {
		return 0, err
	}
	s := solver.New("dry bulb from wet bulb", solver.WithBounds(wbt, tMax))
	ta, err := s.FindRoot(func(t float64) (float64, error) {
		w, err := WetBulbTemperature(t, rh, pat)
		if err != nil {
			return 0, err
		}
		return wbt - w, nil
	}, wbt, wbt+5)
	if err != nil {
		return 0, fmt.Errorf("dry bulb for wet bulb %g degree C, %g %%: %w", wbt, rh, err)
	}

	return ta, nil
}

/*
DryBulbTemperatureMax calculates the temperature at which the saturation
pressure reaches the given pressure. Above it no relative humidity exists.

	Args:
	    pat: absolute pressure, Pa

	Returns:
	    maximum dry bulb temperature, degree C
*/
func DryBulbTemperatureMax(pat float64) (float64, error) {
	if pat <= 0 {
		return 0, fmt.Errorf("pressure %g Pa: %w", pat, ErrInvalidArgument)
	}
	l := math.Log(0.001638 * pat)
	estimated := -237300 * l / (1000*l - 17269)

	s := solver.New("max dry bulb",
		solver.WithAccuracy(1e-10),
		solver.WithBounds(MinTemperature, MaxTemperature))
	ta, err := s.FindRoot(func(t float64) (float64, error) {
		ps, err := SaturationPressure(t)
		if err != nil {
			return 0, err
		}
		return 1 - ps/pat, nil
	}, estimated*solverACoef, estimated*solverBCoef*1.5)
	if err != nil {
		return 0, fmt.Errorf("max dry bulb at %g Pa: %w", pat, err)
	}

	return ta, nil
}

// ardenBuck holds the coefficients b, c, d of the Arden-Buck equation.
type ardenBuck struct{ b, c, d float64 }

var (
	ardenBuckWater = ardenBuck{18.678, 257.14, 234.50}
	ardenBuckIce   = ardenBuck{23.036, 279.82, 333.70}
)

// ardenBuckCoefficients over water (ta > 0) or ice
func ardenBuckCoefficients(ta float64) ardenBuck {
	if ta > 0 {
		return ardenBuckWater
	}
	return ardenBuckIce
}

// alfaT is the exponent of the Arden-Buck equation.
func alfaT(ta float64) float64 {
	k := ardenBuckCoefficients(ta)
	return (k.b - ta/k.d) * (ta / (k.c + ta))
}

// invert returns the temperature whose exponent on this curve is alfa.
func (k ardenBuck) invert(alfa float64) float64 {
	a := 2 / k.d
	bT := k.b - alfa
	cT := -k.c * alfa
	return 1 / a * (bT - math.Sqrt(bT*bT+2*a*cT))
}

// inverseAlfaT returns t with alfaT(t) == alfa. The curve is picked by the
// sign of t, not of the dry bulb the exponent came from.
func inverseAlfaT(alfa float64) float64 {
	if t := ardenBuckWater.invert(alfa); t > 0 {
		return t
	}
	return ardenBuckIce.invert(alfa)
}

// saturationSearchLimit caps the upper bound of a search along the
// saturation curve below the boiling point of pat, where the maximum
// humidity ratio is still finite and positive.
func saturationSearchLimit(ta, ps, pat float64) (float64, error) {
	if ps < pat {
		return ta, nil
	}
	tMax, err := DryBulbTemperatureMax(pat)
	if err != nil {
		return 0, err
	}
	return math.Min(ta, tMax-boilingMargin), nil
}
