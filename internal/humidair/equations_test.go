package humidair

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pAtm = StandardPressure

func TestSaturationPressure_AshraeTables(t *testing.T) {
	// ASHRAE Fundamentals, saturation pressure of water, kPa
	tests := []struct {
		ta       float64
		expected float64
	}{
		{-60, 0.00108}, {-55, 0.00209}, {-50, 0.00394}, {-45, 0.00721}, {-40, 0.01285},
		{-35, 0.02235}, {-30, 0.03802}, {-25, 0.06329}, {-20, 0.10326}, {-15, 0.16530},
		{-10, 0.25991}, {-5, 0.40178}, {0, 0.6112}, {5, 0.8725}, {10, 1.2280},
		{15, 1.7055}, {20, 2.3389}, {25, 3.1693}, {30, 4.2462}, {35, 5.6280},
		{40, 7.3838}, {45, 9.5935}, {50, 12.3503}, {55, 15.7601}, {60, 19.9439},
		{65, 25.0397}, {70, 31.1986}, {80, 47.4135}, {90, 70.1817},
	}

	for _, tt := range tests {
		var delta float64
		switch {
		case tt.ta < 0:
			delta = 0.03
		case tt.ta < 40:
			delta = 0.2
		default:
			delta = 1.9
		}

		ps, err := SaturationPressure(tt.ta)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected*1000, ps, delta, "ta=%v", tt.ta)
	}
}

func TestSaturationPressure_HylandWexler(t *testing.T) {
	ps, err := SaturationPressure(25)
	require.NoError(t, err)
	assert.InDelta(t, 3169.2164701436, ps, 1e-6)
}

func TestSaturationPressure_IncreasingAndConvex(t *testing.T) {
	// the ice and the water curves meet at 0 degree C, check each one separately
	for _, r := range [][2]float64{{-100, -1}, {1, 199}} {
		prevPs, err := SaturationPressure(r[0] - 1)
		require.NoError(t, err)
		prevSlope := 0.0
		for ta := r[0]; ta <= r[1]; ta++ {
			ps, err := SaturationPressure(ta)
			require.NoError(t, err)
			slope := ps - prevPs
			assert.Greater(t, slope, 0.0, "ta=%v", ta)
			assert.Greater(t, slope, prevSlope, "ta=%v", ta)
			prevPs, prevSlope = ps, slope
		}
	}
}

func TestSaturationPressureXRH(t *testing.T) {
	ps := SaturationPressureXRH(0.007359483455449959, 50, 100000)
	assert.InDelta(t, 2338.880310914088, ps, 1e-9)
}

func TestDewPointTemperature(t *testing.T) {
	// generated with www.psychrometric-calculator.com
	tests := []struct {
		ta, rh   float64
		expected float64
	}{
		{-90, 90, -90.575488},
		{-90, 100, -90.0},
		{-20, 50, -27.0240449},
		{0, 50, -8.16537708},
		{20, 0.01, -70.77560076},
		{20, 2, -27.995737532},
		{20, 5, -18.699558244},
		{20, 10, -11.18374468},
		{20, 20, -3.208207604},
		{20, 30, 1.916290573},
		{20, 50, 9.2744829786},
		{45, 95, 44.0071103865},
		{85, 95, 83.6921149734},
	}

	for _, tt := range tests {
		tdp, err := DewPointTemperature(tt.ta, tt.rh, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected, tdp, 0.04, "ta=%v rh=%v", tt.ta, tt.rh)
	}

	t.Run("saturated air", func(t *testing.T) {
		tdp, err := DewPointTemperature(12.5, 100, pAtm)
		require.NoError(t, err)
		assert.Equal(t, 12.5, tdp)
	})

	t.Run("dry air", func(t *testing.T) {
		tdp, err := DewPointTemperature(12.5, 0, pAtm)
		require.NoError(t, err)
		assert.True(t, math.IsInf(tdp, -1))
	})

	t.Run("negative humidity", func(t *testing.T) {
		_, err := DewPointTemperature(12.5, -1, pAtm)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestWetBulbTemperature(t *testing.T) {
	// generated with www.psychrometric-calculator.com
	tests := []struct {
		ta, rh   float64
		expected float64
	}{
		{-90, 95, -90.0000085233},
		{-90, 2, -90.0001670550},
		{-20, 95, -20.0775539755},
		{-20, 2, -21.5342142766},
		{-10, 95, -10.1632796806},
		{-10, 2, -13.3131523772},
		{0, 95, -0.2877713277},
		{0, 2, -6.1913189743},
		{10, 50, 5.4986263891},
		{20, 50, 13.7450652549},
		{30, 50, 21.9709576740},
		{40, 50, 30.2796145652},
		{60, 50, 47.2512717708},
		{80, 50, 64.5491728328},
		{90, 50, 73.2274663091},
	}

	for _, tt := range tests {
		wbt, err := WetBulbTemperature(tt.ta, tt.rh, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected, wbt, 0.07, "ta=%v rh=%v", tt.ta, tt.rh)
	}

	t.Run("saturated air", func(t *testing.T) {
		wbt, err := WetBulbTemperature(-3, 100, pAtm)
		require.NoError(t, err)
		assert.Equal(t, -3.0, wbt)
	})
}

func TestDewPointAndWetBulb_MonotonicInTemperature(t *testing.T) {
	for _, rh := range []float64{2, 10, 50, 95} {
		prevTdp, prevWbt := math.Inf(-1), math.Inf(-1)
		for ta := -80.0; ta <= 90; ta += 10 {
			tdp, err := DewPointTemperature(ta, rh, pAtm)
			require.NoError(t, err)
			wbt, err := WetBulbTemperature(ta, rh, pAtm)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, tdp, prevTdp, "ta=%v rh=%v", ta, rh)
			assert.GreaterOrEqual(t, wbt, prevWbt, "ta=%v rh=%v", ta, rh)
			assert.LessOrEqual(t, tdp, ta)
			assert.LessOrEqual(t, wbt, ta)
			prevTdp, prevWbt = tdp, wbt
		}
	}
}

func TestDewPointTemperature_AcrossFreezing(t *testing.T) {
	for _, rh := range []float64{10, 30, 60, 90} {
		prev := math.Inf(-1)
		for i := 0; i <= 200; i++ {
			ta := -5 + 0.05*float64(i)
			tdp, err := DewPointTemperature(ta, rh, pAtm)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, tdp, prev, "ta=%v rh=%v", ta, rh)
			prev = tdp
		}
	}

	t.Run("relative humidity back from the dew point", func(t *testing.T) {
		for _, ta := range []float64{-3, 0, 0.5, 5, 12} {
			tdp, err := DewPointTemperature(ta, 30, pAtm)
			require.NoError(t, err)
			assert.InDelta(t, 30, RelativeHumidityTdp(tdp, ta), 1e-9, "ta=%v", ta)
		}
	})

	t.Run("dry bulb back from the dew point at 0 degree C", func(t *testing.T) {
		tdp, err := DewPointTemperature(0, 30, pAtm)
		require.NoError(t, err)
		ta, err := DryBulbTemperatureTdpRH(tdp, 30, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, 0, ta, 1e-5)
	})
}

func TestDewPointAndWetBulb_AboveBoiling(t *testing.T) {
	tMax, err := DryBulbTemperatureMax(pAtm)
	require.NoError(t, err)

	tests := []struct{ ta, rh float64 }{
		{100, 99},
		{120, 50},
		{180, 10},
		{190, 5},
		{200, 5},
	}

	for _, tt := range tests {
		air, err := NewAirFromRH(pAtm, tt.ta, tt.rh)
		require.NoError(t, err)

		p, err := air.Properties()
		require.NoError(t, err, "ta=%v rh=%v", tt.ta, tt.rh)
		assert.Less(t, p.WetBulb, tMax, "ta=%v rh=%v", tt.ta, tt.rh)
		assert.Less(t, p.DewPoint, tt.ta, "ta=%v rh=%v", tt.ta, tt.rh)
		assert.Greater(t, p.WetBulb, 0.0, "ta=%v rh=%v", tt.ta, tt.rh)
	}
}

func TestRelativeHumidity(t *testing.T) {
	t.Run("from humidity ratio", func(t *testing.T) {
		rh, err := RelativeHumidity(20, 0.006615487885540037, 100000)
		require.NoError(t, err)
		assert.InDelta(t, 45.0, rh, 1e-8)
	})

	t.Run("no water", func(t *testing.T) {
		rh, err := RelativeHumidity(20, 0, pAtm)
		require.NoError(t, err)
		assert.Equal(t, 0.0, rh)
	})

	t.Run("fog is clamped to 100", func(t *testing.T) {
		rh, err := RelativeHumidity(20, 0.05, pAtm)
		require.NoError(t, err)
		assert.Equal(t, 100.0, rh)
	})

	t.Run("from dew point", func(t *testing.T) {
		tdp, err := DewPointTemperature(20, 50, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, RelativeHumidityTdp(tdp, 20), 1e-9)
	})
}

func TestHumidityRatio(t *testing.T) {
	x := HumidityRatio(75, 3169.2164701436063, 100000)
	assert.InDelta(t, 0.015143324009257978, x, 1e-12)

	xMax := MaxHumidityRatio(3169.2164701436063, 100000)
	assert.InDelta(t, 0.020356309472910922, xMax, 1e-12)

	assert.Equal(t, 0.0, HumidityRatio(0, 3169.2164701436063, 100000))
}

func TestSpecificEnthalpy(t *testing.T) {
	tests := []struct {
		name     string
		ta, x    float64
		expected float64
	}{
		{"dry air", 20, 0, 20.08760013463991},
		{"unsaturated", 20, 0.0072129, 38.39507833067542},
		{"water fog", 20, 0.02, 57.83062902904142},
		{"ice fog", -20, 0.02, -25.724576427554204},
		{"unsaturated below zero", -20, 0.0001532, -19.681140294487328},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := SpecificEnthalpy(tt.ta, tt.x, pAtm)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, i, 1e-8)
		})
	}
}

func TestTransportProperties(t *testing.T) {
	x := 0.00648405507311303

	assert.InDelta(t, 1.8025960312008188e-05, DynamicViscosity(20, x), 1e-15)
	assert.InDelta(t, 0.025956138498904914, ThermalConductivity(20, x), 1e-12)
	assert.InDelta(t, 1.017908082376084, SpecificHeat(20, 0.007261881104670626), 1e-12)

	// no water reduces the mixture rules to dry air
	assert.InDelta(t, 1.8134058821488238e-05, DynamicViscosity(20, 0), 1e-15)
	assert.InDelta(t, 0.02571427503543599, ThermalConductivity(20, 0), 1e-12)

	rho := Density(20, x, pAtm)
	assert.InDelta(t, DynamicViscosity(20, x)/rho, KinematicViscosity(20, x, rho), 1e-15)
}

func TestDensity(t *testing.T) {
	// ASHRAE tables, specific volume of dry and saturated air, m3/kg
	tests := []struct {
		ta, x     float64
		vDa, vSat float64
	}{
		{-60, 0.0000067, 0.6027, 0.6027},
		{-30, 0.0000793, 0.6881, 0.6884},
		{-10, 0.0016062, 0.7450, 0.7469},
		{0, 0.003789, 0.7734, 0.7781},
		{20, 0.014758, 0.8302, 0.8498},
		{40, 0.049141, 0.8870, 0.9568},
		{60, 0.15354, 0.9438, 1.1752},
		{90, 1.42031, 1.0289, 3.3488},
	}

	for _, tt := range tests {
		assert.InDelta(t, 1/tt.vDa, Density(tt.ta, 0, pAtm), 0.004, "ta=%v", tt.ta)
		assert.InDelta(t, 1/tt.vSat, Density(tt.ta, tt.x, pAtm), 0.004, "ta=%v", tt.ta)
	}
}

func TestThermalDiffusivityAndPrandtl(t *testing.T) {
	// dry air at 300 K
	ta := 26.85
	rho := Density(ta, 0, 101300)
	k := ThermalConductivity(ta, 0)
	cp := SpecificHeat(ta, 0)
	mu := DynamicViscosity(ta, 0)

	assert.InDelta(t, 2.218e-5, ThermalDiffusivity(rho, k, cp), 0.021e-5)
	assert.InDelta(t, 0.707, PrandtlNumber(mu, k, cp), 0.009)
}

func TestDryBulbTemperatureIX_RoundTrip(t *testing.T) {
	tests := []struct{ ta, x float64 }{
		{-70, 0.00000000275360841},
		{-70, 0.00000261593898083},
		{-70, 0.02},
		{0, 0.0000014260680795533113},
		{0, 0.00064841},
		{0, 0.02},
		{20, 0.000014260680795533113},
		{20, 0.0064841},
		{20, 0.02},
		{30, 0.02539514384567531},
		{30, 0.04},
		{30, 0.00002568419461802},
		{50, 0.00017964067838057},
		{50, 0.10494463198104903},
		{50, 0.4},
	}

	for _, tt := range tests {
		i, err := SpecificEnthalpy(tt.ta, tt.x, pAtm)
		require.NoError(t, err)

		ta, err := DryBulbTemperatureIX(i, tt.x, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, tt.ta, ta, 1e-6, "ta=%v x=%v", tt.ta, tt.x)
	}
}

func TestDryBulbTemperatureXRH_RoundTrip(t *testing.T) {
	for _, ta := range []float64{-20, 0, 20, 30, 70} {
		for _, rh := range []float64{0.1, 10, 95} {
			ps, err := SaturationPressure(ta)
			require.NoError(t, err)
			x := HumidityRatio(rh, ps, pAtm)

			got, err := DryBulbTemperatureXRH(x, rh, pAtm)
			require.NoError(t, err)
			assert.InDelta(t, ta, got, 1e-7, "ta=%v rh=%v", ta, rh)

			// and back to the relative humidity
			gotRH, err := RelativeHumidity(got, x, pAtm)
			require.NoError(t, err)
			assert.InDelta(t, rh, gotRH, 1e-6)
		}
	}

	_, err := DryBulbTemperatureXRH(0, 50, pAtm)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = DryBulbTemperatureXRH(0.01, 0, pAtm)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDryBulbTemperatureTdpRH_RoundTrip(t *testing.T) {
	for _, ta := range []float64{-20, 20, 30, 70} {
		for _, rh := range []float64{0.1, 10, 95} {
			tdp, err := DewPointTemperature(ta, rh, pAtm)
			require.NoError(t, err)

			got, err := DryBulbTemperatureTdpRH(tdp, rh, pAtm)
			require.NoError(t, err)
			assert.InDelta(t, ta, got, 1e-6, "ta=%v rh=%v", ta, rh)
		}
	}

	t.Run("boundaries", func(t *testing.T) {
		ta, err := DryBulbTemperatureTdpRH(5, 100, pAtm)
		require.NoError(t, err)
		assert.Equal(t, 5.0, ta)

		ta, err = DryBulbTemperatureTdpRH(5, 0, pAtm)
		require.NoError(t, err)
		assert.True(t, math.IsInf(ta, 1))
	})
}

func TestDryBulbTemperatureWbtRH_RoundTrip(t *testing.T) {
	tests := []struct{ ta, rh float64 }{
		{-20, 10},
		{-20, 95},
		{0, 10},
		{20, 0.1},
		{20, 50},
		{30, 95},
		{70, 10},
	}

	for _, tt := range tests {
		wbt, err := WetBulbTemperature(tt.ta, tt.rh, pAtm)
		require.NoError(t, err)

		got, err := DryBulbTemperatureWbtRH(wbt, tt.rh, pAtm)
		require.NoError(t, err)
		assert.InDelta(t, tt.ta, got, 1e-5, "ta=%v rh=%v", tt.ta, tt.rh)
	}
}

func TestDryBulbTemperatureMax(t *testing.T) {
	for _, pat := range []float64{80_000, 100_000, 200_000} {
		ta, err := DryBulbTemperatureMax(pat)
		require.NoError(t, err)

		ps, err := SaturationPressure(ta)
		require.NoError(t, err)
		assert.InDelta(t, pat, ps, 1e-4, "pat=%v", pat)
	}

	ta, err := DryBulbTemperatureMax(pAtm)
	require.NoError(t, err)
	assert.InDelta(t, 99.974, ta, 0.001)

	_, err = DryBulbTemperatureMax(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAltitude(t *testing.T) {
	assert.InDelta(t, 89874.51941577366, PressureAtAltitude(1000), 1e-8)
	assert.InDelta(t, StandardPressure, PressureAtAltitude(0), 1e-9)
	assert.InDelta(t, 13.5, TemperatureAtAltitude(20, 1000), 1e-12)
}
