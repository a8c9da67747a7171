package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moist_air_calc/internal/humidair"
	"moist_air_calc/internal/liquidwater"
)

// coolant with a wall temperature of 11.5 degree C
var coil11 = Coolant{SupplyTemperature: 7, ReturnTemperature: 16}

func TestCoolant(t *testing.T) {
	assert.Equal(t, 11.5, coil11.AverageWallTemperature())
	assert.Equal(t, 9.0, DefaultCoolant().AverageWallTemperature())

	c, err := NewCoolant(7, 16)
	require.NoError(t, err)
	assert.Equal(t, coil11, c)

	_, err = NewCoolant(16, 7)
	assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
}

func TestCoolingForTargetTemperature(t *testing.T) {
	inlet := flowOf(t, 28, 50, 1.0)

	res, err := CoolingForTargetTemperature(inlet, coil11, 18)
	require.NoError(t, err)

	assert.InDelta(t, 0.3939393939393939, res.BypassFactor, 1e-15)
	assert.InDelta(t, 0.0020281843561430783, res.Condensate.MassFlow, 1e-12)
	assert.Equal(t, 11.5, res.Condensate.Temperature)
	assert.InDelta(t, -15172.251080198688, res.HeatOfProcess, 1e-6)
	assert.Equal(t, 18.0, res.Outlet.Temperature)
	assert.InDelta(t, 0.009776644607728554, res.Outlet.HumidityRatio, 1e-12)

	t.Run("mass balance", func(t *testing.T) {
		mda := inlet.DryAirMassFlow()
		assert.InDelta(t, mda, res.Outlet.DryAirMassFlow(), 1e-12)
		assert.InDelta(t, mda*inlet.HumidityRatio,
			mda*res.Outlet.HumidityRatio+res.Condensate.MassFlow, 1e-15)
		assert.GreaterOrEqual(t, res.Condensate.MassFlow, 0.0)
	})

	t.Run("energy balance", func(t *testing.T) {
		mda := inlet.DryAirMassFlow()
		mDirect := (1 - res.BypassFactor) * mda

		ps, err := humidair.SaturationPressure(11.5)
		require.NoError(t, err)
		xWall := humidair.MaxHumidityRatio(ps, pAtm)
		iWall, err := humidair.SpecificEnthalpy(11.5, xWall, pAtm)
		require.NoError(t, err)
		iIn, err := inlet.SpecificEnthalpy()
		require.NoError(t, err)

		q := (mDirect*(iWall-iIn) + res.Condensate.MassFlow*liquidwater.SpecificEnthalpy(11.5)) * 1000
		assert.InDelta(t, q, res.HeatOfProcess, 1e-9)

		bf, err := BypassFactor(11.5, 28, 18)
		require.NoError(t, err)
		assert.Equal(t, bf, res.BypassFactor)
	})

	t.Run("dry coil", func(t *testing.T) {
		// the wall stays above the 16.6 degree C dew point
		warm := Coolant{SupplyTemperature: 17, ReturnTemperature: 19}
		res, err := CoolingForTargetTemperature(inlet, warm, 22)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Condensate.MassFlow)
		assert.InDelta(t, inlet.HumidityRatio, res.Outlet.HumidityRatio, 1e-15)
		assert.InDelta(t, -6094.867937774434, res.HeatOfProcess, 1e-6)

		// bypass blending is linear in temperature, enthalpy is not quite
		dry, err := DryCoolingForTargetTemperature(inlet, 22)
		require.NoError(t, err)
		assert.InEpsilon(t, dry.HeatOfProcess, res.HeatOfProcess, 1e-3)
	})

	t.Run("target equal to the inlet", func(t *testing.T) {
		res, err := CoolingForTargetTemperature(inlet, coil11, 28)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.HeatOfProcess)
		assert.Equal(t, 0.0, res.Condensate.MassFlow)
		assert.Equal(t, inlet, res.Outlet)
	})

	t.Run("target above the inlet", func(t *testing.T) {
		_, err := CoolingForTargetTemperature(inlet, coil11, 29)
		assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
	})

	t.Run("target below the wall", func(t *testing.T) {
		_, err := CoolingForTargetTemperature(inlet, coil11, 10)
		assert.ErrorIs(t, err, humidair.ErrPhysicallyImpossible)
	})
}

func TestCoolingForTargetRH(t *testing.T) {
	inlet := flowOf(t, 28, 50, 1.0)

	res, err := CoolingForTargetRH(inlet, coil11, 75.9628337174584)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, res.Outlet.Temperature, 1e-5)
	assert.InDelta(t, 0.009776644607728554, res.Outlet.HumidityRatio, 1e-8)
	assert.InDelta(t, -15172.251080198688, res.HeatOfProcess, 0.1)

	rh, err := res.Outlet.RelativeHumidity()
	require.NoError(t, err)
	assert.InDelta(t, 75.9628337174584, rh, 1e-6)

	t.Run("target equal to the inlet", func(t *testing.T) {
		rhIn, err := inlet.RelativeHumidity()
		require.NoError(t, err)
		res, err := CoolingForTargetRH(inlet, coil11, rhIn)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.HeatOfProcess)
		assert.Equal(t, inlet, res.Outlet)
	})

	tests := []struct {
		name string
		rh   float64
		err  error
	}{
		{"negative", -1, humidair.ErrInvalidArgument},
		{"above 100", 101, humidair.ErrInvalidArgument},
		{"below the inlet", 40, humidair.ErrInvalidArgument},
		{"infinite exchanger", 99.5, humidair.ErrPhysicallyImpossible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CoolingForTargetRH(inlet, coil11, tt.rh)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("wall warmer than the inlet", func(t *testing.T) {
		_, err := CoolingForTargetRH(inlet, Coolant{SupplyTemperature: 30, ReturnTemperature: 32}, 60)
		assert.ErrorIs(t, err, humidair.ErrPhysicallyImpossible)
	})
}

func TestCoolingForInputHeat(t *testing.T) {
	inlet := flowOf(t, 28, 50, 1.0)

	res, err := CoolingForInputHeat(inlet, coil11, -15172.251080198688)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, res.Outlet.Temperature, 1e-6)
	assert.InDelta(t, 0.0020281843561430783, res.Condensate.MassFlow, 1e-9)
	assert.InDelta(t, -15172.251080198688, res.HeatOfProcess, 1e-6)

	t.Run("warmer than a dry cooler with the same heat", func(t *testing.T) {
		dry, err := exchangeHeat(inlet, -15172.251080198688)
		require.NoError(t, err)
		assert.Greater(t, res.Outlet.Temperature, dry.Outlet.Temperature)
	})

	t.Run("no heat", func(t *testing.T) {
		res, err := CoolingForInputHeat(inlet, coil11, 0)
		require.NoError(t, err)
		assert.Equal(t, inlet, res.Outlet)
		assert.Equal(t, 0.0, res.Condensate.MassFlow)
	})

	t.Run("positive heat", func(t *testing.T) {
		_, err := CoolingForInputHeat(inlet, coil11, 100)
		assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
	})

	t.Run("beyond the coil capacity", func(t *testing.T) {
		_, err := CoolingForInputHeat(inlet, coil11, -1e6)
		assert.ErrorIs(t, err, humidair.ErrPhysicallyImpossible)
	})
}

func TestDryCooling(t *testing.T) {
	inlet := flowOf(t, 28, 50, 1.0)

	res, err := DryCoolingForTargetTemperature(inlet, 20)
	require.NoError(t, err)
	assert.InDelta(t, -8127.454379697877, res.HeatOfProcess, 1e-6)
	assert.Equal(t, inlet.HumidityRatio, res.Outlet.HumidityRatio)
	assert.Equal(t, liquidwater.Flow{Temperature: 20}, res.Condensate)

	byHeat, err := DryCoolingForInputHeat(inlet, res.HeatOfProcess)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, byHeat.Outlet.Temperature, 1e-6)
	assert.Equal(t, 0.0, byHeat.Condensate.MassFlow)

	t.Run("target equal to the inlet", func(t *testing.T) {
		res, err := DryCoolingForTargetTemperature(inlet, 28)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.HeatOfProcess)
		assert.Equal(t, inlet, res.Outlet)
	})

	t.Run("below the dew point", func(t *testing.T) {
		_, err := DryCoolingForTargetTemperature(inlet, 15)
		assert.ErrorIs(t, err, humidair.ErrPhysicallyImpossible)

		_, err = DryCoolingForInputHeat(inlet, -20000)
		assert.ErrorIs(t, err, humidair.ErrPhysicallyImpossible)
	})

	t.Run("wrong direction", func(t *testing.T) {
		_, err := DryCoolingForTargetTemperature(inlet, 30)
		assert.ErrorIs(t, err, humidair.ErrInvalidArgument)

		_, err = DryCoolingForInputHeat(inlet, 1000)
		assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
	})
}

func TestCondensateDischarge(t *testing.T) {
	m, err := CondensateDischarge(2, 0.01, 0.008)
	require.NoError(t, err)
	assert.InDelta(t, 0.004, m, 1e-15)

	m, err = CondensateDischarge(2, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m)

	for _, args := range [][3]float64{{-1, 0.01, 0.008}, {1, -0.01, 0}, {1, 0.008, 0.01}} {
		_, err := CondensateDischarge(args[0], args[1], args[2])
		assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
	}
}

func TestBypassFactor(t *testing.T) {
	bf, err := BypassFactor(10, 30, 15)
	require.NoError(t, err)
	assert.Equal(t, 0.25, bf)

	_, err = BypassFactor(20, 20, 20)
	assert.ErrorIs(t, err, humidair.ErrInvalidArgument)
}
