package liquidwater

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDensity(t *testing.T) {
	tests := []struct {
		tw       float64
		expected float64
	}{
		{4, 999.972},
		{20, 998.204},
		{80, 971.798},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Density(tt.tw), 0.001, "tw=%v", tt.tw)
	}
}

func TestSpecificEnthalpy(t *testing.T) {
	assert.InDelta(t, 83.68688578089112, SpecificEnthalpy(20), 1e-9)
	assert.InDelta(t, 4.184344289044556, SpecificHeat(20), 1e-12)

	// no liquid contribution at or below freezing
	assert.Equal(t, 0.0, SpecificEnthalpy(0))
	assert.Equal(t, 0.0, SpecificEnthalpy(-20))
}

func TestTransportProperties(t *testing.T) {
	assert.InDelta(t, 1.0017e-3, DynamicViscosity(20), 1e-6)
	assert.InDelta(t, 0.598, ThermalConductivity(20), 0.005)
	assert.Greater(t, ThermalConductivity(80), ThermalConductivity(20))
}

func TestFlow(t *testing.T) {
	f := Flow{Temperature: 20, MassFlow: 0.5}
	assert.InDelta(t, 998.2041322005837, f.Density(), 1e-9)
	assert.InDelta(t, 0.5/998.2041322005837, f.VolumetricFlow(), 1e-15)
}
