// Package airtable evaluates moist air properties for a table of states read
// from CSV.
package airtable

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"moist_air_calc/internal/humidair"
)

// InputRow is one air state. A missing or zero pressure is replaced by the
// default pressure of Evaluate.
type InputRow struct {
	Pressure         float64 `csv:"pressure"`          // Pa
	Temperature      float64 `csv:"temperature"`       // degree C
	RelativeHumidity float64 `csv:"relative_humidity"` // %
}

// OutputRow is one evaluated air state.
type OutputRow struct {
	Pressure            float64 `csv:"pressure"`             // Pa
	Temperature         float64 `csv:"temperature"`          // degree C
	RelativeHumidity    float64 `csv:"relative_humidity"`    // %
	HumidityRatio       float64 `csv:"humidity_ratio"`       // kg/kg(DA)
	SaturationPressure  float64 `csv:"saturation_pressure"`  // Pa
	MaxHumidityRatio    float64 `csv:"max_humidity_ratio"`   // kg/kg(DA)
	DewPoint            float64 `csv:"dew_point"`            // degree C
	WetBulb             float64 `csv:"wet_bulb"`             // degree C
	SpecificEnthalpy    float64 `csv:"specific_enthalpy"`    // kJ/kg(DA)
	SpecificHeat        float64 `csv:"specific_heat"`        // kJ/(kg K)
	Density             float64 `csv:"density"`              // kg/m3
	DynamicViscosity    float64 `csv:"dynamic_viscosity"`    // kg/(m s)
	KinematicViscosity  float64 `csv:"kinematic_viscosity"`  // m2/s
	ThermalConductivity float64 `csv:"thermal_conductivity"` // W/(m K)
	ThermalDiffusivity  float64 `csv:"thermal_diffusivity"`  // m2/s
	PrandtlNumber       float64 `csv:"prandtl_number"`       // -
}

// Read parses the input table. The header names the columns.
func Read(r io.Reader) ([]*InputRow, error) {
	var rows []*InputRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("airtable: %w", err)
	}
	return rows, nil
}

// ReadFile parses the input table stored at path.
func ReadFile(path string) ([]*InputRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*InputRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("airtable: %s: %w", path, err)
	}
	return rows, nil
}

/*
Evaluate calculates the properties of every input row.

	Args:
	    rows: input rows
	    pat: pressure used where a row has none, Pa

	Returns:
	    output rows in input order

	Notes:
	    The first row that fails stops the evaluation. The error names its
	    line in the file, the header being line 1.
*/
func Evaluate(rows []*InputRow, pat float64) ([]*OutputRow, error) {
	out := make([]*OutputRow, len(rows))
	for n, row := range rows {
		p := row.Pressure
		if p == 0 {
			p = pat
		}
		air, err := humidair.NewAirFromRH(p, row.Temperature, row.RelativeHumidity)
		if err != nil {
			return nil, fmt.Errorf("airtable: line %d: %w", n+2, err)
		}
		props, err := air.Properties()
		if err != nil {
			return nil, fmt.Errorf("airtable: line %d: %w", n+2, err)
		}
		out[n] = newOutputRow(props)
	}
	return out, nil
}

// Write prints the output table with a header line.
func Write(w io.Writer, rows []*OutputRow) error {
	return gocsv.Marshal(rows, w)
}

func newOutputRow(p humidair.Properties) *OutputRow {
	return &OutputRow{
		Pressure:            p.Pressure,
		Temperature:         p.Temperature,
		RelativeHumidity:    p.RelativeHumidity,
		HumidityRatio:       p.HumidityRatio,
		SaturationPressure:  p.SaturationPressure,
		MaxHumidityRatio:    p.MaxHumidityRatio,
		DewPoint:            p.DewPoint,
		WetBulb:             p.WetBulb,
		SpecificEnthalpy:    p.SpecificEnthalpy,
		SpecificHeat:        p.SpecificHeat,
		Density:             p.Density,
		DynamicViscosity:    p.DynamicViscosity,
		KinematicViscosity:  p.KinematicViscosity,
		ThermalConductivity: p.ThermalConductivity,
		ThermalDiffusivity:  p.ThermalDiffusivity,
		PrandtlNumber:       p.PrandtlNumber,
	}
}
