package liquidwater

// Flow of liquid water, e.g. condensate discharged from a cooling coil.
type Flow struct {
	Temperature float64 // degree C
	MassFlow    float64 // kg/s
}

// Density of the flowing water, kg/m3
func (f Flow) Density() float64 {
	return Density(f.Temperature)
}

// VolumetricFlow of the water, m3/s
func (f Flow) VolumetricFlow() float64 {
	return f.MassFlow / f.Density()
}
