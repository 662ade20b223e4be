package pricing

// Linear-density calibration constants.
// Calibrated from two completed fit-outs: Project A (Bytom, H = 3.0 m)
// and Project B (Białystok, H = 2.5 m).

const (
	// Linear meters of wall per 1 m² of usable box area (PUM)
	GrayDensityDefault   = 0.79 // interior divider ("gray") wall
	KickerDensityDefault = 0.23 // solid front wall, door openings excluded

	// Doors per 1 m² of PUM
	DoorDensityDefault = 0.30

	// Clear opening height of a standard roller door (m)
	DoorClearHeightDefault = 2.1

	// Fixed door width classes (m)
	DoorWidthNarrow = 0.75
	DoorWidthWide   = 1.0
)

// Coefficients holds the linear-density model parameters. The defaults are
// the calibrated process-wide values; tests and what-if runs may supply
// their own set.
type Coefficients struct {
	GrayDensity     float64 // mb of divider wall per m² PUM
	KickerDensity   float64 // mb of solid front wall per m² PUM
	DoorDensity     float64 // doors per m² PUM
	DoorClearHeight float64 // m
}

// DefaultCoefficients returns the calibrated coefficient set.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		GrayDensity:     GrayDensityDefault,
		KickerDensity:   KickerDensityDefault,
		DoorDensity:     DoorDensityDefault,
		DoorClearHeight: DoorClearHeightDefault,
	}
}
