package pricing

// Unit prices (PLN)
const (
	PriceWhiteDefault  = 110.0 // per m² of white (front) wall
	PriceGrayDefault   = 84.0  // per m² of gray (divider) wall
	PriceKickerDefault = 81.0  // per mb of kicker plate

	// Door units. The 0.75 m door is priced the same as the 1.0 m door
	// until the supplier quotes a separate rate.
	PriceDoorWideDefault   = 780.0
	PriceDoorNarrowDefault = 780.0
)

// PriceList holds the per-unit rates used by the calculator. Set once at
// construction; a calculator never mutates its prices.
type PriceList struct {
	White      float64 // PLN/m²
	Gray       float64 // PLN/m²
	Kicker     float64 // PLN/mb
	DoorNarrow float64 // PLN per 0.75 m door
	DoorWide   float64 // PLN per 1.0 m door
}

// DefaultPrices returns the current supplier rates.
func DefaultPrices() PriceList {
	return PriceList{
		White:      PriceWhiteDefault,
		Gray:       PriceGrayDefault,
		Kicker:     PriceKickerDefault,
		DoorNarrow: PriceDoorNarrowDefault,
		DoorWide:   PriceDoorWideDefault,
	}
}
