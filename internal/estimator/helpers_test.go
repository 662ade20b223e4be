package estimator

import "github.com/alexiusacademia/gostor/internal/pricing"

func coeffsForTest(gray, kicker, door, clearHeight float64) pricing.Coefficients {
	return pricing.Coefficients{
		GrayDensity:     gray,
		KickerDensity:   kicker,
		DoorDensity:     door,
		DoorClearHeight: clearHeight,
	}
}

func pricesForTest(white, gray, kicker, doorNarrow, doorWide float64) pricing.PriceList {
	return pricing.PriceList{
		White:      white,
		Gray:       gray,
		Kicker:     kicker,
		DoorNarrow: doorNarrow,
		DoorWide:   doorWide,
	}
}
