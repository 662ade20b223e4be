package estimator

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gostor/internal/pricing"
)

// mixTolerance is how far the door mix shares may drift from summing to 1
// before the input is rejected.
const mixTolerance = 1e-6

// Input holds the sizing parameters for a single estimate.
type Input struct {
	PUM           float64 // usable box floor area (m²)
	Height        float64 // hall clear height (m)
	PctDoorNarrow float64 // share of 0.75 m doors (0..1)
	PctDoorWide   float64 // share of 1.0 m doors (0..1)
}

// ValidationError reports an input value that is out of bounds. Cost output
// is financially consequential, so bad inputs are rejected rather than
// clamped.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the input bounds before any quantity is derived.
func (in Input) Validate() error {
	if in.PUM <= 0 {
		return &ValidationError{Field: "pum", Message: fmt.Sprintf("must be positive, got %.2f", in.PUM)}
	}
	if in.Height <= 0 {
		return &ValidationError{Field: "height", Message: fmt.Sprintf("must be positive, got %.2f", in.Height)}
	}
	if in.PctDoorNarrow < 0 || in.PctDoorNarrow > 1 {
		return &ValidationError{Field: "door075 share", Message: fmt.Sprintf("must be within 0..1, got %.4f", in.PctDoorNarrow)}
	}
	if in.PctDoorWide < 0 || in.PctDoorWide > 1 {
		return &ValidationError{Field: "door1m share", Message: fmt.Sprintf("must be within 0..1, got %.4f", in.PctDoorWide)}
	}
	if sum := in.PctDoorNarrow + in.PctDoorWide; math.Abs(sum-1) > mixTolerance {
		return &ValidationError{Field: "door mix", Message: fmt.Sprintf("shares must sum to 1, got %.6f", sum)}
	}
	return nil
}

// Calculator derives material quantities and costs from PUM, hall height
// and the door width mix, using the linear-density model.
//
// White wall = solid lower section (kicker length × H) + lintels above each
// door (H − clear height, clamped at zero). Gray wall scales with both PUM
// and height; kicker length and door count depend on PUM only.
type Calculator struct {
	Coeffs pricing.Coefficients
	Prices pricing.PriceList
}

// New creates a calculator with explicit coefficients and prices.
func New(coeffs pricing.Coefficients, prices pricing.PriceList) *Calculator {
	return &Calculator{Coeffs: coeffs, Prices: prices}
}

// NewDefault creates a calculator with the calibrated coefficients and the
// current supplier rates.
func NewDefault() *Calculator {
	return New(pricing.DefaultCoefficients(), pricing.DefaultPrices())
}

// quantities holds full-precision intermediates. Rounding happens only when
// the report is built, so comparisons between runs never compound rounding
// error.
type quantities struct {
	grayArea     float64
	whiteArea    float64
	kickerLength float64
	doorCount    float64
	avgDoorWidth float64

	costGray   float64
	costWhite  float64
	costKicker float64
	costDoors  float64
	costTotal  float64
}

func (c *Calculator) compute(in Input) quantities {
	// Gray wall: (mb per m² PUM) × PUM × H
	grayArea := in.PUM * c.Coeffs.GrayDensity * in.Height

	// Kicker plate is a fixed-height strip, so its length ignores H.
	kickerLength := in.PUM * c.Coeffs.KickerDensity

	// Door count stays a continuous estimate internally.
	doorCount := in.PUM * c.Coeffs.DoorDensity
	avgDoorWidth := in.PctDoorNarrow*pricing.DoorWidthNarrow + in.PctDoorWide*pricing.DoorWidthWide

	// Solid front section runs the full hall height over the kicker length.
	whiteLower := kickerLength * in.Height

	// Lintels exist only when the hall is taller than the door opening.
	aboveDoor := math.Max(0, in.Height-c.Coeffs.DoorClearHeight)
	whiteLintels := doorCount * avgDoorWidth * aboveDoor

	whiteArea := whiteLower + whiteLintels

	costGray := grayArea * c.Prices.Gray
	costWhite := whiteArea * c.Prices.White
	costKicker := kickerLength * c.Prices.Kicker
	costDoors := doorCount*in.PctDoorNarrow*c.Prices.DoorNarrow +
		doorCount*in.PctDoorWide*c.Prices.DoorWide

	return quantities{
		grayArea:     grayArea,
		whiteArea:    whiteArea,
		kickerLength: kickerLength,
		doorCount:    doorCount,
		avgDoorWidth: avgDoorWidth,
		costGray:     costGray,
		costWhite:    costWhite,
		costKicker:   costKicker,
		costDoors:    costDoors,
		costTotal:    costGray + costWhite + costKicker + costDoors,
	}
}

// Estimate validates the input and derives the material report.
func (c *Calculator) Estimate(in Input) (*MaterialReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	q := c.compute(in)
	return q.report(), nil
}
