package estimator

import (
	"errors"
	"math"
	"testing"
)

func TestSensitivityStandardComparison(t *testing.T) {
	// 130 m² PUM, 3.0 m vs 2.5 m, 60% narrow doors
	calc := NewDefault()
	repHigh, repLow, analysis, err := calc.Sensitivity(130, 3.0, 2.5, 0.6, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approx(t, "high total", repHigh.CostTotal, 71871.15)
	approx(t, "low total", repLow.CostTotal, 64090.00)

	approx(t, "savings total", analysis.SavingsTotal, 7781.15)
	approx(t, "savings white", analysis.SavingsWhite, 3467.75)
	approx(t, "savings gray", analysis.SavingsGray, 4313.40)

	// The summary must agree with the two reports within rounding.
	if d := math.Abs(analysis.SavingsTotal - (repHigh.CostTotal - repLow.CostTotal)); d > 0.02 {
		t.Errorf("savings total disagrees with report totals by %.4f", d)
	}

	// Traceability fields carry the raw areas of both runs.
	approx(t, "white high", analysis.WhiteHigh, repHigh.WhiteArea)
	approx(t, "white low", analysis.WhiteLow, repLow.WhiteArea)
	approx(t, "gray high", analysis.GrayHigh, repHigh.GrayArea)
	approx(t, "gray low", analysis.GrayLow, repLow.GrayArea)

	if analysis.HeightHigh != 3.0 || analysis.HeightLow != 2.5 || analysis.PUM != 130 {
		t.Errorf("inputs not echoed: %+v", analysis)
	}
}

func TestSensitivitySwappedHeightsFlipsSign(t *testing.T) {
	calc := NewDefault()
	_, _, forward, err := calc.Sensitivity(100, 3.0, 2.5, 0.5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, backward, err := calc.Sensitivity(100, 2.5, 3.0, 0.5, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	approx(t, "total sign flip", forward.SavingsTotal, -backward.SavingsTotal)
	approx(t, "white sign flip", forward.SavingsWhite, -backward.SavingsWhite)
	approx(t, "gray sign flip", forward.SavingsGray, -backward.SavingsGray)
}

func TestSensitivityHeightInvariantTerms(t *testing.T) {
	// Kicker and doors do not depend on height, so their costs cancel out
	// of the total savings.
	calc := NewDefault()
	repHigh, repLow, analysis, err := calc.Sensitivity(130, 3.0, 2.5, 0.6, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repHigh.CostKicker != repLow.CostKicker {
		t.Errorf("kicker cost changed with height: %.2f != %.2f", repHigh.CostKicker, repLow.CostKicker)
	}
	if repHigh.CostDoors != repLow.CostDoors {
		t.Errorf("door cost changed with height: %.2f != %.2f", repHigh.CostDoors, repLow.CostDoors)
	}

	whiteAndGray := analysis.SavingsWhite + analysis.SavingsGray
	if d := math.Abs(analysis.SavingsTotal - whiteAndGray); d > 0.02 {
		t.Errorf("savings total %.2f != white+gray savings %.2f", analysis.SavingsTotal, whiteAndGray)
	}
}

func TestSensitivityValidation(t *testing.T) {
	calc := NewDefault()

	_, _, _, err := calc.Sensitivity(0, 3.0, 2.5, 0.5, 0.5)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for zero PUM, got %v", err)
	}

	_, _, _, err = calc.Sensitivity(100, 3.0, -1, 0.5, 0.5)
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError for negative low height, got %v", err)
	}
}
