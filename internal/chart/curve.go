package chart

import (
	"fmt"

	"github.com/alexiusacademia/gostor/internal/estimator"
)

// CostCurve holds estimate totals sampled across a hall height range.
// The lintel term kicks in above the door clear height, so the total cost
// line has a visible kink at 2.1 m.
type CostCurve struct {
	Heights []float64
	Total   []float64
	White   []float64
	Gray    []float64
}

// Sample re-runs the estimate at evenly spaced heights between from and to.
func Sample(c *estimator.Calculator, pum, pctNarrow, pctWide, from, to float64, steps int) (*CostCurve, error) {
	if steps < 2 {
		return nil, fmt.Errorf("need at least 2 sample points, got %d", steps)
	}
	if from <= 0 || to <= from {
		return nil, fmt.Errorf("invalid height range %.2f..%.2f", from, to)
	}

	curve := &CostCurve{
		Heights: make([]float64, steps),
		Total:   make([]float64, steps),
		White:   make([]float64, steps),
		Gray:    make([]float64, steps),
	}

	step := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		h := from + float64(i)*step
		if i == steps-1 {
			h = to
		}
		rep, err := c.Estimate(estimator.Input{
			PUM:           pum,
			Height:        h,
			PctDoorNarrow: pctNarrow,
			PctDoorWide:   pctWide,
		})
		if err != nil {
			return nil, err
		}
		curve.Heights[i] = h
		curve.Total[i] = rep.CostTotal
		curve.White[i] = rep.CostWhite
		curve.Gray[i] = rep.CostGray
	}
	return curve, nil
}
