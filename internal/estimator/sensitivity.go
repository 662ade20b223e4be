package estimator

// Default comparison heights and door mix for sensitivity runs.
const (
	DefaultHeightHigh = 3.0
	DefaultHeightLow  = 2.5
	DefaultDoorMix    = 0.5
)

// DeltaSummary quantifies the cost impact of lowering the hall for a fixed
// floor area and door mix. Savings are signed high − low values, computed
// from full-precision intermediates and rounded only here.
type DeltaSummary struct {
	HeightHigh float64 `json:"height_high_m"`
	HeightLow  float64 `json:"height_low_m"`
	PUM        float64 `json:"pum_m2"`

	SavingsWhite float64 `json:"savings_white_pln"`
	SavingsGray  float64 `json:"savings_gray_pln"`
	SavingsTotal float64 `json:"savings_total_pln"`

	// Raw areas from both runs, for traceability.
	WhiteHigh float64 `json:"white_high_m2"`
	WhiteLow  float64 `json:"white_low_m2"`
	GrayHigh  float64 `json:"gray_high_m2"`
	GrayLow   float64 `json:"gray_low_m2"`
}

// Sensitivity runs the model at two hall heights with identical PUM and
// door mix, and summarizes the savings of building lower. The two runs are
// independent; swapping the heights only flips the sign of the savings.
func (c *Calculator) Sensitivity(pum, heightHigh, heightLow, pctNarrow, pctWide float64) (*MaterialReport, *MaterialReport, *DeltaSummary, error) {
	inHigh := Input{PUM: pum, Height: heightHigh, PctDoorNarrow: pctNarrow, PctDoorWide: pctWide}
	inLow := Input{PUM: pum, Height: heightLow, PctDoorNarrow: pctNarrow, PctDoorWide: pctWide}

	if err := inHigh.Validate(); err != nil {
		return nil, nil, nil, err
	}
	if err := inLow.Validate(); err != nil {
		return nil, nil, nil, err
	}

	qHigh := c.compute(inHigh)
	qLow := c.compute(inLow)

	summary := &DeltaSummary{
		HeightHigh:   heightHigh,
		HeightLow:    heightLow,
		PUM:          pum,
		SavingsWhite: round(qHigh.costWhite-qLow.costWhite, 2),
		SavingsGray:  round(qHigh.costGray-qLow.costGray, 2),
		SavingsTotal: round(qHigh.costTotal-qLow.costTotal, 2),
		WhiteHigh:    round(qHigh.whiteArea, 2),
		WhiteLow:     round(qLow.whiteArea, 2),
		GrayHigh:     round(qHigh.grayArea, 2),
		GrayLow:      round(qLow.grayArea, 2),
	}

	return qHigh.report(), qLow.report(), summary, nil
}
