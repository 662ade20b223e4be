package estimator

import "math"

// MaterialReport is the rounded, immutable output of a single estimate.
// Areas, lengths and costs carry two decimals, the door count one and the
// average door width three, matching the precision of the calibration data.
type MaterialReport struct {
	GrayArea     float64 `json:"gray_area_m2"`
	WhiteArea    float64 `json:"white_area_m2"`
	KickerLength float64 `json:"kicker_length_mb"`
	DoorCount    float64 `json:"door_count"`
	AvgDoorWidth float64 `json:"avg_door_width_m"`

	CostGray   float64 `json:"cost_gray_pln"`
	CostWhite  float64 `json:"cost_white_pln"`
	CostKicker float64 `json:"cost_kicker_pln"`
	CostDoors  float64 `json:"cost_doors_pln"`
	CostTotal  float64 `json:"cost_total_pln"`
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func (q quantities) report() *MaterialReport {
	return &MaterialReport{
		GrayArea:     round(q.grayArea, 2),
		WhiteArea:    round(q.whiteArea, 2),
		KickerLength: round(q.kickerLength, 2),
		DoorCount:    round(q.doorCount, 1),
		AvgDoorWidth: round(q.avgDoorWidth, 3),
		CostGray:     round(q.costGray, 2),
		CostWhite:    round(q.costWhite, 2),
		CostKicker:   round(q.costKicker, 2),
		CostDoors:    round(q.costDoors, 2),
		CostTotal:    round(q.costTotal, 2),
	}
}
