package server

import (
	"log"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/alexiusacademia/gostor/internal/estimator"
)

// EstimateRequest mirrors the CLI inputs for the JSON API. Door mix shares
// left at zero default to the standard 50/50 split.
type EstimateRequest struct {
	PUM        float64 `json:"pum"`
	Height     float64 `json:"height"`
	PctDoor075 float64 `json:"pct_door_075"`
	PctDoor1M  float64 `json:"pct_door_1m"`
}

// SensitivityRequest compares two hall heights for one floor area. Heights
// left at zero default to the standard 3.0 m vs 2.5 m comparison.
type SensitivityRequest struct {
	PUM        float64 `json:"pum"`
	HeightHigh float64 `json:"height_high"`
	HeightLow  float64 `json:"height_low"`
	PctDoor075 float64 `json:"pct_door_075"`
	PctDoor1M  float64 `json:"pct_door_1m"`
}

// SensitivityResponse bundles both reports with the savings analysis.
type SensitivityResponse struct {
	High     *estimator.MaterialReport `json:"high"`
	Low      *estimator.MaterialReport `json:"low"`
	Analysis *estimator.DeltaSummary   `json:"analysis"`
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Server wires the calculator to a fasthttp JSON API. The calculator is
// read-only, so one instance serves all requests without coordination.
type Server struct {
	calc *estimator.Calculator
}

// New creates a server around the given calculator.
func New(calc *estimator.Calculator) *Server {
	return &Server{calc: calc}
}

// ListenAndServe blocks serving the API on the given port.
func (s *Server) ListenAndServe(port string) error {
	log.Printf("gostor API listening on port %s", port)
	return fasthttp.ListenAndServe(":"+port, s.Handle)
}

// Handle routes a single request.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "only POST is supported")
		return
	}

	switch string(ctx.Path()) {
	case "/estimate":
		s.handleEstimate(ctx)
	case "/sensitivity":
		s.handleSensitivity(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "unknown endpoint: "+string(ctx.Path()))
	}
}

func (s *Server) handleEstimate(ctx *fasthttp.RequestCtx) {
	var req EstimateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	pct075, pct1m := defaultMix(req.PctDoor075, req.PctDoor1M)
	rep, err := s.calc.Estimate(estimator.Input{
		PUM:           req.PUM,
		Height:        req.Height,
		PctDoorNarrow: pct075,
		PctDoorWide:   pct1m,
	})
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, rep)
}

func (s *Server) handleSensitivity(ctx *fasthttp.RequestCtx) {
	var req SensitivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	high, low := req.HeightHigh, req.HeightLow
	if high == 0 && low == 0 {
		high, low = estimator.DefaultHeightHigh, estimator.DefaultHeightLow
	}
	pct075, pct1m := defaultMix(req.PctDoor075, req.PctDoor1M)

	repHigh, repLow, analysis, err := s.calc.Sensitivity(req.PUM, high, low, pct075, pct1m)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, SensitivityResponse{
		High:     repHigh,
		Low:      repLow,
		Analysis: analysis,
	})
}

func defaultMix(pct075, pct1m float64) (float64, float64) {
	if pct075 == 0 && pct1m == 0 {
		return estimator.DefaultDoorMix, estimator.DefaultDoorMix
	}
	return pct075, pct1m
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}
