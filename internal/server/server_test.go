package server

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/alexiusacademia/gostor/internal/estimator"
)

func doRequest(t *testing.T, s *Server, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	ctx.Request.SetBodyString(body)
	s.Handle(&ctx)
	return &ctx
}

func TestEstimateEndpoint(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/estimate",
		`{"pum": 130, "height": 2.7, "pct_door_075": 0.6, "pct_door_1m": 0.4}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", got, ctx.Response.Body())
	}

	var rep estimator.MaterialReport
	if err := json.Unmarshal(ctx.Response.Body(), &rep); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if math.Abs(rep.GrayArea-277.29) > 0.01 {
		t.Errorf("gray area = %.2f, want 277.29", rep.GrayArea)
	}
	if rep.CostTotal <= 0 {
		t.Errorf("total cost = %.2f, want > 0", rep.CostTotal)
	}
}

func TestEstimateDefaultsDoorMix(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/estimate", `{"pum": 100, "height": 2.5}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", got, ctx.Response.Body())
	}

	var rep estimator.MaterialReport
	if err := json.Unmarshal(ctx.Response.Body(), &rep); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	// 50/50 split means an average width of 0.875 m
	if math.Abs(rep.AvgDoorWidth-0.875) > 0.001 {
		t.Errorf("avg door width = %.3f, want 0.875", rep.AvgDoorWidth)
	}
}

func TestEstimateValidationFailure(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/estimate", `{"pum": -5, "height": 2.5}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &errResp); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	if errResp.Status != fasthttp.StatusBadRequest || errResp.Message == "" {
		t.Errorf("unexpected error body: %+v", errResp)
	}
}

func TestEstimateRejectsBadJSON(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/estimate", `{"pum": `)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestRejectsNonPost(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodGet, "/estimate", "")

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/budget", `{}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestSensitivityEndpoint(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/sensitivity", `{"pum": 130}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", got, ctx.Response.Body())
	}

	var resp SensitivityResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	// Defaults: 3.0 m vs 2.5 m, 50/50 door mix
	if resp.Analysis.HeightHigh != estimator.DefaultHeightHigh || resp.Analysis.HeightLow != estimator.DefaultHeightLow {
		t.Errorf("default heights not applied: %+v", resp.Analysis)
	}
	if resp.Analysis.SavingsTotal <= 0 {
		t.Errorf("savings total = %.2f, want > 0 for lowering the hall", resp.Analysis.SavingsTotal)
	}

	delta := resp.High.CostTotal - resp.Low.CostTotal
	if math.Abs(resp.Analysis.SavingsTotal-delta) > 0.02 {
		t.Errorf("analysis savings %.2f disagrees with report totals %.2f", resp.Analysis.SavingsTotal, delta)
	}
}

func TestSensitivityValidationFailure(t *testing.T) {
	s := New(estimator.NewDefault())
	ctx := doRequest(t, s, fasthttp.MethodPost, "/sensitivity",
		`{"pum": 130, "height_high": 3.0, "height_low": -2.5}`)

	if got := ctx.Response.StatusCode(); got != fasthttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", got)
	}
}
