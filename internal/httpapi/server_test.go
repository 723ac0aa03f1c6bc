package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vramfit/internal/estimate"
	"vramfit/internal/registry"
	"vramfit/pkg/types"
)

// stubService returns a canned report or error.
type stubService struct {
	rep     types.Report
	err     error
	lastSel types.Selector
}

func (s *stubService) Estimate(ctx context.Context, input string, sel types.Selector) (types.Report, error) {
	s.lastSel = sel
	return s.rep, s.err
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestEstimateOK(t *testing.T) {
	rep := types.Report{
		Subject:    "parameters: 7.0B",
		Parameters: 7_000_000_000,
		Label:      "7.0B",
		Estimates:  []types.PrecisionEstimate{{Bits: 16, Bytes: 16_800_000_000, Human: "15.65 GB"}},
		Text:       "Required GPU Memory[parameters: 7.0B, precision: 16]: 15.65 GB",
	}
	svc := &stubService{rep: rep}
	rr := doGet(t, NewMux(svc), "/estimate?model_or_params=7B&precision=16")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var got types.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Text != rep.Text || len(got.Estimates) != 1 {
		t.Fatalf("unexpected report: %+v", got)
	}
	if svc.lastSel.Kind != types.SelectExplicit || svc.lastSel.Bits != types.Bits16 {
		t.Fatalf("selector = %+v", svc.lastSel)
	}
}

func TestEstimateDefaultsToAll(t *testing.T) {
	svc := &stubService{}
	doGet(t, NewMux(svc), "/estimate?model_or_params=7B")
	if svc.lastSel.Kind != types.SelectAll {
		t.Fatalf("selector = %+v, want all", svc.lastSel)
	}
}

func TestEstimateMissingInput(t *testing.T) {
	rr := doGet(t, NewMux(&stubService{}), "/estimate")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var er types.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Code != http.StatusBadRequest || er.Error == "" {
		t.Fatalf("unexpected error payload: %+v", er)
	}
}

func TestEstimateInvalidPrecision(t *testing.T) {
	svc := &stubService{}
	rr := doGet(t, NewMux(svc), "/estimate?model_or_params=7B&precision=64")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestEstimateErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid format", estimate.ErrInvalidFormat("bad"), http.StatusBadRequest},
		{"size unavailable", registry.ErrSizeUnavailable("org/m"), http.StatusNotFound},
		{"config unavailable", registry.ErrConfigUnavailable("org/m"), http.StatusNotFound},
		{"upstream", errors.New("fetch model info: unexpected status 500"), http.StatusBadGateway},
	}
	for _, c := range cases {
		rr := doGet(t, NewMux(&stubService{err: c.err}), "/estimate?model_or_params=org/m")
		if rr.Code != c.status {
			t.Fatalf("%s: status = %d, want %d", c.name, rr.Code, c.status)
		}
	}
}

func TestHealthEndpoints(t *testing.T) {
	mux := NewMux(&stubService{})
	if rr := doGet(t, mux, "/healthz"); rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rr.Code, rr.Body.String())
	}
	if rr := doGet(t, mux, "/readyz"); rr.Code != http.StatusOK {
		t.Fatalf("readyz: %d", rr.Code)
	}
	if rr := doGet(t, mux, "/metrics"); rr.Code != http.StatusOK {
		t.Fatalf("metrics: %d", rr.Code)
	}
}

func TestEstimateQueryEscapedModelID(t *testing.T) {
	svc := &stubService{rep: types.Report{Text: "x"}}
	rr := doGet(t, NewMux(svc), "/estimate?model_or_params=org%2Fmodel&precision=auto")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if svc.lastSel.Kind != types.SelectAuto {
		t.Fatalf("selector = %+v", svc.lastSel)
	}
}
