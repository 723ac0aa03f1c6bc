package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vramfit/internal/estimate"
	"vramfit/internal/registry"
	"vramfit/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Estimate(ctx context.Context, input string, sel types.Selector) (types.Report, error)
}

// NewMux builds the router: /estimate, /healthz, /readyz, /metrics and the
// optional swagger mount.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, req)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}))
	}
	r.Use(MetricsMiddleware)

	r.Get("/estimate", handleEstimate(svc))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// The estimator holds no state to warm up; ready as soon as we listen.
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleEstimate serves one estimation query.
//
// @Summary      Estimate required GPU memory
// @Description  Estimates GPU memory for a registry model id, a size label such as 405B, or a bare parameter count.
// @Produce      json
// @Param        model_or_params  query  string  true   "Registry model id, size label, or parameter count"
// @Param        precision        query  string  false  "all, auto, 32, 16, 8 or 4 (default all)"
// @Success      200  {object}  types.Report
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      502  {object}  types.ErrorResponse
// @Router       /estimate [get]
func handleEstimate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := strings.TrimSpace(r.URL.Query().Get("model_or_params"))
		if input == "" {
			writeJSONError(w, http.StatusBadRequest, "model_or_params is required")
			return
		}
		precision := r.URL.Query().Get("precision")
		if precision == "" {
			precision = defaultPrecision
		}
		sel, err := types.ParseSelector(precision)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}

		start := time.Now()
		// Join server base context with request context so shutdown cancels
		// in-flight hub fetches too.
		joined, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		rep, err := svc.Estimate(joined, input, sel)
		if err != nil {
			if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
				return
			}
			status, reason := errorStatus(err)
			if reason != "" {
				IncrementRegistryFailure(reason)
			}
			writeJSONError(w, status, err.Error())
			logEstimate(r, input, precision, status, time.Since(start), err)
			return
		}
		for _, e := range rep.Estimates {
			ObserveEstimate(e.Bits)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rep); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}
		logEstimate(r, input, precision, http.StatusOK, time.Since(start), nil)
	}
}

// errorStatus maps well-known core errors to HTTP status codes. Anything
// unrecognized came from the upstream hub fetch and maps to 502.
func errorStatus(err error) (status int, reason string) {
	switch {
	case estimate.IsInvalidFormat(err) || types.IsInvalidPrecision(err):
		return http.StatusBadRequest, ""
	case registry.IsSizeUnavailable(err):
		return http.StatusNotFound, "size_unavailable"
	case registry.IsConfigUnavailable(err):
		return http.StatusNotFound, "config_unavailable"
	}
	return http.StatusBadGateway, "upstream"
}

func logEstimate(r *http.Request, input, precision string, status int, dur time.Duration, err error) {
	if zlog == nil {
		return
	}
	z := zlog.Info().
		Str("path", r.URL.Path).
		Str("input", input).
		Str("precision", precision).
		Int("status", status).
		Dur("dur", dur)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	if err != nil {
		z = z.Err(err)
	}
	z.Msg("estimate")
}
