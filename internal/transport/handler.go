// Package transport implements the HTTP surface over the rulelang facade:
// POST / evaluates a rule against data, GET /health (and the Kubernetes-
// style liveness/readiness split) reports process health, GET /metrics
// exposes Prometheus series. It reaches the evaluation core only through
// the root rulelang facade (its one other internal import is
// internal/config, for server settings), the same separation the teacher
// keeps between cmd/server/main.go and pgraph.go.
package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/rulelang/rulelang"
)

// evalRequest is the wire shape of an evaluation request.
type evalRequest struct {
	Rule  string `json:"rule"`
	Data  any    `json:"data"`
	Trace bool   `json:"trace"`
}

// Handler serves the evaluate/health/metrics endpoints.
type Handler struct {
	Log     *logrus.Logger
	Metrics *Metrics
	Ready   func() bool
}

// NewHandler builds a Handler. log may be nil, in which case a default
// logrus.Logger is used.
func NewHandler(log *logrus.Logger, metrics *Metrics, ready func() bool) *Handler {
	if log == nil {
		log = logrus.New()
	}
	return &Handler{Log: log, Metrics: metrics, Ready: ready}
}

// Mux assembles the routed http.Handler.
func (h *Handler) Mux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleEvaluate)
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/health/live", h.handleLive)
	mux.HandleFunc("/health/ready", h.handleReady)
	mux.Handle("/metrics", h.metricsHandler())
	return requestID(mux)
}

func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, _ := requestIDFrom(r.Context())
	entry := h.Log.WithField("request_id", id)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		wrapped := oops.With("request_id", id).Wrapf(err, "decoding evaluation request")
		entry.WithError(wrapped).Warn("bad request body")
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Rule == "" {
		writeError(w, http.StatusBadRequest, "missing field: rule")
		return
	}

	started := time.Now()
	resp := rulelang.Evaluate(r.Context(), req.Rule, req.Data, req.Trace)
	entry.WithFields(logrus.Fields{
		"result":   resp.Result,
		"duration": time.Since(started),
		"error":    resp.Error != "",
	}).Info("evaluation complete")

	h.recordMetrics(resp)

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) recordMetrics(resp *rulelang.Response) {
	if h.Metrics == nil {
		return
	}
	if resp.Error != "" {
		h.Metrics.EvaluationErrors.WithLabelValues("LoadError").Inc()
		return
	}
	result := "false"
	if resp.Result {
		result = "true"
	}
	h.Metrics.EvaluationsTotal.WithLabelValues(result).Inc()
}

func (h *Handler) metricsHandler() http.Handler {
	if h.Metrics == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	}
	return promhttp.HandlerFor(h.Metrics.Registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (h *Handler) handleLive(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}

func (h *Handler) handleReady(w http.ResponseWriter, _ *http.Request) {
	if h.Ready == nil || h.Ready() {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	w.Write([]byte("not ready\n"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type ctxKey int

const requestIDKey ctxKey = 0

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set("X-Request-Id", id)
		ctx := withRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
