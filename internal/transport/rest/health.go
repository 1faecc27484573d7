// Package rest serves the operational HTTP endpoints: probes and metrics.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type subscriptionCounter interface {
	ActiveCount() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	subs    subscriptionCounter
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, subs subscriptionCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, subs: subs, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status              string                `json:"status"`
	Version             string                `json:"version,omitempty"`
	Components          map[string]CompStatus `json:"components,omitempty"`
	ActiveSubscriptions *int                  `json:"active_subscriptions,omitempty"`
	Timestamp           time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 when the database is reachable and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: h.now()})
}

// Health reports database latency, build version and the number of running
// subscription tasks.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: map[string]CompStatus{"database": db},
		Timestamp:  h.now(),
	}
	if h.subs != nil {
		n := h.subs.ActiveCount()
		resp.ActiveSubscriptions = &n
	}

	code := http.StatusOK
	if db.Status != "ok" {
		resp.Status = "down"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
