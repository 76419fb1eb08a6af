package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	stateOK       = "ok"
	stateDegraded = "degraded"
	stateDown     = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to a health probe.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Check is one dependency behind the health endpoints. A failing required
// check takes the service down; a failing optional one degrades it.
type Check struct {
	Name     string
	Required bool
	Probe    pinger
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	checks  []Check
	version string
	now     func() time.Time
}

func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version, now: time.Now}
}

type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type probeResult struct {
	check   Check
	err     error
	latency time.Duration
}

// probe pings the checks accepted by keep concurrently under one deadline.
func (h *HealthHandler) probe(ctx context.Context, keep func(Check) bool) []probeResult {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]probeResult, 0, len(h.checks))
	for _, c := range h.checks {
		if keep(c) {
			results = append(results, probeResult{check: c})
		}
	}

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(r *probeResult) {
			defer wg.Done()
			start := time.Now()
			r.err = r.check.Probe.Ping(ctx)
			r.latency = time.Since(start)
		}(&results[i])
	}
	wg.Wait()
	return results
}

func overall(results []probeResult) string {
	state := stateOK
	for _, r := range results {
		if r.err == nil {
			continue
		}
		if r.check.Required {
			return stateDown
		}
		state = stateDegraded
	}
	return state
}

func healthStatusCode(state string) int {
	if state == stateDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: stateOK, Timestamp: h.now()})
}

// Ready probes required checks only and answers 503 when any fails.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	results := h.probe(r.Context(), func(c Check) bool { return c.Required })
	state := overall(results)
	writeJSON(w, healthStatusCode(state), HealthResponse{Status: state, Timestamp: h.now()})
}

// Health reports every check with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	results := h.probe(r.Context(), func(Check) bool { return true })

	components := make(map[string]ComponentHealth, len(results))
	for _, res := range results {
		if res.err != nil {
			components[res.check.Name] = ComponentHealth{Status: stateDown}
			continue
		}
		components[res.check.Name] = ComponentHealth{Status: stateOK, Latency: res.latency.String()}
	}

	state := overall(results)
	writeJSON(w, healthStatusCode(state), HealthResponse{
		Status:     state,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
