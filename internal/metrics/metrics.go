package metrics

import (
	"sync"
	"time"
)

type queryStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and forwards them to
// OpenTelemetry instruments when configured. A nil Recorder is a no-op.
type Recorder struct {
	mu      sync.Mutex
	queries map[string]*queryStats
	awarded map[string]int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		queries: make(map[string]*queryStats),
		awarded: make(map[string]int),
		otel:    otel,
	}
}

// RecordQuery counts a store query and keeps its latest latency.
func (r *Recorder) RecordQuery(query string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.queries[query]
	if !ok {
		stats = &queryStats{}
		r.queries[query] = stats
	}
	stats.calls++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuery(query, duration, err)
	}
}

// RecordBadgeAwarded counts a newly recorded badge.
func (r *Recorder) RecordBadgeAwarded(badge string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.awarded[badge]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBadge(badge)
	}
}

// QuerySnapshot is a copy of the stats for one query.
type QuerySnapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

// Query returns the current stats for a query.
func (r *Recorder) Query(query string) QuerySnapshot {
	if r == nil {
		return QuerySnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.queries[query]
	if !ok {
		return QuerySnapshot{}
	}
	return QuerySnapshot{Calls: stats.calls, Errors: stats.errors, LastLatency: stats.lastLatency}
}

// BadgesAwarded returns how many times badge has been recorded.
func (r *Recorder) BadgesAwarded(badge string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.awarded[badge]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordAwardCycle tracks award sweep cycles and errors.
func (r *Recorder) RecordAwardCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordAwardCycle(duration, err)
}

// PoolStats is a point-in-time view of the database connection pool.
type PoolStats struct {
	Total    int32
	Idle     int32
	Acquired int32
}

// ObservePool reports stat on every metrics collection. Without
// OpenTelemetry it does nothing.
func (r *Recorder) ObservePool(stat func() PoolStats) error {
	if r == nil || r.otel == nil || stat == nil {
		return nil
	}
	return r.otel.observePool(stat)
}
