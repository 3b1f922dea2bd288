package poller

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/league-stats-service/internal/awards"
	"github.com/preston-bernstein/league-stats-service/internal/metrics"
	"github.com/preston-bernstein/league-stats-service/internal/teststubs"
)

func TestPollerSweepsOnStartAndTick(t *testing.T) {
	awarder := &teststubs.StubAwarder{
		Summary: awards.Summary{Games: 1, Awards: []awards.Award{{PlayerID: "p1", Badge: "sharpshooter"}}},
		Notify:  make(chan struct{}),
	}

	p := New(awarder, nil, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-awarder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial sweep")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	if awarder.Calls.Load() < 2 {
		t.Fatalf("expected initial and ticked sweeps, got %d", awarder.Calls.Load())
	}
	if p.Status().LastAwarded != 1 {
		t.Fatalf("expected last awarded count recorded, got %d", p.Status().LastAwarded)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	awarder := &teststubs.StubAwarder{Notify: make(chan struct{})}

	p := New(awarder, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-awarder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial sweep")
	}

	cancel()
	_ = p.Stop(context.Background())

	time.Sleep(10 * time.Millisecond)
	callsAfterStop := awarder.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if awarder.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional sweeps after stop; before=%d after=%d", callsAfterStop, awarder.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubAwarder{}, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStopWaitsForInFlightSweep(t *testing.T) {
	awarder := &teststubs.StubAwarder{Notify: make(chan struct{}), Release: make(chan struct{})}

	p := New(awarder, nil, nil, time.Hour)
	p.Start(context.Background())

	select {
	case <-awarder.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial sweep")
	}

	short, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.Stop(short); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error while sweep is running, got %v", err)
	}

	stopped := make(chan error, 1)
	go func() { stopped <- p.Stop(context.Background()) }()

	select {
	case err := <-stopped:
		t.Fatalf("stop returned before the sweep finished: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	close(awarder.Release)
	select {
	case err := <-stopped:
		if err != nil {
			t.Fatalf("unexpected stop error: %v", err)
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("stop did not return after the sweep finished")
	}
	if awarder.Calls.Load() != 1 {
		t.Fatalf("expected exactly one sweep, got %d", awarder.Calls.Load())
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubAwarder{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	p.Start(ctx) // should no-op

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubAwarder{}, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerStartReturnsWhenAlreadyStarted(t *testing.T) {
	p := New(&teststubs.StubAwarder{}, nil, nil, time.Hour)
	p.started = true
	p.Start(context.Background())
	if p.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	awarder := &teststubs.StubAwarder{Err: errors.New("boom")}
	rec := metrics.NewRecorder()

	p := New(awarder, nil, rec, time.Millisecond)
	ctx := context.Background()

	p.sweepOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	awarder.Err = nil
	p.sweepOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusIsReadyToleratesTwoFailures(t *testing.T) {
	now := time.Now()
	if !(Status{LastSuccess: now, ConsecutiveFailures: 2}).IsReady() {
		t.Fatalf("expected ready with 2 failures")
	}
	if (Status{LastSuccess: now, ConsecutiveFailures: 3}).IsReady() {
		t.Fatalf("expected not ready with 3 failures")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	awarder := &teststubs.StubAwarder{Err: errors.New("fail")}
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := New(awarder, logger, nil, time.Second)
	p.sweepOnce(context.Background())

	awarder.Err = nil
	p.sweepOnce(context.Background())

	out := buf.String()
	if !strings.Contains(out, "award sweep failed") || !strings.Contains(out, "award sweep finished") {
		t.Fatalf("expected both log lines, got %s", out)
	}
}
