package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("id-1")
	if g.ID != "id-1" || !g.IsFinal || g.HomeScore == nil || g.AwayScore == nil {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	line := SampleStatLine()
	if line.Points < 10 || line.Rebounds < 10 {
		t.Fatalf("expected a double-double line, got %+v", line)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestDecodeError(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.WriteHeader(http.StatusNotFound)
	_, _ = rr.WriteString(`{"error":"game not found","requestId":"abc"}`)

	msg, reqID := DecodeError(t, rr)
	if msg != "game not found" || reqID != "abc" {
		t.Fatalf("unexpected error body %q %q", msg, reqID)
	}
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop")}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if p.StartCalls != 1 || p.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", p)
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); !errors.Is(err, sh.ListenErr) {
		t.Fatalf("expected listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); !errors.Is(err, sh.ShutdownErr) {
		t.Fatalf("expected shutdown error, got %v", err)
	}
	if sh.ListenCalls() != 1 || sh.ShutdownCalls() != 1 {
		t.Fatalf("expected listen/shutdown calls, got %d/%d", sh.ListenCalls(), sh.ShutdownCalls())
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected default addr and handler")
	}

	closed := &StubHTTPServer{AddrVal: ":8080"}
	if err := closed.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	if closed.Addr() != ":8080" {
		t.Fatalf("expected addr passthrough")
	}

	b := &StubHTTPServer{Unblock: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocked := &StubHTTPServer{Unblock: make(chan struct{})}
	if err := blocked.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error from blocked shutdown, got %v", err)
	}

	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
