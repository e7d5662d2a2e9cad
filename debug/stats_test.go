package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func attrMap(attrs []slog.Attr) map[string]slog.Value {
	m := make(map[string]slog.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestSnapshot_IncludesRuntimeAndGauges(t *testing.T) {
	m := attrMap(Snapshot(
		func() []slog.Attr { return []slog.Attr{slog.Uint64("frames_reused", 3)} },
		nil,
	))
	if m["goroutines"].Uint64() == 0 {
		t.Fatalf("expected at least one goroutine")
	}
	if _, ok := m["heap_alloc"]; !ok {
		t.Fatalf("missing heap_alloc: %v", m)
	}
	if m["frames_reused"].Uint64() != 3 {
		t.Fatalf("gauge attribute missing: %v", m)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartStatsLogger_StopsOnClose(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	stop := make(chan struct{})
	StartStatsLogger(5*time.Millisecond, logger, stop)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), `"msg":"stats"`) {
		if time.Now().After(deadline) {
			t.Fatalf("no stats line logged")
		}
		time.Sleep(5 * time.Millisecond)
	}
	close(stop)
}
