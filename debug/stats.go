// Package debug logs runtime and application counters while config.Debug is
// set. Tk photos live outside the Go heap, so the process working set is
// logged next to heap figures; a gap that keeps widening means replaced
// source or preview photos are not being released.
package debug

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Gauge reports application counters to include in each stats line.
type Gauge func() []slog.Attr

// Snapshot collects one stats line: goroutines, heap, stacks, RSS where the
// platform exposes it, and the attributes of every gauge.
func Snapshot(gauges ...Gauge) []slog.Attr {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	attrs := []slog.Attr{
		slog.Uint64("goroutines", samples[0].Value.Uint64()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
	if rss, ok := processRSS(); ok {
		attrs = append(attrs, slog.Uint64("rss", rss))
	}
	for _, g := range gauges {
		if g != nil {
			attrs = append(attrs, g()...)
		}
	}
	return attrs
}

// StartStatsLogger logs a Snapshot every interval until stop is closed.
func StartStatsLogger(interval time.Duration, logger *slog.Logger, stop <-chan struct{}, gauges ...Gauge) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				logger.LogAttrs(context.Background(), slog.LevelDebug, "stats", Snapshot(gauges...)...)
			}
		}
	}()
}
