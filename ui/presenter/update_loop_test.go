package presenter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/soocke/crop-tool-go/ui/model"
)

type sessionViewMock struct {
	elapsed, remaining time.Duration
	expired            bool
	calls              int
}

func (m *sessionViewMock) SetSession(elapsed, remaining time.Duration, expired bool) {
	m.elapsed, m.remaining, m.expired = elapsed, remaining, expired
	m.calls++
}

type openerMock struct{ open bool }

func (o openerMock) Open() bool { return o.open }

// queuedView defers alerts and window teardown to the UI queue like the Tk view.
type queuedView struct {
	*mockView
	q       *TaskQueue
	onClose func()
}

func (v *queuedView) Alert(msg string) { v.q.Post(func() { v.mockView.Alert(msg) }) }

func (v *queuedView) CloseWindow() {
	v.q.Post(func() {
		v.mockView.CloseWindow()
		v.onClose()
	})
}

func TestTaskQueue_DrainRunsInOrder(t *testing.T) {
	var q TaskQueue
	var got []int
	for i := 0; i < 3; i++ {
		i := i
		q.Post(func() { got = append(got, i) })
	}
	q.Post(nil)
	if n := q.Drain(); n != 3 {
		t.Fatalf("expected 3 drained, got %d", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("out of order: %v", got)
		}
	}
	if q.Drain() != 0 {
		t.Fatalf("queue should be empty")
	}
}

func TestTaskQueue_PostDuringDrainDeferred(t *testing.T) {
	var q TaskQueue
	ran := false
	q.Post(func() { q.Post(func() { ran = true }) })
	if n := q.Drain(); n != 1 || ran {
		t.Fatalf("nested post should wait for next drain")
	}
	if n := q.Drain(); n != 1 || !ran {
		t.Fatalf("nested post never ran")
	}
}

func TestTaskQueue_ConcurrentPost(t *testing.T) {
	var q TaskQueue
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() {})
		}()
	}
	wg.Wait()
	if n := q.Drain(); n != 50 {
		t.Fatalf("expected 50 tasks, got %d", n)
	}
}

func TestLoop_TickDrainsSessionAndSchedules(t *testing.T) {
	var q TaskQueue
	drained := false
	q.Post(func() { drained = true })
	view := &sessionViewMock{}
	sess := NewSessionPresenter(model.NewSessionModel(10*time.Minute), openerMock{open: true}, view)
	scheduled := 0
	l := NewLoop(sess, &q, func() { scheduled++ }, nil)
	l.Tick()
	if !drained || scheduled != 1 || view.calls != 1 {
		t.Fatalf("tick incomplete: drained=%v scheduled=%d calls=%d", drained, scheduled, view.calls)
	}
	if view.remaining <= 0 || view.remaining > 10*time.Minute {
		t.Fatalf("unexpected remaining %v", view.remaining)
	}
	var nilLoop *Loop
	nilLoop.Tick()
}

func TestLoop_WindowClosedByDrainedTaskEndsTick(t *testing.T) {
	var q TaskQueue
	destroyed := false
	q.Post(func() { destroyed = true })
	view := &sessionViewMock{}
	sess := NewSessionPresenter(model.NewSessionModel(time.Minute), openerMock{open: true}, view)
	scheduled := 0
	l := NewLoop(sess, &q, func() { scheduled++ }, func() bool { return destroyed })

	l.Tick()
	if !destroyed {
		t.Fatalf("close task did not run")
	}
	if view.calls != 0 {
		t.Fatalf("session label updated after the window was destroyed: %d calls", view.calls)
	}
	if scheduled != 0 {
		t.Fatalf("tick rescheduled after the window was destroyed")
	}

	// Work posted after close is never run.
	ran := false
	q.Post(func() { ran = true })
	l.Tick()
	if ran || view.calls != 0 || scheduled != 0 {
		t.Fatalf("closed loop kept working: ran=%v calls=%d scheduled=%d", ran, view.calls, scheduled)
	}
}

func TestLoop_QuitFlowClosesWithoutSessionUpdate(t *testing.T) {
	var q TaskQueue
	closed := false
	rv := newMockView()
	p := newTestPresenter(&queuedView{mockView: rv, q: &q, onClose: func() { closed = true }}, &mockShots{}, &mockBackend{})
	sv := &sessionViewMock{}
	sess := NewSessionPresenter(model.NewSessionModel(time.Minute), p, sv)
	scheduled := 0
	l := NewLoop(sess, &q, func() { scheduled++ }, func() bool { return closed })

	if err := p.Quit(context.Background()); err != nil {
		t.Fatalf("quit: %v", err)
	}
	l.Tick()
	if !closed || len(rv.alerts) != 1 {
		t.Fatalf("expected alert then close, closed=%v alerts=%v", closed, rv.alerts)
	}
	if sv.calls != 0 || scheduled != 0 {
		t.Fatalf("tick continued after close: calls=%d scheduled=%d", sv.calls, scheduled)
	}
}

func TestSessionPresenter_ClosedSessionStopsClock(t *testing.T) {
	view := &sessionViewMock{}
	m := model.NewSessionModel(time.Minute)
	start := time.Now()
	NewSessionPresenter(m, openerMock{open: true}, view).Tick(start)
	p := NewSessionPresenter(m, openerMock{open: false}, view)
	p.Tick(start.Add(20 * time.Second))
	p.Tick(start.Add(50 * time.Second))
	if view.elapsed != 20*time.Second || view.remaining != 40*time.Second || view.expired {
		t.Fatalf("unexpected values %v %v %v", view.elapsed, view.remaining, view.expired)
	}
}

func TestSessionPresenter_ReportsExpiry(t *testing.T) {
	view := &sessionViewMock{}
	p := NewSessionPresenter(model.NewSessionModel(time.Minute), openerMock{open: true}, view)
	start := time.Now()
	p.Tick(start)
	p.Tick(start.Add(61 * time.Second))
	if !view.expired || view.remaining != 0 {
		t.Fatalf("expected expiry, got remaining=%v expired=%v", view.remaining, view.expired)
	}
}
