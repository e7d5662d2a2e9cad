package presenter

import "time"

// TaskDrainer runs UI work queued from background goroutines.
type TaskDrainer interface{ Drain() int }

// Loop drives periodic UI updates on the toolkit thread.
//
// It drains queued view updates, ticks the session presenter and invokes a
// scheduler callback. A drained task may close the window; once Closed
// reports true the tick ends right after draining, with no further widget
// updates and no rescheduling. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Tasks    TaskDrainer
	Schedule func()
	Closed   func() bool
}

func NewLoop(sess *SessionPresenter, tasks TaskDrainer, schedule func(), closed func() bool) *Loop {
	return &Loop{Session: sess, Tasks: tasks, Schedule: schedule, Closed: closed}
}

func (l *Loop) closed() bool { return l.Closed != nil && l.Closed() }

func (l *Loop) Tick() {
	if l == nil || l.closed() {
		return
	}
	if l.Tasks != nil {
		l.Tasks.Drain()
	}
	if l.closed() {
		return
	}
	if l.Session != nil {
		l.Session.Tick(time.Now())
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
