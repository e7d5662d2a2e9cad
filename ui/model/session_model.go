package model

import (
	"time"
)

// SessionModel tracks how long the backend crop session has been open and how
// much of the backend's idle timeout remains. It is decoupled from the UI;
// presenters should poll Values() and update views.
// The zero value is ready to use and has no timeout.
type SessionModel struct {
	active  bool
	started time.Time
	elapsed time.Duration
	timeout time.Duration
}

// NewSessionModel returns a session model for a backend that closes the session after timeout.
func NewSessionModel(timeout time.Duration) *SessionModel { return &SessionModel{timeout: timeout} }

// OnTick updates the model using the current session state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(open bool, now time.Time) {
	if m == nil {
		return
	}
	if open {
		if !m.active { // transition closed -> open
			m.active = true
			m.started = now
			m.elapsed = 0
		}
		m.elapsed = now.Sub(m.started)
	} else if m.active { // transition open -> closed
		m.elapsed = now.Sub(m.started)
		m.active = false
	}
}

// Values returns the elapsed session time and the remaining time before the
// backend timeout. Remaining is zero without a timeout or once exceeded.
func (m *SessionModel) Values() (elapsed, remaining time.Duration) {
	if m == nil {
		return 0, 0
	}
	elapsed = m.elapsed
	if m.timeout > 0 && elapsed < m.timeout {
		remaining = m.timeout - elapsed
	}
	return
}

// Expired reports whether the backend timeout has passed.
func (m *SessionModel) Expired() bool {
	if m == nil || m.timeout <= 0 {
		return false
	}
	return m.elapsed >= m.timeout
}
