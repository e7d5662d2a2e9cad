package presenter

import (
	"time"

	"github.com/soocke/crop-tool-go/ui/model"
)

// SessionOpener reports whether the backend session is still open.
type SessionOpener interface{ Open() bool }

// SessionView displays elapsed session time and time left before the backend
// timeout. expired is set once the backend has likely dropped the session.
type SessionView interface {
	SetSession(elapsed, remaining time.Duration, expired bool)
}

// SessionPresenter formats session durations from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	open SessionOpener
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, open SessionOpener, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, open: open, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.open == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.open.Open(), now)
	e, r := p.sess.Values()
	p.view.SetSession(e, r, p.sess.Expired())
}
