package view

import (
	"fmt"
	"time"

	"github.com/soocke/crop-tool-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows how long the backend session has been open and the time
// left before the backend drops it.
type SessionStats interface {
	SetSession(elapsed, remaining time.Duration, expired bool)
}

type sessionStats struct {
	sessionLbl   *TLabelWidget
	remainingLbl *TLabelWidget
}

// NewSessionStats creates the two duration labels inside parent at row.
func NewSessionStats(parent *FrameWidget, row int) SessionStats {
	s := &sessionStats{
		sessionLbl:   TLabel(Style(theme.StyleSessionLabel), Width(16)),
		remainingLbl: TLabel(Style(theme.StyleSessionLabel), Width(16)),
	}
	Grid(s.sessionLbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.remainingLbl, In(parent), Row(row+1), Column(0), Sticky("w"), Padx("0.2m"))
	s.sessionLbl.Configure(Txt("Session: 00:00"))
	s.remainingLbl.Configure(Txt("Left: --:--"))
	return s
}

func formatClock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// SetSession updates both labels. Without a known timeout the countdown shows --:--.
func (s *sessionStats) SetSession(elapsed, remaining time.Duration, expired bool) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + formatClock(elapsed)))
	left := "--:--"
	switch {
	case expired:
		left = "expired"
	case remaining > 0:
		left = formatClock(remaining)
	}
	s.remainingLbl.Configure(Txt("Left: " + left))
}
