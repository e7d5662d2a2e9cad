package model

import (
	"sync"

	"github.com/soocke/crop-tool-go/domain/crop"
)

// SurfaceModel holds the box of the source image currently on screen. Clicks
// are normalized against it, so it must only change once the matching image
// has been drawn.
type SurfaceModel struct {
	mu  sync.RWMutex
	box crop.Rect
}

// NewSurfaceModel starts with an empty surface filling the display box.
func NewSurfaceModel(display crop.Size) *SurfaceModel {
	return &SurfaceModel{box: crop.Rect{W: float64(display.W), H: float64(display.H)}}
}

// Shown records that an image of w x h is now displayed at the surface origin.
func (m *SurfaceModel) Shown(w, h int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.box = crop.Rect{W: float64(w), H: float64(h)}
	m.mu.Unlock()
}

// Box returns the displayed image box.
func (m *SurfaceModel) Box() crop.Rect {
	if m == nil {
		return crop.Rect{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.box
}
