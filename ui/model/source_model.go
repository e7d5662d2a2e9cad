package model

import (
	"image"
	"sync"

	"github.com/soocke/crop-tool-go/domain/capture"
)

// SourceModel holds the image currently offered for cropping. Replacing it
// recycles the previous frame. Safe for concurrent use: screenshots land from
// background goroutines while clicks read the frame on the UI thread.
type SourceModel struct {
	mu       sync.RWMutex
	current  capture.FrameSnapshot
	sequence uint64
}

func NewSourceModel() *SourceModel { return &SourceModel{} }

// Replace stores snap as the current source, stamping its sequence number,
// and recycles the previous frame.
func (m *SourceModel) Replace(snap capture.FrameSnapshot) capture.FrameSnapshot {
	if m == nil {
		return snap
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.current
	m.sequence++
	snap.Sequence = m.sequence
	m.current = snap
	if prev.Image != nil && prev.Image != snap.Image {
		capture.RecycleFrame(prev.Image)
	}
	return snap
}

// Current returns metadata of the current source. The returned image must
// only be read through With.
func (m *SourceModel) Current() capture.FrameSnapshot {
	if m == nil {
		return capture.FrameSnapshot{}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// With calls fn with the current source image (nil when none) while
// preventing the frame from being recycled.
func (m *SourceModel) With(fn func(img image.Image)) {
	if m == nil {
		return
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current.Image == nil {
		fn(nil)
		return
	}
	fn(m.current.Image)
}
