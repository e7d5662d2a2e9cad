package capture

import (
	"image"
	"time"
)

// FrameSnapshot carries a decoded source frame and metadata.
type FrameSnapshot struct {
	Image    *image.RGBA
	Format   string
	Origin   string
	LoadedAt time.Time
	Sequence uint64
}

// Empty reports whether the snapshot holds no pixels.
func (s FrameSnapshot) Empty() bool {
	return s.Image == nil || s.Image.Rect.Empty()
}
