package capture

import (
	"image"
	"sync"
)

// The tool holds one source frame at a time and replaces it on every file
// load or screenshot, usually with a frame of the same logical size. A short
// free list of retired frames lets the next decode reuse a previous bitmap.
const maxFreeFrames = 2

// PoolStats counts frame pool traffic since start.
type PoolStats struct {
	Acquired uint64 // frames handed out
	Reused   uint64 // acquisitions served from the free list
	Recycled uint64 // frames returned and kept
	Dropped  uint64 // frames returned while the free list was full
}

var frames struct {
	mu    sync.Mutex
	free  []*image.RGBA
	stats PoolStats
}

// acquireFrame returns an RGBA frame of w x h at the origin. The smallest
// free frame with enough capacity is reused; its pixels are stale and must be
// fully overwritten by the caller.
func acquireFrame(w, h int) *image.RGBA {
	rect := image.Rect(0, 0, w, h)
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: image.Rectangle{}}
	}
	needed := w * h * 4

	frames.mu.Lock()
	frames.stats.Acquired++
	best := -1
	for i, f := range frames.free {
		if cap(f.Pix) >= needed && (best < 0 || cap(f.Pix) < cap(frames.free[best].Pix)) {
			best = i
		}
	}
	var img *image.RGBA
	if best >= 0 {
		img = frames.free[best]
		frames.free = append(frames.free[:best], frames.free[best+1:]...)
		frames.stats.Reused++
	}
	frames.mu.Unlock()

	if img == nil {
		return image.NewRGBA(rect)
	}
	img.Pix = img.Pix[:needed]
	img.Stride = w * 4
	img.Rect = rect
	return img
}

// RecycleFrame hands a retired source frame back for reuse. The caller must
// not touch img afterwards.
func RecycleFrame(img *image.RGBA) {
	if img == nil || cap(img.Pix) == 0 {
		return
	}
	frames.mu.Lock()
	defer frames.mu.Unlock()
	if len(frames.free) >= maxFreeFrames {
		frames.stats.Dropped++
		return
	}
	frames.free = append(frames.free, img)
	frames.stats.Recycled++
}

// FramePoolStats returns a snapshot of the pool counters.
func FramePoolStats() PoolStats {
	frames.mu.Lock()
	defer frames.mu.Unlock()
	return frames.stats
}
