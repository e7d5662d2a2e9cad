package view

import (
	"sync/atomic"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var livePhotos atomic.Int64

func newPhoto(pngData []byte) *Img {
	livePhotos.Add(1)
	return NewPhoto(Data(pngData))
}

func deletePhoto(p *Img) {
	if p == nil {
		return
	}
	p.Delete()
	livePhotos.Add(-1)
}

// LivePhotos returns the number of Tk photo images created and not yet deleted.
func LivePhotos() int64 { return livePhotos.Load() }
