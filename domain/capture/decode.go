package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Origins of a source frame.
const (
	OriginFile       = "file"
	OriginScreenshot = "screenshot"
)

// ErrEmptyData is returned when there are no bytes to decode.
var ErrEmptyData = errors.New("no image data")

// Decode decodes data in any registered format into a pooled RGBA frame whose
// bounds start at the origin.
func Decode(data []byte, origin string) (FrameSnapshot, error) {
	if len(data) == 0 {
		return FrameSnapshot{}, ErrEmptyData
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return FrameSnapshot{}, fmt.Errorf("decode image: %w", err)
	}
	return FrameSnapshot{
		Image:    toFrame(img),
		Format:   format,
		Origin:   origin,
		LoadedAt: time.Now(),
	}, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (FrameSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FrameSnapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, OriginFile)
}

func toFrame(img image.Image) *image.RGBA {
	b := img.Bounds()
	frame := acquireFrame(b.Dx(), b.Dy())
	draw.Draw(frame, frame.Rect, img, b.Min, draw.Src)
	return frame
}
