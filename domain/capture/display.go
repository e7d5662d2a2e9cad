package capture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"github.com/vova616/screenshot"

	"github.com/soocke/crop-tool-go/domain/backend"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DisplaySource captures the local display instead of asking the backend.
// It satisfies the same contract as backend.Client.Screenshot.
type DisplaySource struct {
	grab   func() (*image.RGBA, error)
	logger *slog.Logger
}

// NewDisplaySource returns a source capturing with Grab.
func NewDisplaySource(logger *slog.Logger) *DisplaySource {
	return &DisplaySource{grab: Grab, logger: logger}
}

// Screenshot grabs the display and returns it PNG encoded.
func (d *DisplaySource) Screenshot(ctx context.Context) (backend.Screenshot, error) {
	if err := ctx.Err(); err != nil {
		return backend.Screenshot{}, err
	}
	img, err := d.grab()
	if err != nil {
		if d.logger != nil {
			d.logger.Error("capture display", "error", err)
		}
		return backend.Screenshot{}, fmt.Errorf("capture display: %w", err)
	}
	if img == nil || img.Rect.Empty() {
		return backend.Screenshot{}, backend.ErrEmptyBody
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return backend.Screenshot{}, fmt.Errorf("encode display capture: %w", err)
	}
	return backend.Screenshot{ContentType: "image/png", Data: buf.Bytes()}, nil
}
