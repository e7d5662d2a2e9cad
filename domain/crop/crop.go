package crop

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrEmptyRegion is returned when a crop has no pixels.
var ErrEmptyRegion = errors.New("crop region is empty")

// Extract copies region (relative to src.Bounds().Min) into a new image of
// exactly region's size. Parts of region outside src are left transparent.
func Extract(src image.Image, region image.Rectangle) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.New("nil source image")
	}
	if region.Empty() {
		return nil, ErrEmptyRegion
	}
	b := src.Bounds()
	abs := region.Add(b.Min)
	dst := imaging.New(region.Dx(), region.Dy(), color.NRGBA{})
	overlap := abs.Intersect(b)
	if overlap.Empty() {
		return dst, nil
	}
	part := imaging.Crop(src, overlap)
	return imaging.Paste(dst, part, overlap.Min.Sub(abs.Min)), nil
}
