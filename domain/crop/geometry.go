package crop

import (
	"image"
	"math"
)

// Point is a coordinate on the crop surface.
type Point struct{ X, Y float64 }

// Rect is an axis-aligned rectangle given by its min corner and size.
type Rect struct{ X, Y, W, H float64 }

// Size is a width/height pair in pixels.
type Size struct{ W, H int }

// BoundingBox returns the rectangle spanned by two opposite corners.
func BoundingBox(a, b Point) Rect {
	return Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(b.X - a.X),
		H: math.Abs(b.Y - a.Y),
	}
}

// Normalize maps p into fractions of the displayed image box. Offsets are
// taken as absolute distances from the box's top-left corner.
func Normalize(p Point, display Rect) (float64, float64, bool) {
	if display.W <= 0 || display.H <= 0 {
		return 0, 0, false
	}
	return math.Abs(p.X-display.X) / display.W, math.Abs(p.Y-display.Y) / display.H, true
}

// SourceRegion converts two surface points into a crop rectangle expressed in
// source pixels of a logical resolution. ok is false when the display box is
// degenerate.
func SourceRegion(a, b Point, display Rect, logical Size) (Rect, bool) {
	ax, ay, ok := Normalize(a, display)
	if !ok {
		return Rect{}, false
	}
	bx, by, _ := Normalize(b, display)
	lw, lh := float64(logical.W), float64(logical.H)
	return Rect{
		X: math.Min(ax, bx) * lw,
		Y: math.Min(ay, by) * lh,
		W: math.Abs(ax-bx) * lw,
		H: math.Abs(ay-by) * lh,
	}, true
}

// Pixels truncates r onto the integer pixel grid. Width and height are
// truncated independently of the origin, so the size matches the float size.
func (r Rect) Pixels() image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.W), y+int(r.H))
}

// Valid reports whether r covers at least one whole pixel in each dimension.
func (r Rect) Valid() bool {
	return int(r.W) > 0 && int(r.H) > 0
}
