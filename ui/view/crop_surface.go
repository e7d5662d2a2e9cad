package view

import (
	"image"

	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/ui/images"
	"github.com/soocke/crop-tool-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	markerSize     = 5
	borderStroke   = 2
	surfacePadding = "0.4m"
)

// cropSurface shows the source image and the corner/selection overlays placed
// above it. All methods must run on the Tk thread.
type cropSurface struct {
	label   *LabelWidget
	photo   *Img
	markers [2]*FrameWidget
	edges   [4]*FrameWidget // top, bottom, left, right
}

// newCropSurface grids an empty surface of w x h at row and binds clicks to onClick.
func newCropSurface(row, w, h int, onClick func(crop.Point)) *cropSurface {
	s := &cropSurface{}
	s.photo = newPhoto(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h))))
	s.label = Label(Image(s.photo), Borderwidth(0), Padx(0), Pady(0), Background(theme.ColorSurface))
	Grid(s.label, Row(row), Column(0), Rowspan(2), Sticky("nw"), Padx(surfacePadding), Pady(surfacePadding))
	Bind(s.label, "<Button-1>", Command(func(e *Event) {
		if onClick != nil {
			onClick(crop.Point{X: float64(e.X), Y: float64(e.Y)})
		}
	}))
	// Later siblings stack above earlier ones: edges, then markers on top.
	for i := range s.edges {
		s.edges[i] = Frame(Width(borderStroke), Height(borderStroke), Background(theme.ColorSelection))
	}
	for i := range s.markers {
		s.markers[i] = Frame(Width(markerSize), Height(markerSize), Background(theme.ColorMarker))
	}
	return s
}

// setImage replaces the displayed photo; the previous one is released.
func (s *cropSurface) setImage(pngData []byte) {
	if s == nil || s.label == nil || len(pngData) == 0 {
		return
	}
	deletePhoto(s.photo)
	s.photo = newPhoto(pngData)
	s.label.Configure(Image(s.photo))
}

func (s *cropSurface) showMarker(m crop.Marker, at crop.Point) {
	var w *FrameWidget
	switch m {
	case crop.MarkerFirst:
		w = s.markers[0]
	case crop.MarkerSecond:
		w = s.markers[1]
	default:
		return
	}
	Place(w, In(s.label), X(int(at.X)), Y(int(at.Y)))
}

func (s *cropSurface) hideMarkers() {
	for _, m := range s.markers {
		PlaceForget(m)
	}
}

func (s *cropSurface) showBorder(r crop.Rect) {
	x, y := int(r.X), int(r.Y)
	w, h := int(r.W), int(r.H)
	if w < borderStroke {
		w = borderStroke
	}
	if h < borderStroke {
		h = borderStroke
	}
	Place(s.edges[0], In(s.label), X(x), Y(y), Width(w), Height(borderStroke))
	Place(s.edges[1], In(s.label), X(x), Y(y+h-borderStroke), Width(w), Height(borderStroke))
	Place(s.edges[2], In(s.label), X(x), Y(y), Width(borderStroke), Height(h))
	Place(s.edges[3], In(s.label), X(x+w-borderStroke), Y(y), Width(borderStroke), Height(h))
}

func (s *cropSurface) hideBorder() {
	for _, e := range s.edges {
		PlaceForget(e)
	}
}
