package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PreviewPanel shows the cropped result (or the placeholder) next to the surface.
type PreviewPanel interface {
	SetImage(pngData []byte)
}

type previewPanel struct {
	label *LabelWidget
	photo *Img // last Tk photo, deleted before replacement
}

// NewPreviewPanel grids the preview label at (row, col) showing placeholder.
func NewPreviewPanel(row, col int, placeholder []byte) PreviewPanel {
	photo := newPhoto(placeholder)
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return &previewPanel{label: lbl, photo: photo}
}

func (v *previewPanel) SetImage(pngData []byte) {
	if v == nil || v.label == nil || len(pngData) == 0 {
		return
	}
	deletePhoto(v.photo)
	v.photo = newPhoto(pngData)
	v.label.Configure(Image(v.photo))
}
