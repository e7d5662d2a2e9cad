package view

import (
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/i18n"
	"github.com/soocke/crop-tool-go/ui/model"
	"github.com/soocke/crop-tool-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Poster queues work for the Tk thread.
type Poster interface{ Post(fn func()) }

// Handlers receives user actions. Every callback runs on the Tk thread.
type Handlers struct {
	OnClick      func(pt crop.Point)
	OnLoadFile   func(path string)
	OnScreenshot func()
	OnReset      func()
	OnConfirm    func()
	OnQuit       func()
	OnClose      func() // destroys the window
}

// RootView composes the crop window layout. The exported presenter-facing
// methods may be called from any goroutine: Tk work is posted to the queue
// and runs when the update loop drains it.
type RootView struct {
	logger  *slog.Logger
	queue   Poster
	display crop.Size

	surface *cropSurface
	Preview PreviewPanel
	Session SessionStats

	buttons  map[string]*TButtonWidget
	handlers Handlers

	surfaceBox *model.SurfaceModel

	mu    sync.RWMutex // guards title
	title string
}

func NewRootView(display crop.Size, queue Poster, logger *slog.Logger) *RootView {
	return &RootView{
		logger:     logger,
		queue:      queue,
		display:    display,
		surfaceBox: model.NewSurfaceModel(display),
		buttons:    make(map[string]*TButtonWidget),
	}
}

// Build constructs the layout. placeholder is shown in the preview until a
// valid crop exists; captions label the buttons and the window title.
func (rv *RootView) Build(placeholder []byte, captions map[string]string, h Handlers) {
	if rv == nil {
		return
	}
	rv.handlers = h
	theme.InitStyles()

	// Column 0: crop surface. Column 1: preview above the action buttons.
	rv.surface = newCropSurface(0, rv.display.W, rv.display.H, h.OnClick)
	rv.Preview = NewPreviewPanel(0, 1, placeholder)

	side := Frame()
	Grid(side, Row(1), Column(1), Sticky("nwe"), Padx("0.4m"), Pady("0.3m"))
	actions := []struct {
		key   string
		style string
		cb    func()
	}{
		{i18n.KeyLoadFile, theme.StylePrimaryButton, rv.chooseFile},
		{i18n.KeyScreenshot, theme.StylePrimaryButton, h.OnScreenshot},
		{i18n.KeyReset, theme.StylePrimaryButton, h.OnReset},
		{i18n.KeyConfirm, theme.StylePrimaryButton, h.OnConfirm},
		{i18n.KeyQuit, theme.StyleDangerButton, h.OnQuit},
	}
	for i, a := range actions {
		cb := a.cb
		if cb == nil {
			cb = func() {}
		}
		btn := TButton(Style(a.style), Txt(captions[a.key]), Command(cb))
		Grid(btn, In(side), Row(i), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		rv.buttons[a.key] = btn
	}
	rv.Session = NewSessionStats(side, len(actions))
	rv.setTitle(captions[i18n.KeyTitle])
}

func (rv *RootView) chooseFile() {
	files := GetOpenFile(Title(rv.windowTitle()))
	if len(files) == 0 || files[0] == "" {
		return
	}
	if rv.handlers.OnLoadFile != nil {
		rv.handlers.OnLoadFile(files[0])
	}
}

func (rv *RootView) setTitle(title string) {
	rv.mu.Lock()
	rv.title = title
	rv.mu.Unlock()
	App.WmTitle(title)
}

func (rv *RootView) windowTitle() string {
	rv.mu.RLock()
	defer rv.mu.RUnlock()
	return rv.title
}

func (rv *RootView) post(fn func()) {
	if rv == nil || rv.queue == nil {
		return
	}
	rv.queue.Post(func() {
		defer func() {
			if r := recover(); r != nil && rv.logger != nil {
				rv.logger.Error("ui task panic", "error", r)
			}
		}()
		fn()
	})
}

// SetSource shows the display-ready source image. The box used for click
// normalization switches together with the photo.
func (rv *RootView) SetSource(pngData []byte, w, h int) {
	rv.post(func() {
		rv.surface.setImage(pngData)
		rv.surfaceBox.Shown(w, h)
	})
}

// DisplayBox returns the box of the rendered source in surface coordinates.
func (rv *RootView) DisplayBox() crop.Rect {
	if rv == nil {
		return crop.Rect{}
	}
	return rv.surfaceBox.Box()
}

func (rv *RootView) ShowMarker(m crop.Marker, at crop.Point) {
	rv.post(func() { rv.surface.showMarker(m, at) })
}

func (rv *RootView) HideMarkers() { rv.post(func() { rv.surface.hideMarkers() }) }

func (rv *RootView) ShowBorder(r crop.Rect) { rv.post(func() { rv.surface.showBorder(r) }) }

func (rv *RootView) HideBorder() { rv.post(func() { rv.surface.hideBorder() }) }

// SetPreview replaces the preview image.
func (rv *RootView) SetPreview(pngData []byte) {
	rv.post(func() {
		if rv.Preview != nil {
			rv.Preview.SetImage(pngData)
		}
	})
}

// SetCaptions relabels the buttons and the window title.
func (rv *RootView) SetCaptions(captions map[string]string) {
	rv.post(func() {
		for key, text := range captions {
			if key == i18n.KeyTitle {
				rv.setTitle(text)
				continue
			}
			if btn, ok := rv.buttons[key]; ok {
				btn.Configure(Txt(text))
			}
		}
	})
}

// Alert shows a modal message box.
func (rv *RootView) Alert(msg string) {
	rv.post(func() { MessageBox(Msg(msg), Title(rv.windowTitle())) })
}

// CloseWindow tears the window down on the Tk thread.
func (rv *RootView) CloseWindow() {
	rv.post(func() {
		if rv.handlers.OnClose != nil {
			rv.handlers.OnClose()
		}
	})
}

// SetSession updates the session labels. Called from the update loop on the Tk thread.
func (rv *RootView) SetSession(elapsed, remaining time.Duration, expired bool) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(elapsed, remaining, expired)
}
