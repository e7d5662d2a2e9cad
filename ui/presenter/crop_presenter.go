package presenter

import (
	"context"
	"image"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/soocke/crop-tool-go/domain/backend"
	"github.com/soocke/crop-tool-go/domain/capture"
	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/i18n"
	"github.com/soocke/crop-tool-go/ui/images"
	"github.com/soocke/crop-tool-go/ui/model"
)

// ScreenshotSource supplies a validated screenshot payload.
type ScreenshotSource interface {
	Screenshot(ctx context.Context) (backend.Screenshot, error)
}

// SessionBackend persists crops and ends the session.
type SessionBackend interface {
	Save(ctx context.Context, pngData []byte) error
	Close(ctx context.Context) error
}

// TranslationLoader fetches a localization mapping; failures yield an empty map.
type TranslationLoader interface {
	Load(ctx context.Context, url string) map[string]string
}

// CropView is the UI surface driven by the presenter. Implementations must be
// safe to call from any goroutine.
type CropView interface {
	// SetSource shows a display-ready PNG of size w x h on the crop surface.
	SetSource(pngData []byte, w, h int)
	// DisplayBox returns the rendered source image box in click coordinates.
	DisplayBox() crop.Rect
	ShowMarker(m crop.Marker, at crop.Point)
	HideMarkers()
	ShowBorder(r crop.Rect)
	HideBorder()
	SetPreview(pngData []byte)
	SetCaptions(captions map[string]string)
	Alert(msg string)
	CloseWindow()
}

// CropOptions configures geometry and localization of the presenter.
type CropOptions struct {
	Logical     crop.Size
	Display     crop.Size
	Language    language.Tag
	I18nURL     string
	Placeholder []byte
}

// CropPresenter owns the crop workflow: source loading, corner recording,
// preview rendering, and the backend actions.
type CropPresenter struct {
	opts    CropOptions
	logger  *slog.Logger
	view    CropView
	shots   ScreenshotSource
	backend SessionBackend
	loader  TranslationLoader
	source  *model.SourceModel
	preview *model.PreviewModel

	mu      sync.Mutex // guards rec
	rec     crop.Recorder
	catalog atomic.Pointer[i18n.Catalog]
	open    atomic.Bool
	wg      sync.WaitGroup
}

// NewCropPresenter wires the presenter. The session starts open.
func NewCropPresenter(opts CropOptions, logger *slog.Logger, view CropView, shots ScreenshotSource, be SessionBackend, loader TranslationLoader, source *model.SourceModel, preview *model.PreviewModel) *CropPresenter {
	if source == nil {
		source = model.NewSourceModel()
	}
	if preview == nil {
		preview = model.NewPreviewModel()
	}
	p := &CropPresenter{opts: opts, logger: logger, view: view, shots: shots, backend: be, loader: loader, source: source, preview: preview}
	p.catalog.Store(p.newCatalog(nil))
	p.open.Store(true)
	return p
}

// Open reports whether the backend session has not been closed yet.
func (p *CropPresenter) Open() bool { return p != nil && p.open.Load() }

func (p *CropPresenter) t(key string) string { return p.catalog.Load().T(key) }

func (p *CropPresenter) newCatalog(translations map[string]string) *i18n.Catalog {
	cat, err := i18n.NewCatalog(p.opts.Language, translations)
	if err != nil {
		p.logger.Warn("build catalog", "language", p.opts.Language.String(), "error", err)
	}
	return cat
}

// Captions returns the widget captions of the active catalog.
func (p *CropPresenter) Captions() map[string]string { return p.catalog.Load().Captions() }

// LoadTranslations fetches the localization resource and applies captions.
// Failures leave the built-in texts in place.
func (p *CropPresenter) LoadTranslations(ctx context.Context) {
	var m map[string]string
	if p.loader != nil && p.opts.I18nURL != "" {
		m = p.loader.Load(ctx, p.opts.I18nURL)
	}
	cat := p.newCatalog(m)
	p.catalog.Store(cat)
	p.view.SetCaptions(cat.Captions())
}

// LoadFile replaces the source with the image at path. Undecodable files are
// logged and leave the current source untouched.
func (p *CropPresenter) LoadFile(path string) error {
	snap, err := capture.DecodeFile(path)
	if err != nil {
		p.logger.Warn("load file", "path", path, "error", err)
		return err
	}
	p.setSource(snap)
	return nil
}

// Screenshot fetches a capture and makes it the source. The outcome is always
// reported through an alert; the source is unchanged on failure.
func (p *CropPresenter) Screenshot(ctx context.Context) error {
	shot, err := p.shots.Screenshot(ctx)
	if err != nil {
		p.logger.Error("screenshot", "error", err)
		p.view.Alert(p.t(i18n.KeyScreenshotFailed))
		return err
	}
	snap, err := capture.Decode(shot.Data, capture.OriginScreenshot)
	if err != nil {
		p.logger.Error("screenshot decode", "content_type", shot.ContentType, "error", err)
		p.view.Alert(p.t(i18n.KeyScreenshotFailed))
		return err
	}
	p.setSource(snap)
	p.view.Alert(p.t(i18n.KeyScreenshotOK))
	return nil
}

func (p *CropPresenter) setSource(snap capture.FrameSnapshot) {
	// Encode while the frame is guaranteed alive; the view may render later.
	b := snap.Image.Bounds()
	scaled := images.ScaleToFit(snap.Image, p.opts.Display.W, p.opts.Display.H)
	pngData := images.EncodePNG(scaled)
	snap = p.source.Replace(snap)
	p.logger.Info("source replaced", "origin", snap.Origin, "format", snap.Format, "width", b.Dx(), "height", b.Dy(), "sequence", snap.Sequence)
	p.view.SetSource(pngData, scaled.Bounds().Dx(), scaled.Bounds().Dy())
}

// Click records a corner at pt and, once both corners exist, refreshes the
// border overlay and the cropped preview.
func (p *CropPresenter) Click(pt crop.Point) {
	p.mu.Lock()
	c := p.rec.Record(pt)
	p.mu.Unlock()

	p.view.ShowMarker(c.Marker, crop.MarkerOrigin(pt))
	if !c.Ready {
		return
	}
	p.view.ShowBorder(c.Border)

	region, ok := crop.SourceRegion(c.First, c.Second, p.view.DisplayBox(), p.opts.Logical)
	if !ok || !region.Valid() {
		p.showPlaceholder()
		return
	}
	var (
		out *image.NRGBA
		err error
	)
	p.source.With(func(img image.Image) {
		if img == nil {
			img = image.NewRGBA(image.Rectangle{})
		}
		out, err = crop.Extract(img, region.Pixels())
	})
	if err != nil {
		p.logger.Error("crop", "region", region.Pixels().String(), "error", err)
		p.showPlaceholder()
		return
	}
	pngData, err := crop.EncodePNG(out)
	if err != nil {
		p.logger.Error("encode preview", "error", err)
		p.showPlaceholder()
		return
	}
	p.preview.Set(crop.MakeDataURL(crop.PNGMime, pngData))
	p.logger.Debug("preview updated", "region", region.Pixels().String(), "source_sequence", p.source.Current().Sequence)
	p.view.SetPreview(pngData)
}

func (p *CropPresenter) showPlaceholder() {
	p.preview.Reset()
	p.view.SetPreview(p.opts.Placeholder)
}

// Reset clears the corners, hides the overlays and restores the placeholder.
// The source image is kept.
func (p *CropPresenter) Reset() {
	p.mu.Lock()
	clicks := p.rec.Count()
	p.rec.Reset()
	p.mu.Unlock()
	p.logger.Debug("reset", "clicks", clicks)
	p.view.HideMarkers()
	p.view.HideBorder()
	p.showPlaceholder()
}

// Confirm uploads the current preview to the backend.
func (p *CropPresenter) Confirm(ctx context.Context) error {
	pngData, err := p.preview.PNG(p.opts.Placeholder)
	if err != nil {
		p.logger.Error("preview bytes", "error", err)
		p.view.Alert(p.t(i18n.KeySaveFailed))
		return err
	}
	if err := p.backend.Save(ctx, pngData); err != nil {
		p.logger.Error("save", "error", err)
		p.view.Alert(p.t(i18n.KeySaveFailed))
		return err
	}
	p.logger.Info("crop saved", "bytes", len(pngData), "placeholder", p.preview.Placeholder())
	p.view.Alert(p.t(i18n.KeySaveOK))
	return nil
}

// Quit closes the backend session and, on success, the window.
func (p *CropPresenter) Quit(ctx context.Context) error {
	if err := p.backend.Close(ctx); err != nil {
		p.logger.Error("close session", "error", err)
		p.view.Alert(p.t(i18n.KeyQuitFailed))
		return err
	}
	p.open.Store(false)
	p.view.Alert(p.t(i18n.KeyQuitOK))
	p.view.CloseWindow()
	return nil
}

// Go runs a blocking action on its own goroutine so the UI stays responsive.
// Panics are logged instead of crashing the window.
func (p *CropPresenter) Go(ctx context.Context, name string, action func(context.Context) error) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("action panic", "action", name, "error", r, "stack", string(debug.Stack()))
			}
		}()
		if err := action(ctx); err != nil {
			p.logger.Debug("action failed", "action", name, "error", err)
		}
	}()
}

// Wait blocks until all actions started with Go have returned.
func (p *CropPresenter) Wait() { p.wg.Wait() }
