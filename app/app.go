package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/crop-tool-go/config"
	"github.com/soocke/crop-tool-go/debug"
	"github.com/soocke/crop-tool-go/domain/capture"
	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/ui/presenter"
	"github.com/soocke/crop-tool-go/ui/view"
)

const tick = 16 * time.Millisecond

type app struct {
	config  *config.Config
	logger  *slog.Logger
	c       *AppContainer
	loop    *presenter.Loop
	ctx     context.Context
	cancel  context.CancelFunc
	afterID string
	closed  bool
}

// NewApp builds the container and sizes the main window.
func NewApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &app{config: cfg, logger: logger, c: c}
	a.ctx, a.cancel = context.WithCancel(context.Background())

	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a, nil
}

// Start builds the UI, kicks off the localization fetch and runs the Tk loop.
func (a *app) Start() {
	if a.config.Debug {
		debug.StartStatsLogger(2*time.Second, a.logger, a.ctx.Done(), a.stats)
	}

	p := a.c.CropPresenter
	a.c.RootView.Build(a.c.Placeholder, p.Captions(), view.Handlers{
		OnClick:    func(pt crop.Point) { p.Click(pt) },
		OnLoadFile: func(path string) { _ = p.LoadFile(path) },
		OnScreenshot: func() {
			p.Go(a.ctx, "screenshot", p.Screenshot)
		},
		OnReset: p.Reset,
		OnConfirm: func() {
			p.Go(a.ctx, "confirm", p.Confirm)
		},
		OnQuit: func() {
			p.Go(a.ctx, "quit", p.Quit)
		},
		OnClose: a.exitHandler,
	})

	p.Go(a.ctx, "translations", func(ctx context.Context) error {
		p.LoadTranslations(ctx)
		return nil
	})

	a.loop = presenter.NewLoop(a.c.SessionPresenter, a.c.Queue, a.scheduleUpdate, func() bool { return a.closed })
	a.logger.Info("crop window ready",
		"backend", a.config.BackendURL,
		"screenshot_source", a.config.ScreenshotSource,
		"language", a.c.Language.String(),
	)
	a.scheduleUpdate()

	App.Wait()
	a.cancel()
	p.Wait()
}

// stats reports frame pool traffic, the source sequence and live Tk photos.
func (a *app) stats() []slog.Attr {
	pool := capture.FramePoolStats()
	return []slog.Attr{
		slog.Uint64("frames_acquired", pool.Acquired),
		slog.Uint64("frames_reused", pool.Reused),
		slog.Uint64("frames_recycled", pool.Recycled),
		slog.Uint64("frames_dropped", pool.Dropped),
		slog.Uint64("source_sequence", a.c.Source.Current().Sequence),
		slog.Int64("tk_photos", view.LivePhotos()),
	}
}

func (a *app) exitHandler() {
	if a.closed {
		return
	}
	a.closed = true
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.cancel()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.closed {
		return
	}
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.loop.Tick() })
}
