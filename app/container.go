package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/text/language"

	"github.com/soocke/crop-tool-go/assets"
	"github.com/soocke/crop-tool-go/config"
	"github.com/soocke/crop-tool-go/domain/backend"
	"github.com/soocke/crop-tool-go/domain/capture"
	"github.com/soocke/crop-tool-go/domain/crop"
	"github.com/soocke/crop-tool-go/domain/i18n"
	"github.com/soocke/crop-tool-go/ui/model"
	"github.com/soocke/crop-tool-go/ui/presenter"
	"github.com/soocke/crop-tool-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config      *config.Config
	Logger      *slog.Logger
	Language    language.Tag
	Placeholder []byte

	Source  *model.SourceModel
	Preview *model.PreviewModel
	Session *model.SessionModel

	Backend *backend.Client
	Shots   presenter.ScreenshotSource
	Loader  *i18n.Loader
	Queue   *presenter.TaskQueue

	RootView *view.RootView

	// Presenters
	CropPresenter    *presenter.CropPresenter
	SessionPresenter *presenter.SessionPresenter
}

// BuildContainer constructs all components. Side-effects limited to asset
// loading; no widgets are created until the root view is built.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}

	placeholder, err := assets.LoadPlaceholder(cfg.PlaceholderPath)
	if err != nil {
		return nil, fmt.Errorf("placeholder: %w", err)
	}
	c.Placeholder = placeholder

	tag, lang := i18n.ResolveLanguage(cfg.Language, logger)
	c.Language = tag

	c.Source = model.NewSourceModel()
	c.Preview = model.NewPreviewModel()
	c.Session = model.NewSessionModel(cfg.SessionTimeout())

	httpc := &http.Client{Timeout: cfg.RequestTimeout()}
	c.Backend = backend.NewClient(cfg.BackendURL, httpc, cfg.RequestTimeout(), logger)
	switch cfg.ScreenshotSource {
	case config.SourceDisplay:
		c.Shots = capture.NewDisplaySource(logger)
	default:
		c.Shots = c.Backend
	}
	c.Loader = i18n.NewLoader(httpc, logger)
	c.Queue = &presenter.TaskQueue{}

	display := crop.Size{W: cfg.DisplayWidth, H: cfg.DisplayHeight}
	c.RootView = view.NewRootView(display, c.Queue, logger)

	c.CropPresenter = presenter.NewCropPresenter(presenter.CropOptions{
		Logical:     crop.Size{W: cfg.LogicalWidth, H: cfg.LogicalHeight},
		Display:     display,
		Language:    tag,
		I18nURL:     cfg.I18nURL(lang),
		Placeholder: placeholder,
	}, logger, c.RootView, c.Shots, c.Backend, c.Loader, c.Source, c.Preview)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.CropPresenter, c.RootView)
	return c, nil
}
