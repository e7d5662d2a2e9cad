package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Screenshot sources accepted by ScreenshotSource.
const (
	SourceBackend = "backend"
	SourceDisplay = "display"
)

// Config holds runtime configuration for the crop tool.
// Fields may be loaded from a JSON file and overridden by environment variables.
type Config struct {
	Debug bool `json:"debug" env:"CROP_DEBUG"`

	// Backend session serving /screenshot, /save and /close.
	BackendURL            string `json:"backend_url" env:"CROP_BACKEND_URL"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" env:"CROP_REQUEST_TIMEOUT_SECONDS"`
	ScreenshotSource      string `json:"screenshot_source" env:"CROP_SCREENSHOT_SOURCE"`
	// Idle timeout after which the backend drops the session; 0 hides the countdown.
	SessionTimeoutSeconds int `json:"session_timeout_seconds" env:"CROP_SESSION_TIMEOUT_SECONDS"`

	// Localization: <I18nBase>/<Language>.json. Empty base means BackendURL.
	Language string `json:"language" env:"CROP_LANGUAGE"`
	I18nBase string `json:"i18n_base" env:"CROP_I18N_BASE"`

	// True capture resolution of the backend screenshots.
	LogicalWidth  int `json:"logical_width"`
	LogicalHeight int `json:"logical_height"`

	// On-screen box the source image is fitted into.
	DisplayWidth  int `json:"display_width"`
	DisplayHeight int `json:"display_height"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Optional PNG on disk replacing the embedded placeholder.
	PlaceholderPath string `json:"placeholder_path"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		BackendURL:            "http://127.0.0.1:8080",
		RequestTimeoutSeconds: 0,
		ScreenshotSource:      SourceBackend,
		SessionTimeoutSeconds: 600,
		Language:              "zh-cn",
		I18nBase:              "",
		LogicalWidth:          1280,
		LogicalHeight:         720,
		DisplayWidth:          640,
		DisplayHeight:         360,
		WindowWidth:           1000,
		WindowHeight:          560,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		c.BackendURL = def.BackendURL
	}
	c.I18nBase = strings.TrimRight(strings.TrimSpace(c.I18nBase), "/")
	if c.RequestTimeoutSeconds < 0 {
		c.RequestTimeoutSeconds = 0
	}
	if c.SessionTimeoutSeconds < 0 {
		c.SessionTimeoutSeconds = 0
	}
	switch c.ScreenshotSource {
	case SourceBackend, SourceDisplay:
	case "":
		c.ScreenshotSource = SourceBackend
	default:
		return fmt.Errorf("unknown screenshot source %q", c.ScreenshotSource)
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = def.Language
	}
	if c.LogicalWidth <= 0 || c.LogicalHeight <= 0 {
		c.LogicalWidth, c.LogicalHeight = def.LogicalWidth, def.LogicalHeight
	}
	if c.DisplayWidth < 50 {
		c.DisplayWidth = def.DisplayWidth
	}
	if c.DisplayHeight < 50 {
		c.DisplayHeight = def.DisplayHeight
	}
	if c.WindowWidth < c.DisplayWidth {
		c.WindowWidth = c.DisplayWidth
	}
	if c.WindowHeight < c.DisplayHeight {
		c.WindowHeight = c.DisplayHeight
	}
	return nil
}

// RequestTimeout returns the per-request timeout; zero means none.
func (c *Config) RequestTimeout() time.Duration {
	if c == nil || c.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// SessionTimeout returns the backend idle timeout; zero means unknown.
func (c *Config) SessionTimeout() time.Duration {
	if c == nil || c.SessionTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.SessionTimeoutSeconds) * time.Second
}

// I18nURL builds the localization resource URL for lang.
func (c *Config) I18nURL(lang string) string {
	base := c.I18nBase
	if base == "" {
		base = c.BackendURL
	}
	return base + "/" + lang + ".json"
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
// Environment variables are applied on top of the file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, err
		}
	} else {
		defer f.Close()
		dec := json.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return DefaultConfig(), err
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseEnv overrides cfg fields from environment variables. Unset variables keep
// the current value.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// WriteDefault saves DefaultConfig to path unless a file already exists there.
// It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := DefaultConfig().Save(path); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
