package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when the configured language cannot be parsed.
const DefaultLanguage = "zh-cn"

// ResolveLanguage validates a language value and returns its tag together with
// the resource name used to build the JSON URL. Invalid values fall back to
// DefaultLanguage.
func ResolveLanguage(value string, logger *slog.Logger) (language.Tag, string) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name != "" {
		if tag, err := language.Parse(name); err == nil {
			return tag, name
		} else if logger != nil {
			logger.Warn("invalid language, using default", "language", value, "error", err)
		}
	}
	return language.MustParse(DefaultLanguage), DefaultLanguage
}

// Loader fetches localization JSON documents.
type Loader struct {
	httpc  *http.Client
	logger *slog.Logger
}

// NewLoader returns a loader using httpc (http.DefaultClient when nil).
func NewLoader(httpc *http.Client, logger *slog.Logger) *Loader {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{httpc: httpc, logger: logger}
}

// Load fetches url and returns its string mapping. Failures are logged and
// yield an empty mapping; they never block the caller's startup.
func (l *Loader) Load(ctx context.Context, url string) map[string]string {
	m, err := l.fetch(ctx, url)
	if err != nil {
		l.logger.Error("load i18n", "url", url, "error", err)
		return map[string]string{}
	}
	l.logger.Debug("i18n loaded", "url", url, "keys", len(m))
	return m
}

func (l *Loader) fetch(ctx context.Context, url string) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	resp, err := l.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, nil
}
