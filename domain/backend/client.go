package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Endpoint paths and upload field names expected by the backend session.
const (
	ScreenshotPath = "/screenshot"
	SavePath       = "/save"
	ClosePath      = "/close"

	SaveField    = "image"
	SaveFileName = "自定义.png"

	RequestIDHeader = "X-Request-ID"
)

var (
	// ErrNotImage is returned when /screenshot answers with a non-image content type.
	ErrNotImage = errors.New("screenshot response is not an image")
	// ErrEmptyBody is returned when /screenshot answers with a zero-length body.
	ErrEmptyBody = errors.New("screenshot response is empty")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Path, e.Code)
}

// Screenshot is a validated image payload.
type Screenshot struct {
	ContentType string
	Data        []byte
}

// Client talks to the backend that owns the crop session.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient returns a client for baseURL sending requests through httpc
// (http.DefaultClient when nil). A zero timeout leaves requests unbounded.
func NewClient(baseURL string, httpc *http.Client, timeout time.Duration, logger *slog.Logger) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, context.CancelFunc, error) {
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("build %s request: %w", path, err)
	}
	id := uuid.NewString()
	req.Header.Set(RequestIDHeader, id)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		cancel()
		c.logger.Error("backend request", "path", path, "request_id", id, "error", err)
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	c.logger.Debug("backend request", "path", path, "request_id", id, "status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, cancel, nil
}

// Screenshot fetches the current game window capture. The response must carry an
// image content type and a non-empty body.
func (c *Client) Screenshot(ctx context.Context) (Screenshot, error) {
	resp, cancel, err := c.do(ctx, http.MethodGet, ScreenshotPath, nil, "")
	if err != nil {
		return Screenshot{}, err
	}
	defer cancel()
	defer resp.Body.Close()
	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		io.Copy(io.Discard, resp.Body)
		return Screenshot{}, fmt.Errorf("%w: %q", ErrNotImage, ct)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Screenshot{}, fmt.Errorf("read screenshot: %w", err)
	}
	if len(data) == 0 {
		return Screenshot{}, ErrEmptyBody
	}
	return Screenshot{ContentType: ct, Data: data}, nil
}

// Save uploads a PNG as multipart form data.
func (c *Client) Save(ctx context.Context, pngData []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(SaveField, SaveFileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(pngData); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}
	resp, cancel, err := c.do(ctx, http.MethodPost, SavePath, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: SavePath, Code: resp.StatusCode}
	}
	return nil
}

// Close ends the backend session.
func (c *Client) Close(ctx context.Context) error {
	resp, cancel, err := c.do(ctx, http.MethodGet, ClosePath, nil, "")
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Path: ClosePath, Code: resp.StatusCode}
	}
	return nil
}
