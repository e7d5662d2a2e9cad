package model

import (
	"sync"

	"github.com/soocke/crop-tool-go/domain/crop"
)

// PreviewModel holds the cropped preview as a PNG data URL. The zero value
// shows the placeholder and is usable.
type PreviewModel struct {
	mu      sync.Mutex
	dataURL string
}

func NewPreviewModel() *PreviewModel { return &PreviewModel{} }

// Set stores a cropped preview.
func (m *PreviewModel) Set(dataURL string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.dataURL = dataURL
	m.mu.Unlock()
}

// Reset switches back to the placeholder.
func (m *PreviewModel) Reset() { m.Set("") }

// Placeholder reports whether no crop is currently shown.
func (m *PreviewModel) Placeholder() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dataURL == ""
}

// DataURL returns the current preview data URL; empty means placeholder.
func (m *PreviewModel) DataURL() string {
	if m == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dataURL
}

// PNG returns the preview bytes. The placeholder resolves to placeholderPNG.
func (m *PreviewModel) PNG(placeholderPNG []byte) ([]byte, error) {
	url := m.DataURL()
	if url == "" {
		return placeholderPNG, nil
	}
	b, _, err := crop.DecodeDataURL(url)
	if err != nil {
		return nil, err
	}
	return b, nil
}
