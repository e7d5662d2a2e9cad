package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/png"
	"os"
)

// PlaceholderPNG contains the raw PNG bytes shown when no valid crop exists.
//
//go:embed placeholder.png
var PlaceholderPNG []byte

// LoadPlaceholder returns the PNG bytes at path, or the embedded placeholder
// when path is empty. The file must decode as PNG.
func LoadPlaceholder(path string) ([]byte, error) {
	if path == "" {
		return PlaceholderPNG, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read placeholder: %w", err)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("placeholder %s is not a png: %w", path, err)
	}
	return b, nil
}
