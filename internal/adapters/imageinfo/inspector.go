package imageinfo

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/webp"

	"resprune/internal/ports"
)

// Inspector implements ports.ImageInspector by reading image headers
type Inspector struct{}

var _ ports.ImageInspector = (*Inspector)(nil)

// NewInspector creates an image inspector
func NewInspector() *Inspector {
	return &Inspector{}
}

// Dimensions returns the width and height of the image at path
func (i *Inspector) Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read image header of %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid %s dimensions in %s", format, path)
	}
	return cfg.Width, cfg.Height, nil
}
