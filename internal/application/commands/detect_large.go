package commands

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"resprune/internal/application"
	"resprune/internal/ports"
)

// DefaultLargeThreshold is the pixel count above which an image is reported
const DefaultLargeThreshold = 4 * 1024 * 1024

// DefaultImageExtensions are the drawable types inspected for size
var DefaultImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

// LargeImage is a drawable exceeding the pixel threshold
type LargeImage struct {
	Path   string
	Width  int
	Height int
}

// Pixels returns width × height
func (l LargeImage) Pixels() int64 {
	return int64(l.Width) * int64(l.Height)
}

// DetectLargeResult lists oversized drawables, largest first
type DetectLargeResult struct {
	Inspected int
	Skipped   int
	Images    []LargeImage
}

// DetectLargeCommand reports drawables whose pixel count exceeds Threshold
type DetectLargeCommand struct {
	layout     ports.ModuleLayout
	images     ports.ImageInspector
	logger     *pterm.Logger
	Threshold  int64
	Extensions []string
}

// NewDetectLargeCommand creates a new DetectLargeCommand
func NewDetectLargeCommand(layout ports.ModuleLayout, images ports.ImageInspector, logger *pterm.Logger, threshold int64) *DetectLargeCommand {
	return &DetectLargeCommand{
		layout:     layout,
		images:     images,
		logger:     logger,
		Threshold:  threshold,
		Extensions: DefaultImageExtensions,
	}
}

// Validate checks the threshold
func (c *DetectLargeCommand) Validate() error {
	if c.Threshold <= 0 {
		return &application.ValidationError{
			Field:   "threshold",
			Message: "pixel threshold must be positive",
		}
	}
	return nil
}

// Execute inspects every drawable. Files that cannot be decoded are skipped.
func (c *DetectLargeCommand) Execute(ctx context.Context) (*DetectLargeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	files, err := c.layout.ResourceFiles("drawable", func(name string) bool {
		ext := filepath.Ext(name)
		for _, e := range c.Extensions {
			if strings.EqualFold(ext, e) {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	result := &DetectLargeResult{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		width, height, err := c.images.Dimensions(path)
		if err != nil {
			c.logger.Warn("cannot read image size", c.logger.Args("path", path, "error", err))
			result.Skipped++
			continue
		}
		result.Inspected++

		img := LargeImage{Path: path, Width: width, Height: height}
		if img.Pixels() > c.Threshold {
			result.Images = append(result.Images, img)
		}
	}

	sort.SliceStable(result.Images, func(i, j int) bool {
		return result.Images[i].Pixels() > result.Images[j].Pixels()
	})
	return result, nil
}
