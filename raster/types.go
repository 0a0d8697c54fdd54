package raster

import (
	"errors"
	"image/color"
)

// Sentinel errors for raster operations.
var (
	// ErrUnsupportedFormat indicates a file extension with no registered encoder.
	ErrUnsupportedFormat = errors.New("raster: unsupported image format")
	// ErrBadColor indicates a color string that is not #RRGGBB or #RRGGBBAA.
	ErrBadColor = errors.New("raster: malformed hex color")
	// ErrNilImage indicates a nil image.Image argument.
	ErrNilImage = errors.New("raster: image is nil")
)

var (
	// DefaultWallColor is opaque black: the only pixel value treated as a wall.
	DefaultWallColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	// DefaultPathColor is the orange used to draw solved paths.
	DefaultPathColor = color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff}
)
