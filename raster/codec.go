package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

// encoder writes img to w in one concrete format.
type encoder func(w io.Writer, img image.Image) error

// encoders maps a lower-case file extension to its encoder.
var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  jpegEncode,
	".jpeg": jpegEncode,
	".gif":  gifEncode,
	".bmp":  bmp.Encode,
	".tif":  tiffEncode,
	".tiff": tiffEncode,
}

func jpegEncode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

// gifEncode quantizes to the Plan9 palette; the default path color may shift.
func gifEncode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func tiffEncode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Load decodes the image at path. The format is sniffed from the content;
// png, jpeg, gif, bmp, tiff and webp are recognised.
// Returns the image and the name of its format.
func Load(path string) (img image.Image, format string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("raster: open %q: %w", path, err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	img, format, err = image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, "", fmt.Errorf("raster: decode %q: %w", path, err)
	}

	return img, format, nil
}

// Save encodes img to path, choosing the encoder from the file extension
// (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff). Unknown extensions yield
// ErrUnsupportedFormat before the file is created. If encoding fails the
// partially written file is removed.
func Save(path string, img image.Image) (err error) {
	if img == nil {
		return ErrNilImage
	}
	enc, ok := encoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %q: %w", path, err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			err = multierr.Append(err, os.Remove(path))
		}
	}()

	w := bufio.NewWriter(f)
	if err = enc(w, img); err != nil {
		return fmt.Errorf("raster: encode %q: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("raster: write %q: %w", path, err)
	}

	return nil
}
