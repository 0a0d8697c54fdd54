package raster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/katalvlaran/pixelpath/gridgraph"
)

// GridFromImage classifies every pixel of img as wall or open and returns
// the resulting grid. Grid cell (x,y) corresponds to pixel
// (Bounds().Min.X+x, Bounds().Min.Y+y).
//
// Returns ErrNilImage for a nil image and gridgraph.ErrEmptyGrid for an
// image with no pixels.
// Complexity: O(W×H).
func GridFromImage(img image.Image, wall color.NRGBA) (*gridgraph.GridGraph, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()

	// Fast path: direct pixel access avoids an interface call per pixel.
	if nrgba, ok := img.(*image.NRGBA); ok {
		return gridgraph.New(b.Dx(), b.Dy(), func(x, y int) bool {
			return nrgba.NRGBAAt(b.Min.X+x, b.Min.Y+y) == wall
		})
	}

	return gridgraph.New(b.Dx(), b.Dy(), func(x, y int) bool {
		return IsWall(img.At(b.Min.X+x, b.Min.Y+y), wall)
	})
}

// Paint returns a copy of img as *image.NRGBA with every grid point in path
// set to c. Points are grid coordinates, offset by img.Bounds().Min; points
// falling outside the image are ignored. img itself is not modified.
func Paint(img image.Image, path []image.Point, c color.NRGBA) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	for _, p := range path {
		q := p.Add(b.Min)
		if !q.In(b) {
			continue
		}
		dst.SetNRGBA(q.X, q.Y, c)
	}

	return dst, nil
}
