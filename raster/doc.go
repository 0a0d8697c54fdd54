// Package raster is the image boundary of pixelpath: it reads maze images,
// turns their pixels into a gridgraph.GridGraph and draws solved paths back
// onto a copy of the image.
//
// What:
//
//   - Load decodes png, jpeg, gif, bmp, tiff and webp files.
//   - Save encodes by file extension (.png .jpg .jpeg .gif .bmp .tif .tiff).
//   - GridFromImage marks a pixel as a wall only when it equals the wall
//     color exactly (default opaque black); every other pixel is open.
//   - Paint copies the image and colors the given grid points.
//
// Errors:
//
//   - ErrUnsupportedFormat for an unknown output extension.
//   - ErrBadColor from ParseHexColor.
//   - ErrNilImage for nil image arguments.
//
// Lossy formats (jpeg, gif) may alter pixel values, so a maze saved as jpeg
// and loaded again is generally not the same maze.
package raster
