// Package imageio loads and saves raster images for the transform library.
//
// Decoding and encoding go through github.com/disintegration/imaging, so
// JPEG, PNG, BMP, GIF and TIFF are supported, selected by file extension.
// Unknown extensions fail with ErrUnsupportedFormat before any disk access;
// filesystem and codec failures are returned wrapped for errors.Is checks.
//
// The Cache type keeps decoded images keyed by path and is safe for
// concurrent use.
package imageio
