// Package transform implements classical raster transforms over 8-bit images:
// point (intensity) transforms, geometric transforms, histogram analysis,
// alpha-blend fusion, and color-space conversion.
//
// # Image Model
//
// Three-channel images are *image.NRGBA with the alpha channel forced to 255;
// single-channel images are *image.Gray. Every sample is an 8-bit value, and
// all arithmetic saturates to [0,255] rather than wrapping.
//
// Every transform is a pure function: it reads its input, allocates a new
// image, and returns it. Inputs are never mutated, so the same source image
// can safely be passed to any number of transforms concurrently.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Regions use an inclusive
// top-left corner (X1,Y1) and an exclusive bottom-right corner (X2,Y2).
//
// # Error Handling
//
// Failures are reported through sentinel kinds that callers can test with
// errors.Is:
//
//   - ErrInvalidParameter: out-of-range scalar (gamma, alpha, threshold, ...)
//   - ErrInvalidRegion: malformed or out-of-bounds crop rectangle
//   - ErrShapeMismatch: fusion inputs of differing size or channel count
//
// Every transform either fully succeeds and returns a valid image, or fails
// and returns no image. The package performs no logging and keeps no state.
package transform
