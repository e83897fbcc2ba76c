package transform

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// GaussianBlur smooths img with a Gaussian kernel of the given radius.
// A radius of 0 returns an unmodified copy.
func GaussianBlur(img image.Image, radius float64) (*image.NRGBA, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("blur radius %v must be non-negative and finite: %w", radius, ErrInvalidParameter)
	}
	return asNRGBA(blur.Gaussian(img, radius)), nil
}

// Sharpen enhances local contrast with an unsharp-style convolution kernel.
func Sharpen(img image.Image) *image.NRGBA {
	return asNRGBA(effect.Sharpen(img))
}

// Median replaces each pixel with the median of its neighborhood, removing
// salt-and-pepper noise while keeping edges. radius is the neighborhood
// radius in pixels; 0 returns an unmodified copy.
func Median(img image.Image, radius float64) (*image.NRGBA, error) {
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("median radius %v must be non-negative and finite: %w", radius, ErrInvalidParameter)
	}
	return asNRGBA(effect.Median(img, radius)), nil
}
