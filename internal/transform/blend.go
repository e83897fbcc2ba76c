package transform

import (
	"fmt"
	"image"
	"math"
)

// Blend computes the convex combination
//
//	out = clamp(round(alpha*a + (1-alpha)*b))
//
// pixel-wise and channel-wise. Both images must share identical dimensions
// and channel count; alpha must lie in [0,1]. Blending an image with
// itself returns the image unchanged for any alpha.
func Blend(a, b image.Image, alpha float64) (image.Image, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("blend weight %v outside [0,1]: %w", alpha, ErrInvalidParameter)
	}
	if channels(a) != channels(b) {
		return nil, fmt.Errorf("cannot blend %d-channel and %d-channel images: %w",
			channels(a), channels(b), ErrShapeMismatch)
	}
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return nil, fmt.Errorf("image sizes %dx%d and %dx%d differ: %w",
			ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy(), ErrShapeMismatch)
	}

	beta := 1 - alpha
	if ga, ok := a.(*image.Gray); ok {
		gb := b.(*image.Gray)
		w, h := ab.Dx(), ab.Dy()
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			ai := ga.PixOffset(ab.Min.X, ab.Min.Y+y)
			bi := gb.PixOffset(bb.Min.X, bb.Min.Y+y)
			di := out.PixOffset(0, y)
			for x := 0; x < w; x++ {
				out.Pix[di+x] = clampRound(alpha*float64(ga.Pix[ai+x]) + beta*float64(gb.Pix[bi+x]))
			}
		}
		return out, nil
	}

	na := asNRGBA(a)
	nb := asNRGBA(b)
	out := image.NewNRGBA(na.Rect)
	for i := 0; i < len(na.Pix); i += 4 {
		out.Pix[i] = clampRound(alpha*float64(na.Pix[i]) + beta*float64(nb.Pix[i]))
		out.Pix[i+1] = clampRound(alpha*float64(na.Pix[i+1]) + beta*float64(nb.Pix[i+1]))
		out.Pix[i+2] = clampRound(alpha*float64(na.Pix[i+2]) + beta*float64(nb.Pix[i+2]))
		out.Pix[i+3] = 255
	}
	return out, nil
}

// BlendEqualized equalizes both inputs (per Equalize) and blends the
// results. Shape and parameter validation match Blend.
func BlendEqualized(a, b image.Image, alpha float64) (image.Image, error) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("blend weight %v outside [0,1]: %w", alpha, ErrInvalidParameter)
	}
	if channels(a) != channels(b) {
		return nil, fmt.Errorf("cannot blend %d-channel and %d-channel images: %w",
			channels(a), channels(b), ErrShapeMismatch)
	}
	return Blend(Equalize(a), Equalize(b), alpha)
}
