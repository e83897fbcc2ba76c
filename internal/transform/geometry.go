package transform

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Crop returns a copy of the sub-grid inside r. The result has dimensions
// (r.X2-r.X1) x (r.Y2-r.Y1) and its (0,0) pixel equals the source pixel at
// (r.X1, r.Y1). The channel count of the input is preserved.
func Crop(img image.Image, r Region) (image.Image, error) {
	b := img.Bounds()
	if err := r.validate(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}

	w, h := r.Dx(), r.Dy()
	if g, ok := img.(*image.Gray); ok {
		out := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			si := g.PixOffset(b.Min.X+r.X1, b.Min.Y+r.Y1+y)
			di := out.PixOffset(0, y)
			copy(out.Pix[di:di+w], g.Pix[si:si+w])
		}
		return out, nil
	}

	src := asNRGBA(img)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		si := src.PixOffset(r.X1, r.Y1+y)
		di := out.PixOffset(0, y)
		copy(out.Pix[di:di+w*4], src.Pix[si:si+w*4])
	}
	return out, nil
}

// Zoom magnifies img by a positive factor using bilinear interpolation.
// The output dimensions are the input dimensions scaled by factor, and the
// source point (cx, cy) lands at the center of the output. Source samples
// that fall outside the image clamp to the nearest edge pixel.
func Zoom(img image.Image, factor float64, cx, cy int) (*image.NRGBA, error) {
	return zoomAt(img, factor, float64(cx), float64(cy))
}

// ZoomCentered is Zoom anchored at the exact image center, so a factor of 1
// reproduces the input.
func ZoomCentered(img image.Image, factor float64) (*image.NRGBA, error) {
	b := img.Bounds()
	return zoomAt(img, factor, float64(b.Dx()-1)/2, float64(b.Dy()-1)/2)
}

func zoomAt(img image.Image, factor, cx, cy float64) (*image.NRGBA, error) {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("zoom factor %v must be positive and finite: %w", factor, ErrInvalidParameter)
	}

	src := asNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	ow := int(math.Round(float64(w) * factor))
	oh := int(math.Round(float64(h) * factor))
	if ow < 1 {
		ow = 1
	}
	if oh < 1 {
		oh = 1
	}

	out := image.NewNRGBA(image.Rect(0, 0, ow, oh))
	for dy := 0; dy < oh; dy++ {
		sy := cy + (float64(dy)-float64(oh-1)/2)/factor
		for dx := 0; dx < ow; dx++ {
			sx := cx + (float64(dx)-float64(ow-1)/2)/factor
			r, g, b := sampleBilinear(src, sx, sy)
			i := out.PixOffset(dx, dy)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, b, 255
		}
	}
	return out, nil
}

// RotateOptions controls rotation rendering.
type RotateOptions struct {
	// Fill is the color assigned to destination pixels the rotated source
	// does not cover (the corners revealed by the rotation). The alpha
	// component is ignored; results are always opaque.
	Fill color.NRGBA
}

// Rotate turns img counter-clockwise by the given angle in degrees about
// the image center. The output has the same dimensions as the input.
// Interior pixels are sampled with bilinear interpolation; uncovered
// pixels take opts.Fill, defaulting to white when opts is nil.
func Rotate(img image.Image, degrees float64, opts *RotateOptions) *image.NRGBA {
	fill := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if opts != nil {
		fill = opts.Fill
		fill.A = 255
	}

	src := asNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	sin, cos := math.Sincos(degrees * math.Pi / 180)
	cx := float64(w-1) / 2
	cy := float64(h-1) / 2

	for dy := 0; dy < h; dy++ {
		oy := float64(dy) - cy
		for dx := 0; dx < w; dx++ {
			ox := float64(dx) - cx
			// Inverse mapping: rotate the destination offset back into
			// source space. Screen coordinates have Y pointing down, so a
			// visually counter-clockwise rotation uses this sign layout.
			sx := cx + cos*ox - sin*oy
			sy := cy + sin*ox + cos*oy

			i := out.PixOffset(dx, dy)
			if sx < -0.5 || sx > float64(w)-0.5 || sy < -0.5 || sy > float64(h)-0.5 {
				out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = fill.R, fill.G, fill.B, 255
				continue
			}
			r, g, b := sampleBilinear(src, sx, sy)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, b, 255
		}
	}
	return out
}

// sampleBilinear samples src at a continuous position in pixel-index space
// (pixel (i,j) sits at coordinate (i,j)), averaging the four nearest pixels
// weighted by proximity. Coordinates outside the image clamp to the edge.
func sampleBilinear(src *image.NRGBA, x, y float64) (r, g, b uint8) {
	w, h := src.Rect.Dx(), src.Rect.Dy()

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	x1 := clampIndex(x0+1, w)
	y1 := clampIndex(y0+1, h)
	x0 = clampIndex(x0, w)
	y0 = clampIndex(y0, h)

	i00 := src.PixOffset(x0, y0)
	i10 := src.PixOffset(x1, y0)
	i01 := src.PixOffset(x0, y1)
	i11 := src.PixOffset(x1, y1)

	w00 := (1 - fx) * (1 - fy)
	w10 := fx * (1 - fy)
	w01 := (1 - fx) * fy
	w11 := fx * fy

	r = clampRound(w00*float64(src.Pix[i00]) + w10*float64(src.Pix[i10]) +
		w01*float64(src.Pix[i01]) + w11*float64(src.Pix[i11]))
	g = clampRound(w00*float64(src.Pix[i00+1]) + w10*float64(src.Pix[i10+1]) +
		w01*float64(src.Pix[i01+1]) + w11*float64(src.Pix[i11+1]))
	b = clampRound(w00*float64(src.Pix[i00+2]) + w10*float64(src.Pix[i10+2]) +
		w01*float64(src.Pix[i01+2]) + w11*float64(src.Pix[i11+2]))
	return r, g, b
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
