package transform

import (
	"fmt"
	"image"
)

// SplitRGB returns the three color channels of img as separate
// single-channel images with values unchanged.
func SplitRGB(img image.Image) (r, g, b *image.Gray) {
	src := asNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	r = image.NewGray(image.Rect(0, 0, w, h))
	g = image.NewGray(image.Rect(0, 0, w, h))
	b = image.NewGray(image.Rect(0, 0, w, h))

	j := 0
	for i := 0; i < len(src.Pix); i += 4 {
		r.Pix[j] = src.Pix[i]
		g.Pix[j] = src.Pix[i+1]
		b.Pix[j] = src.Pix[i+2]
		j++
	}
	return r, g, b
}

// ToCMYK converts img to the subtractive CMYK model and returns the four
// planes as single-channel images scaled to [0,255]. With r,g,b normalized
// to [0,1]:
//
//	K = 1 - max(r,g,b)
//	C = (1-r-K)/(1-K)   M = (1-g-K)/(1-K)   Y = (1-b-K)/(1-K)
//
// For a pure black pixel (K=1) the chromatic components are defined as 0.
func ToCMYK(img image.Image) (c, m, y, k *image.Gray) {
	src := asNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	c = image.NewGray(image.Rect(0, 0, w, h))
	m = image.NewGray(image.Rect(0, 0, w, h))
	y = image.NewGray(image.Rect(0, 0, w, h))
	k = image.NewGray(image.Rect(0, 0, w, h))

	j := 0
	for i := 0; i < len(src.Pix); i += 4 {
		rf := float64(src.Pix[i]) / 255
		gf := float64(src.Pix[i+1]) / 255
		bf := float64(src.Pix[i+2]) / 255

		mx := rf
		if gf > mx {
			mx = gf
		}
		if bf > mx {
			mx = bf
		}

		// (1-r-K)/(1-K) simplifies to (max-r)/max; max==0 is the pure
		// black case where C=M=Y are defined as 0.
		var cf, mf, yf float64
		if mx > 0 {
			cf = (mx - rf) / mx
			mf = (mx - gf) / mx
			yf = (mx - bf) / mx
		}

		c.Pix[j] = clampRound(cf * 255)
		m.Pix[j] = clampRound(mf * 255)
		y.Pix[j] = clampRound(yf * 255)
		k.Pix[j] = clampRound((1 - mx) * 255)
		j++
	}
	return c, m, y, k
}

// Negative inverts every sample: out = 255 - in. Applying it twice
// returns the original image exactly. The channel count is preserved.
func Negative(img image.Image) image.Image {
	var lut [256]uint8
	for i := range lut {
		lut[i] = uint8(255 - i)
	}
	return applyLUT(img, &lut)
}

// Grayscale converts img to a single-channel image using the ITU-R BT.601
// luma weights: round(0.299*R + 0.587*G + 0.114*B). A single-channel input
// is returned as a copy.
func Grayscale(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			si := g.PixOffset(b.Min.X, b.Min.Y+y)
			di := out.PixOffset(0, y)
			copy(out.Pix[di:di+b.Dx()], g.Pix[si:si+b.Dx()])
		}
		return out
	}

	src := asNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	j := 0
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[j] = clampRound(0.299*float64(src.Pix[i]) +
			0.587*float64(src.Pix[i+1]) +
			0.114*float64(src.Pix[i+2]))
		j++
	}
	return out
}

// Binarize maps every pixel strictly above threshold to 255 and everything
// else, including pixels equal to the threshold, to 0. Color inputs are
// converted to grayscale first. threshold must lie in [0,255].
func Binarize(img image.Image, threshold int) (*image.Gray, error) {
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("threshold %d outside [0,255]: %w", threshold, ErrInvalidParameter)
	}
	out := Grayscale(img)
	t := uint8(threshold)
	for i, v := range out.Pix {
		if v > t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out, nil
}
