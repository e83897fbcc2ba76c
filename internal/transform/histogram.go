package transform

import (
	"image"
	"math"
)

// Histogram holds per-channel intensity counts: index i is the number of
// pixels whose channel value equals i. For a single-channel image the
// three series are identical.
type Histogram struct {
	R [256]int `json:"r"`
	G [256]int `json:"g"`
	B [256]int `json:"b"`
}

// Max returns the largest count across all three channels. Useful for
// scaling a rendered plot.
func (h *Histogram) Max() int {
	max := 0
	for i := 0; i < 256; i++ {
		if h.R[i] > max {
			max = h.R[i]
		}
		if h.G[i] > max {
			max = h.G[i]
		}
		if h.B[i] > max {
			max = h.B[i]
		}
	}
	return max
}

// ComputeHistogram counts pixel intensities per channel.
func ComputeHistogram(img image.Image) *Histogram {
	var h Histogram
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
		for y := 0; y < b.Dy(); y++ {
			i := g.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < b.Dx(); x++ {
				v := g.Pix[i+x]
				h.R[v]++
				h.G[v]++
				h.B[v]++
			}
		}
		return &h
	}

	src := asNRGBA(img)
	for i := 0; i < len(src.Pix); i += 4 {
		h.R[src.Pix[i]]++
		h.G[src.Pix[i+1]]++
		h.B[src.Pix[i+2]]++
	}
	return &h
}

// Equalize remaps intensities so the histogram of each channel becomes
// closer to uniform. The remapping is derived per channel from that
// channel's cumulative distribution, normalized to [0,255], and is
// monotonically non-decreasing. A channel containing a single intensity is
// left unchanged, and re-equalizing an already equalized single-channel
// image moves pixels by at most rounding error.
//
// Each channel of a color image is equalized independently.
func Equalize(img image.Image) image.Image {
	if g, ok := img.(*image.Gray); ok {
		return EqualizeGray(g)
	}

	src := asNRGBA(img)
	h := ComputeHistogram(src)
	total := src.Rect.Dx() * src.Rect.Dy()
	lutR := equalizeLUT(&h.R, total)
	lutG := equalizeLUT(&h.G, total)
	lutB := equalizeLUT(&h.B, total)

	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = lutR[src.Pix[i]]
		out.Pix[i+1] = lutG[src.Pix[i+1]]
		out.Pix[i+2] = lutB[src.Pix[i+2]]
		out.Pix[i+3] = 255
	}
	return out
}

// EqualizeGray equalizes a single-channel image.
func EqualizeGray(g *image.Gray) *image.Gray {
	b := g.Bounds()
	var hist [256]int
	for y := 0; y < b.Dy(); y++ {
		i := g.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			hist[g.Pix[i+x]]++
		}
	}
	lut := equalizeLUT(&hist, b.Dx()*b.Dy())

	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := g.PixOffset(b.Min.X, b.Min.Y+y)
		di := out.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			out.Pix[di+x] = lut[g.Pix[si+x]]
		}
	}
	return out
}

// equalizeLUT derives the CDF-based remapping for one channel. The usual
// cdf-min normalization keeps the lowest occupied intensity at 0 and the
// highest at 255; a channel with a single occupied intensity maps to
// itself so flat images pass through unchanged.
func equalizeLUT(hist *[256]int, total int) (lut [256]uint8) {
	identity := func() {
		for i := range lut {
			lut[i] = uint8(i)
		}
	}

	first := -1
	for i := 0; i < 256; i++ {
		if hist[i] > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		identity()
		return lut
	}
	cdfMin := hist[first]
	if cdfMin == total {
		identity()
		return lut
	}

	cdf := 0
	scale := 255 / float64(total-cdfMin)
	for i := 0; i < 256; i++ {
		cdf += hist[i]
		if i < first {
			lut[i] = 0
			continue
		}
		lut[i] = uint8(math.Round(float64(cdf-cdfMin) * scale))
	}
	return lut
}
