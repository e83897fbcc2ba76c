package transform

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// Channel selects one of the three color channels of an RGB image.
type Channel int

const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// ParseChannel converts "R", "G" or "B" (case-insensitive) to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "R", "r":
		return ChannelR, nil
	case "G", "g":
		return ChannelG, nil
	case "B", "b":
		return ChannelB, nil
	}
	return 0, fmt.Errorf("channel must be R, G or B, got %q: %w", s, ErrInvalidParameter)
}

func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	}
	return "?"
}

// Region is a rectangle within an image. (X1,Y1) is the inclusive top-left
// corner and (X2,Y2) the exclusive bottom-right corner.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Dx returns the region width.
func (r Region) Dx() int { return r.X2 - r.X1 }

// Dy returns the region height.
func (r Region) Dy() int { return r.Y2 - r.Y1 }

func (r Region) validate(w, h int) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("degenerate region (%d,%d)-(%d,%d): %w", r.X1, r.Y1, r.X2, r.Y2, ErrInvalidRegion)
	}
	if r.X1 < 0 || r.Y1 < 0 || r.X2 > w || r.Y2 > h {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside %dx%d image: %w",
			r.X1, r.Y1, r.X2, r.Y2, w, h, ErrInvalidRegion)
	}
	return nil
}

// clampInt saturates an integer sample value to [0,255].
func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clampRound rounds a float sample value to the nearest integer and
// saturates it to [0,255].
func clampRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// asNRGBA returns img as a zero-origin, tightly packed *image.NRGBA.
// The input is returned unchanged when it already has that layout, so the
// result must be treated as read-only by callers that write elsewhere.
func asNRGBA(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.NRGBA); ok &&
		p.Rect.Min.X == 0 && p.Rect.Min.Y == 0 &&
		p.Stride == p.Rect.Dx()*4 && len(p.Pix) == p.Stride*p.Rect.Dy() {
		return p
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// applyLUT remaps every sample of img through a 256-entry lookup table.
// The channel count of the input is preserved: *image.Gray stays
// single-channel, everything else becomes a 3-channel *image.NRGBA.
func applyLUT(img image.Image, lut *[256]uint8) image.Image {
	if g, ok := img.(*image.Gray); ok {
		b := g.Bounds()
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

	src := asNRGBA(img)
	out := image.NewNRGBA(src.Rect)
	for i := 0; i < len(src.Pix); i += 4 {
		out.Pix[i] = lut[src.Pix[i]]
		out.Pix[i+1] = lut[src.Pix[i+1]]
		out.Pix[i+2] = lut[src.Pix[i+2]]
		out.Pix[i+3] = 255
	}
	return out
}

// channels reports the channel count of the image model: 1 for *image.Gray,
// 3 for everything else.
func channels(img image.Image) int {
	if _, ok := img.(*image.Gray); ok {
		return 1
	}
	return 3
}
