package inspect

import (
	"fmt"
	"image"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/darkroomlab/darkroom/internal/transform"
)

// RGB holds 8-bit color components.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds a color in hue/saturation/lightness space: H in degrees
// (0-360), S and L in percent (0-100).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorSample is the color at one pixel in several representations.
type ColorSample struct {
	Hex string `json:"hex"` // "#RRGGBB"
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// SampleColor returns the color at pixel (x, y). Coordinates are 0-based
// from the top-left corner; out-of-bounds coordinates fail.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	r, g, b16, _ := img.At(x, y).RGBA()
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b16>>8)

	hue, sat, lum := colorful.Color{
		R: float64(r8) / 255,
		G: float64(g8) / 255,
		B: float64(b8) / 255,
	}.Hsl()

	return &ColorSample{
		Hex: fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB: RGB{R: r8, G: g8, B: b8},
		HSL: HSL{
			H: int(math.Round(hue)) % 360,
			S: int(math.Round(sat * 100)),
			L: int(math.Round(lum * 100)),
		},
	}, nil
}

// ColorFrequency is a quantized color and how often it occurs.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	RGB        RGB     `json:"rgb"`
	Percentage float64 `json:"percentage"` // 0-100
}

// DominantColors returns the count most frequent colors of img, most
// common first. Components are quantized to multiples of 16 so near-equal
// colors group together. When region is non-nil only that rectangle is
// analyzed.
func DominantColors(img image.Image, count int, region *transform.Region) ([]ColorFrequency, error) {
	if count < 1 {
		return nil, fmt.Errorf("color count %d must be at least 1: %w", count, transform.ErrInvalidParameter)
	}
	b := img.Bounds()
	if region != nil {
		w, h := b.Dx(), b.Dy()
		if region.X1 < 0 || region.Y1 < 0 || region.X2 > w || region.Y2 > h ||
			region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("analysis region (%d,%d)-(%d,%d) invalid for %dx%d image: %w",
				region.X1, region.Y1, region.X2, region.Y2, w, h, transform.ErrInvalidRegion)
		}
		b = image.Rect(b.Min.X+region.X1, b.Min.Y+region.Y1, b.Min.X+region.X2, b.Min.Y+region.Y2)
	}

	counts := make(map[RGB]int)
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			q := RGB{
				R: uint8(r>>8) &^ 0x0F,
				G: uint8(g>>8) &^ 0x0F,
				B: uint8(bl>>8) &^ 0x0F,
			}
			counts[q]++
			total++
		}
	}

	out := make([]ColorFrequency, 0, len(counts))
	for q, n := range counts {
		out = append(out, ColorFrequency{
			Hex:        fmt.Sprintf("#%02X%02X%02X", q.R, q.G, q.B),
			RGB:        q,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Percentage != out[j].Percentage {
			return out[i].Percentage > out[j].Percentage
		}
		return out[i].Hex < out[j].Hex
	})
	if len(out) > count {
		out = out[:count]
	}
	return out, nil
}
