package inspect

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/darkroomlab/darkroom/internal/transform"
)

// Plot layout constants, in pixels.
const (
	plotMarginLeft   = 34
	plotMarginRight  = 8
	plotMarginTop    = 10
	plotMarginBottom = 16
	plotMinWidth     = 96
	plotMinHeight    = 64
)

// RenderHistogram draws the three channel series of h as polylines into a
// new image of the given size: red, green and blue lines over a white
// background with intensity ticks on the X axis and the peak count on the
// Y axis. The result is an ordinary image, so it can be saved or displayed
// like any transform output.
func RenderHistogram(h *transform.Histogram, width, height int) (*image.NRGBA, error) {
	if width < plotMinWidth || height < plotMinHeight {
		return nil, fmt.Errorf("plot size %dx%d below minimum %dx%d: %w",
			width, height, plotMinWidth, plotMinHeight, transform.ErrInvalidParameter)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Rect, image.NewUniform(color.NRGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	x0 := plotMarginLeft
	y0 := plotMarginTop
	x1 := width - plotMarginRight - 1
	y1 := height - plotMarginBottom - 1
	plotW := x1 - x0
	plotH := y1 - y0

	axis := color.NRGBA{64, 64, 64, 255}
	grid := color.NRGBA{220, 220, 220, 255}

	// Vertical gridlines and tick labels at quarter intensities.
	for _, tick := range []int{0, 64, 128, 192, 255} {
		x := x0 + tick*plotW/255
		for y := y0; y <= y1; y++ {
			img.SetNRGBA(x, y, grid)
		}
		label := strconv.Itoa(tick)
		drawLabel(img, x-2*len(label), y1+4, label, axis)
	}

	// Axis frame.
	for x := x0; x <= x1; x++ {
		img.SetNRGBA(x, y1, axis)
	}
	for y := y0; y <= y1; y++ {
		img.SetNRGBA(x0, y, axis)
	}

	max := h.Max()
	drawLabel(img, 2, y0, strconv.Itoa(max), axis)
	drawLabel(img, 2, y1-5, "0", axis)
	if max == 0 {
		return img, nil
	}

	series := []struct {
		counts *[256]int
		col    color.NRGBA
	}{
		{&h.R, color.NRGBA{220, 40, 40, 255}},
		{&h.G, color.NRGBA{40, 160, 40, 255}},
		{&h.B, color.NRGBA{40, 40, 220, 255}},
	}
	for _, s := range series {
		px, py := -1, -1
		for i := 0; i < 256; i++ {
			x := x0 + i*plotW/255
			y := y1 - s.counts[i]*plotH/max
			if px >= 0 {
				drawSegment(img, px, py, x, y, s.col)
			}
			px, py = x, y
		}
	}
	return img, nil
}

// drawSegment draws a straight line between two points by stepping along
// the longer axis.
func drawSegment(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	dx := x1 - x0
	dy := y1 - y0
	steps := dx
	if steps < 0 {
		steps = -steps
	}
	if dy > steps {
		steps = dy
	}
	if -dy > steps {
		steps = -dy
	}
	if steps == 0 {
		img.SetNRGBA(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		img.SetNRGBA(x, y, c)
	}
}

// glyphs is a 3x5 pixel font covering the characters the plot labels need.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawLabel renders text at (x, y) using the 3x5 glyph font. Characters
// without a glyph advance the cursor and draw nothing. Pixels outside the
// image are skipped.
func drawLabel(img *image.NRGBA, x, y int, text string, c color.NRGBA) {
	b := img.Bounds()
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if ok {
			for row, line := range glyph {
				for col, bit := range line {
					if bit != '1' {
						continue
					}
					px, py := cx+col, y+row
					if px >= b.Min.X && px < b.Max.X && py >= b.Min.Y && py < b.Max.Y {
						img.SetNRGBA(px, py, c)
					}
				}
			}
		}
		cx += 4
	}
}
