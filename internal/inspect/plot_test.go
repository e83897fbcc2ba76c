package inspect

import (
	"errors"
	"image/color"
	"testing"

	"github.com/darkroomlab/darkroom/internal/transform"
)

func TestRenderHistogram_Dimensions(t *testing.T) {
	var h transform.Histogram
	h.R[100] = 50

	img, err := RenderHistogram(&h, 512, 256)
	if err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 256 {
		t.Errorf("dimensions: got %v, want 512x256", img.Bounds())
	}
}

func TestRenderHistogram_WhiteBackground(t *testing.T) {
	var h transform.Histogram
	img, err := RenderHistogram(&h, 200, 100)
	if err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}
	// A corner inside the top margin stays background.
	if got := img.NRGBAAt(199, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel: got %v, want white", got)
	}
}

func TestRenderHistogram_TooSmall(t *testing.T) {
	var h transform.Histogram
	for _, size := range [][2]int{{95, 100}, {100, 63}, {0, 0}} {
		_, err := RenderHistogram(&h, size[0], size[1])
		if !errors.Is(err, transform.ErrInvalidParameter) {
			t.Errorf("size %dx%d: got %v, want ErrInvalidParameter", size[0], size[1], err)
		}
	}
}

func TestRenderHistogram_DrawsRedSeries(t *testing.T) {
	// Only the red channel has counts; its series must appear at the top of
	// the plot area while the empty green and blue series hug the baseline.
	var h transform.Histogram
	for i := range h.R {
		h.R[i] = 10
	}

	img, err := RenderHistogram(&h, 256, 128)
	if err != nil {
		t.Fatalf("RenderHistogram failed: %v", err)
	}

	red := color.NRGBA{220, 40, 40, 255}
	green := color.NRGBA{40, 160, 40, 255}
	blue := color.NRGBA{40, 40, 220, 255}
	baseline := 128 - plotMarginBottom - 1
	foundRed := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch img.NRGBAAt(x, y) {
			case red:
				foundRed = true
				if y >= baseline {
					t.Fatalf("red series at (%d,%d) should sit above the baseline", x, y)
				}
			case green, blue:
				if y != baseline {
					t.Fatalf("empty series drawn off the baseline at (%d,%d)", x, y)
				}
			}
		}
	}
	if !foundRed {
		t.Error("red series not drawn")
	}
}
