package transform

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestGaussianBlur_Dimensions(t *testing.T) {
	src := patternImage(40, 30)
	out, err := GaussianBlur(src, 2.0)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestGaussianBlur_SolidUnchanged(t *testing.T) {
	src := solidImage(20, 20, color.NRGBA{90, 150, 210, 255})
	out, err := GaussianBlur(src, 3.0)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	got := out.NRGBAAt(10, 10)
	// Allow rounding drift of one step per channel.
	for i, pair := range [][2]uint8{{got.R, 90}, {got.G, 150}, {got.B, 210}} {
		if diff := int(pair[0]) - int(pair[1]); diff < -1 || diff > 1 {
			t.Errorf("channel %d: got %d, want ~%d", i, pair[0], pair[1])
		}
	}
}

func TestGaussianBlur_SmoothsStep(t *testing.T) {
	// Blurring a hard black/white step must produce intermediate values.
	src := patternImage(40, 40)
	out, err := GaussianBlur(src, 4.0)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	mid := out.NRGBAAt(20, 10) // on the red/green boundary
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("boundary pixel should be intermediate, got R=%d", mid.R)
	}
}

func TestGaussianBlur_InvalidRadius(t *testing.T) {
	src := solidImage(8, 8, color.NRGBA{10, 10, 10, 255})
	for _, r := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := GaussianBlur(src, r); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("radius %v: got %v, want ErrInvalidParameter", r, err)
		}
	}
}

func TestSharpen_Dimensions(t *testing.T) {
	src := patternImage(24, 16)
	out := Sharpen(src)
	if out.Bounds().Dx() != 24 || out.Bounds().Dy() != 16 {
		t.Errorf("dimensions: got %dx%d, want 24x16", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestMedian_RemovesSaltNoise(t *testing.T) {
	// A single white pixel in a black field disappears under a median filter.
	src := solidImage(21, 21, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(10, 10, color.NRGBA{255, 255, 255, 255})

	out, err := Median(src, 2)
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if got := out.NRGBAAt(10, 10); got.R != 0 {
		t.Errorf("isolated bright pixel should vanish, got R=%d", got.R)
	}
}

func TestMedian_InvalidRadius(t *testing.T) {
	src := solidImage(8, 8, color.NRGBA{10, 10, 10, 255})
	for _, r := range []float64{-0.5, math.NaN(), math.Inf(-1)} {
		if _, err := Median(src, r); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("radius %v: got %v, want ErrInvalidParameter", r, err)
		}
	}
}
