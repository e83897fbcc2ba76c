package transform

import (
	"image"
	"image/color"
	"testing"
)

// solidImage creates an in-memory image filled with a single color.
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// patternImage creates an image with different colors in each quadrant:
// red top-left, green top-right, blue bottom-left, white bottom-right.
func patternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// coordImage creates an image where each pixel encodes its own position:
// (x%256, y%256, (x+y)%256). Useful for verifying geometric transforms.
func coordImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), uint8(x + y), 255})
		}
	}
	return img
}

// grayRamp creates a single-channel image whose value at (x, y) is x%256.
func grayRamp(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x)})
		}
	}
	return img
}

// sameNRGBA fails the test unless both images have equal bounds and pixels.
func sameNRGBA(t *testing.T, got, want *image.NRGBA) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds: got %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := got.NRGBAAt(x, y)
			w := want.NRGBAAt(x, y)
			if g.R != w.R || g.G != w.G || g.B != w.B {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
					x, y, g.R, g.G, g.B, w.R, w.G, w.B)
			}
		}
	}
}

// sameGray fails the test unless both images have equal bounds and pixels.
func sameGray(t *testing.T, got, want *image.Gray) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds: got %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if g, w := got.GrayAt(x, y).Y, want.GrayAt(x, y).Y; g != w {
				t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, g, w)
			}
		}
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"R", ChannelR, false},
		{"g", ChannelG, false},
		{"B", ChannelB, false},
		{"x", 0, true},
		{"", 0, true},
		{"RG", 0, true},
	}
	for _, tt := range tests {
		ch, err := ParseChannel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseChannel(%q) should fail", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChannel(%q) failed: %v", tt.in, err)
		} else if ch != tt.want {
			t.Errorf("ParseChannel(%q): got %v, want %v", tt.in, ch, tt.want)
		}
	}
}

func TestApplyLUT_PreservesChannelCount(t *testing.T) {
	var identity [256]uint8
	for i := range identity {
		identity[i] = uint8(i)
	}

	if _, ok := applyLUT(grayRamp(10, 10), &identity).(*image.Gray); !ok {
		t.Error("gray input should produce a gray output")
	}
	if _, ok := applyLUT(patternImage(10, 10), &identity).(*image.NRGBA); !ok {
		t.Error("color input should produce an NRGBA output")
	}
}

func TestApplyLUT_DoesNotMutateInput(t *testing.T) {
	src := solidImage(4, 4, color.NRGBA{100, 100, 100, 255})
	var lut [256]uint8 // all zero
	applyLUT(src, &lut)

	if got := src.NRGBAAt(2, 2); got.R != 100 {
		t.Errorf("input mutated: got %d, want 100", got.R)
	}
}
