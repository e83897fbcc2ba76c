package transform

import (
	"fmt"
	"image"
	"math"
)

// DetectEdges performs Canny edge detection and returns a single-channel
// image with edges at 255 and everything else at 0.
//
// Pipeline: grayscale (BT.601) -> 5x5 Gaussian smoothing -> Sobel
// gradients -> non-maximum suppression -> hysteresis thresholding.
// Gradient magnitudes below low are discarded, magnitudes above high are
// strong edges, and values in between survive only when connected to a
// strong edge. Both thresholds are on the [0,255] scale and must satisfy
// 0 <= low <= high <= 255.
func DetectEdges(img image.Image, low, high int) (*image.Gray, error) {
	if low < 0 || high > 255 || low > high {
		return nil, fmt.Errorf("edge thresholds (%d,%d) must satisfy 0 <= low <= high <= 255: %w",
			low, high, ErrInvalidParameter)
	}

	gray := Grayscale(img)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()

	lum := make([]float64, w*h)
	for i, v := range gray.Pix {
		lum[i] = float64(v) / 255
	}
	smoothed := gauss5x5(lum, w, h)

	// Sobel gradients with replicated borders.
	mag := make([]float64, w*h)
	dir := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				py := clampIndex(y+ky, h)
				for kx := -1; kx <= 1; kx++ {
					px := clampIndex(x+kx, w)
					v := smoothed[py*w+px]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag[y*w+x] = math.Hypot(gx, gy)
			dir[y*w+x] = math.Atan2(gy, gx)
		}
	}

	// Non-maximum suppression: keep only local maxima along the gradient
	// direction, thinning edges to single-pixel width.
	thin := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			a := dir[i]
			var n1, n2 float64
			switch {
			case (a >= -math.Pi/8 && a < math.Pi/8) || a >= 7*math.Pi/8 || a < -7*math.Pi/8:
				n1, n2 = mag[i-1], mag[i+1]
			case (a >= math.Pi/8 && a < 3*math.Pi/8) || (a >= -7*math.Pi/8 && a < -5*math.Pi/8):
				n1, n2 = mag[i-w+1], mag[i+w-1]
			case (a >= 3*math.Pi/8 && a < 5*math.Pi/8) || (a >= -5*math.Pi/8 && a < -3*math.Pi/8):
				n1, n2 = mag[i-w], mag[i+w]
			default:
				n1, n2 = mag[i-w-1], mag[i+w+1]
			}
			if mag[i] >= n1 && mag[i] >= n2 {
				thin[i] = mag[i]
			}
		}
	}

	lo := float64(low) / 255
	hi := float64(high) / 255
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := thin[y*w+x]
			if v >= hi {
				out.Pix[y*w+x] = 255
				continue
			}
			if v < lo {
				continue
			}
			// Weak edge: keep only when an 8-neighbor is strong.
			for ky := -1; ky <= 1; ky++ {
				py := clampIndex(y+ky, h)
				for kx := -1; kx <= 1; kx++ {
					px := clampIndex(x+kx, w)
					if thin[py*w+px] >= hi {
						out.Pix[y*w+x] = 255
					}
				}
			}
		}
	}
	return out, nil
}

var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// gauss5x5 smooths a luminance plane with the standard 5x5 Gaussian kernel
// (sigma ~ 1.4, sum 273). Borders replicate edge values.
func gauss5x5(src []float64, w, h int) []float64 {
	kernel := [5][5]float64{
		{1, 4, 7, 4, 1},
		{4, 16, 26, 16, 4},
		{7, 26, 41, 26, 7},
		{4, 16, 26, 16, 4},
		{1, 4, 7, 4, 1},
	}
	const kernelSum = 273.0

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for ky := -2; ky <= 2; ky++ {
				py := clampIndex(y+ky, h)
				for kx := -2; kx <= 2; kx++ {
					px := clampIndex(x+kx, w)
					sum += src[py*w+px] * kernel[ky+2][kx+2]
				}
			}
			out[y*w+x] = sum / kernelSum
		}
	}
	return out
}
