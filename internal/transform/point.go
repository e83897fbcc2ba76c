package transform

import (
	"fmt"
	"image"
	"math"
)

// AdjustBrightness adds beta to every sample of every channel, saturating
// to [0,255]. beta must lie in [-255,255].
func AdjustBrightness(img image.Image, beta int) (image.Image, error) {
	if beta < -255 || beta > 255 {
		return nil, fmt.Errorf("brightness offset %d outside [-255,255]: %w", beta, ErrInvalidParameter)
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampInt(i + beta)
	}
	return applyLUT(img, &lut), nil
}

// AdjustChannelBrightness adds beta to one color channel only, leaving the
// other channels unchanged. The input is treated as a 3-channel image.
func AdjustChannelBrightness(img image.Image, ch Channel, beta int) (*image.NRGBA, error) {
	if beta < -255 || beta > 255 {
		return nil, fmt.Errorf("brightness offset %d outside [-255,255]: %w", beta, ErrInvalidParameter)
	}
	if ch < ChannelR || ch > ChannelB {
		return nil, fmt.Errorf("unknown channel %d: %w", int(ch), ErrInvalidParameter)
	}

	src := asNRGBA(img)
	out := image.NewNRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	off := int(ch)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+off] = clampInt(int(out.Pix[i+off]) + beta)
		out.Pix[i+3] = 255
	}
	return out, nil
}

// LogContrast applies the logarithmic intensity mapping
//
//	out = clamp(c * ln(1 + in))
//
// which expands dark regions at the expense of bright ones. c must be
// positive; values of c large enough to push the maximum theoretical
// output past 255 simply saturate.
func LogContrast(img image.Image, c float64) (image.Image, error) {
	if !(c > 0) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("log contrast scale %v must be positive and finite: %w", c, ErrInvalidParameter)
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampRound(c * math.Log1p(float64(i)))
	}
	return applyLUT(img, &lut), nil
}

// LogContrastNormalized applies LogContrast with the scale chosen so that
// an input of 255 maps exactly to 255 (c = 255/ln(256)). This reproduces
// the usual "auto-scaled" log transform.
func LogContrastNormalized(img image.Image) image.Image {
	out, err := LogContrast(img, 255/math.Log(256))
	if err != nil {
		// The constant scale is always valid.
		panic(err)
	}
	return out
}

// Gamma applies gamma correction
//
//	out = clamp(255 * (in/255)^gamma)
//
// gamma < 1 brightens the image, gamma > 1 darkens it. gamma must be
// positive and finite.
func Gamma(img image.Image, gamma float64) (image.Image, error) {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("gamma %v must be positive and finite: %w", gamma, ErrInvalidParameter)
	}
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampRound(255 * math.Pow(float64(i)/255, gamma))
	}
	return applyLUT(img, &lut), nil
}
