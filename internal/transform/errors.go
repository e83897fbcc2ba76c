package transform

import "errors"

// Sentinel error kinds. Transforms wrap these with context via fmt.Errorf
// and %w, so callers should test with errors.Is.
var (
	// ErrInvalidParameter reports an out-of-range scalar parameter such as
	// gamma, a blend weight, or a binarization threshold.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidRegion reports a degenerate or out-of-bounds crop rectangle.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrShapeMismatch reports fusion inputs whose dimensions or channel
	// counts differ.
	ErrShapeMismatch = errors.New("shape mismatch")
)
