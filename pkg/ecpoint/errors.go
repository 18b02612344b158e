package ecpoint

import (
	"errors"
	"fmt"
)

// ErrUnknownCurveName indicates a curve name or codepoint that is not in the
// registry table.
var ErrUnknownCurveName = errors.New("unknown curve name")

// ErrUnsupportedCurve indicates a curve that is known but not enabled by the
// registry configuration, or a curve identity outside the table.
var ErrUnsupportedCurve = errors.New("unsupported curve")

// ErrMalformedEncoding indicates a point encoding whose format byte is not
// 0x04 or that carries bytes past the y coordinate.
var ErrMalformedEncoding = errors.New("malformed point encoding")

// ErrTruncatedInput indicates fewer bytes than the encoding requires.
var ErrTruncatedInput = errors.New("truncated point encoding")

// ErrEncodingOverflow indicates a coordinate that does not fit in the curve's
// field-element width.
var ErrEncodingOverflow = errors.New("coordinate overflows field width")

// disabledCurveError is returned when a known extended curve is looked up
// while extended support is off. It matches both ErrUnsupportedCurve and
// ErrUnknownCurveName so callers checking either keep working.
func disabledCurveError(name string) error {
	return fmt.Errorf("%w: %s requires extended curve support: %w", ErrUnsupportedCurve, name, ErrUnknownCurveName)
}
