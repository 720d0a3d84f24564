package puz

import "errors"

var (
	ErrTruncatedFile          = errors.New("puz: truncated file")
	ErrInvalidDimensions      = errors.New("puz: invalid dimensions")
	ErrMalformedStringSection = errors.New("puz: malformed string section")
	ErrEncoding               = errors.New("puz: invalid encoding")
)
