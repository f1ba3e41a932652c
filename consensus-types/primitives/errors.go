package primitives

import "errors"

var (
	errOverflow  = errors.New("primitives: arithmetic overflow")
	errUnderflow = errors.New("primitives: arithmetic underflow")
)
