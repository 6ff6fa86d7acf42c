package history

import "errors"

var (
	ErrNoSamples        = errors.New("product has no dated price samples")
	ErrOffsetOutOfRange = errors.New("month offset is outside the price history")
)
