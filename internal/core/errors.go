package core

import "errors"

// ErrNonRectangularBuffer is returned when adopting rows of differing lengths.
var ErrNonRectangularBuffer = errors.New("core: non-rectangular buffer")
