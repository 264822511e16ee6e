package volume

import "errors"

// ErrInputShape indicates non-positive extents or a buffer length that does
// not match nx*ny*nz.
var ErrInputShape = errors.New("volume: invalid extents or buffer length")
