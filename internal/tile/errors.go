package tile

import "errors"

// Validation errors. All are deterministic caller-input failures,
// reported before any coordinate is produced. Callers recover by
// adjusting parameters: commonly by computing Overflow and padding, or
// by switching to the dynamic strategy.
var (
	ErrDimensionMismatch   = errors.New("size, tile size, and overlap must have the same number of dimensions")
	ErrNonPositiveTileSize = errors.New("tile size must be greater than zero")
	ErrNonPositiveStride   = errors.New("overlap must be less than the tile size so the stride is positive")
	ErrSizeTooSmall        = errors.New("size must be greater than or equal to the tile size")
	ErrUnevenTiling        = errors.New("size cannot be evenly tiled with the given tile size and overlap")
)
