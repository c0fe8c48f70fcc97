package tile

// Stride returns the distance between the starts of adjacent tiles
// along each dimension: tileSize minus overlap, elementwise. Both
// arguments must have the same length.
func Stride(tileSize, overlap Shape) Shape {
	stride := make(Shape, len(tileSize))
	for i, ts := range tileSize {
		stride[i] = ts - overlap[i]
	}
	return stride
}

// OverlapFromStride is the inverse of Stride: it recovers the overlap
// from a tile size and stride, elementwise. Both arguments must have
// the same length.
func OverlapFromStride(tileSize, stride Shape) Shape {
	overlap := make(Shape, len(tileSize))
	for i, ts := range tileSize {
		overlap[i] = ts - stride[i]
	}
	return overlap
}

// TileCount returns the number of tile positions needed along each
// dimension so the final tile reaches or passes the far edge of the
// array: ceil(1 + (size - tileSize) / stride), elementwise. The stride
// must be positive and the size at least the tile size; the generators
// validate both before calling.
func TileCount(size, tileSize, overlap Shape) Shape {
	count := make(Shape, len(size))
	for i, s := range size {
		stride := tileSize[i] - overlap[i]
		count[i] = 1 + ceilDiv(s-tileSize[i], stride)
	}
	return count
}

// Overflow returns how much the size must grow along each dimension,
// through padding for example, so that the static strategy divides it
// with no remainder: (size + overflow - tileSize) mod stride == 0 and
// size + overflow >= tileSize. Only the tile-size and positive-stride
// conditions are validated, since Overflow exists precisely to compute
// the correction for a too-small or unevenly-divisible size.
func Overflow(size, tileSize, overlap Shape) (Shape, error) {
	if err := checkDimensions(size, tileSize, overlap); err != nil {
		return nil, err
	}
	if err := checkTileSize(tileSize); err != nil {
		return nil, err
	}
	if err := checkStride(tileSize, overlap); err != nil {
		return nil, err
	}

	overflow := make(Shape, len(size))
	for i, s := range size {
		ts := tileSize[i]
		stride := ts - overlap[i]
		overflow[i] = (ts - s) + stride*ceilDiv(max(s-ts, 0), stride)
	}
	return overflow, nil
}

// ceilDiv returns ceil(a / b) for a >= 0 and b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
