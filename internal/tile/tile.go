package tile

import "iter"

// Range is a half-open [Start, End) interval along one dimension, in
// slice coordinates.
type Range struct {
	Start int
	End   int
}

// Len returns the extent of the range: End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Tile holds one Range per array dimension and describes a contiguous,
// axis-aligned sub-region of an N-dimensional array.
type Tile []Range

// Tiles returns the coordinates for tiling an array of the given size
// with the static strategy: every tile starts at an exact multiple of
// the stride, so the size must divide evenly. The final tile along
// each dimension ends exactly at the array edge; no tile ever extends
// past it.
//
// The returned sequence is lazy, finite, and restartable, and may be
// abandoned mid-iteration. All validation errors, including
// ErrUnevenTiling, are returned here before any coordinate is
// produced.
func Tiles(size, tileSize, overlap Shape) (iter.Seq[Tile], error) {
	if err := validate(size, tileSize, overlap); err != nil {
		return nil, err
	}
	if err := checkEvenTiling(size, tileSize, overlap); err != nil {
		return nil, err
	}

	stride := Stride(tileSize, overlap)
	count := TileCount(size, tileSize, overlap)
	return func(yield func(Tile) bool) {
		for idx := range indices(count) {
			t := make(Tile, len(idx))
			for i, n := range idx {
				start := n * stride[i]
				t[i] = Range{Start: start, End: start + tileSize[i]}
			}
			if !yield(t) {
				return
			}
		}
	}, nil
}

// DynamicTiles returns the coordinates for tiling an array of the
// given size with the dynamic strategy: tiles start at multiples of
// the stride, but any tile that would extend past the array edge is
// pulled backward to end exactly at it. The size therefore does not
// need to divide evenly; the cost is that the overlap between the last
// two tiles along a clamped dimension may exceed the nominal overlap.
//
// The returned sequence is lazy, finite, and restartable, and may be
// abandoned mid-iteration. Validation errors are returned here before
// any coordinate is produced; ErrUnevenTiling is never raised.
func DynamicTiles(size, tileSize, overlap Shape) (iter.Seq[Tile], error) {
	if err := validate(size, tileSize, overlap); err != nil {
		return nil, err
	}

	stride := Stride(tileSize, overlap)
	count := TileCount(size, tileSize, overlap)
	return func(yield func(Tile) bool) {
		for idx := range indices(count) {
			t := make(Tile, len(idx))
			for i, n := range idx {
				start := n * stride[i]
				if start+tileSize[i] > size[i] {
					start = size[i] - tileSize[i]
				}
				t[i] = Range{Start: start, End: start + tileSize[i]}
			}
			if !yield(t) {
				return
			}
		}
	}, nil
}
