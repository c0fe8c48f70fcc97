// Package tile computes half-open coordinate ranges for partitioning an
// N-dimensional array into rectangular tiles. It never touches array
// data; callers slice their own representation with the ranges it
// yields.
package tile

// Shape holds one non-negative integer per array dimension. The same
// representation is used for array sizes, tile sizes, overlaps,
// strides, tile counts, and overflow amounts; the dimensionality N is
// implicit in the length.
type Shape []int

// NumTiles returns the product of all entries. For a tile-count shape
// this is the total number of tiles a generator yields.
func (s Shape) NumTiles() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}
