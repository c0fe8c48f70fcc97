// Copyright 2025 The ndtiler Authors. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

package ndtiler

import (
	"iter"

	"github.com/ryanirl/ndtiler/internal/tile"
)

// Type aliases for the public API.

// Shape holds one integer per array dimension. The same representation
// is used for array sizes, tile sizes, overlaps, strides, tile counts,
// and overflow amounts; the dimensionality N is implicit in the length.
type Shape = tile.Shape

// Range is a half-open [Start, End) interval along one dimension, in
// slice coordinates.
type Range = tile.Range

// Tile holds one Range per array dimension and describes a contiguous,
// axis-aligned sub-region of an N-dimensional array.
type Tile = tile.Tile

// Validation errors. All are deterministic caller-input failures,
// reported before any coordinate is produced.
var (
	ErrDimensionMismatch   = tile.ErrDimensionMismatch
	ErrNonPositiveTileSize = tile.ErrNonPositiveTileSize
	ErrNonPositiveStride   = tile.ErrNonPositiveStride
	ErrSizeTooSmall        = tile.ErrSizeTooSmall
	ErrUnevenTiling        = tile.ErrUnevenTiling
)

// Tiles generates the coordinates for tiling an N-dimensional array
// with the static strategy, which requires the size to divide evenly
// into tiles given the tile size and overlap. When it does not, Tiles
// returns ErrUnevenTiling; compute Overflow and pad the array first,
// or use DynamicTiles.
//
// Example:
//
//	tiles, err := ndtiler.Tiles(ndtiler.Shape{256, 256}, ndtiler.Shape{32, 32}, ndtiler.Shape{4, 4})
//	if err != nil {
//	    return err
//	}
//	for t := range tiles {
//	    process(data[t[0].Start:t[0].End][t[1].Start:t[1].End])
//	}
func Tiles(size, tileSize, overlap Shape) (iter.Seq[Tile], error) {
	return tile.Tiles(size, tileSize, overlap)
}

// DynamicTiles generates the coordinates for tiling an N-dimensional
// array with the dynamic strategy: the last tile along each dimension
// is pulled backward to end exactly at the array edge, so uneven sizes
// are tolerated without padding. The overlap between the last two
// tiles along a clamped dimension may exceed the nominal overlap.
//
// Example:
//
//	tiles, err := ndtiler.DynamicTiles(ndtiler.Shape{256, 256}, ndtiler.Shape{32, 32}, ndtiler.Shape{10, 10})
//	if err != nil {
//	    return err
//	}
//	for t := range tiles {
//	    // The final tile per dimension is clamped to (224, 256).
//	}
func DynamicTiles(size, tileSize, overlap Shape) (iter.Seq[Tile], error) {
	return tile.DynamicTiles(size, tileSize, overlap)
}

// Stride returns the distance between the starts of adjacent tiles
// along each dimension: tileSize minus overlap, elementwise.
func Stride(tileSize, overlap Shape) Shape {
	return tile.Stride(tileSize, overlap)
}

// OverlapFromStride recovers the overlap from a tile size and stride,
// elementwise. It is the inverse of Stride.
func OverlapFromStride(tileSize, stride Shape) Shape {
	return tile.OverlapFromStride(tileSize, stride)
}

// TileCount returns the number of tile positions needed along each
// dimension so the final tile reaches or passes the far edge of the
// array. The product of its entries is the total number of tiles a
// generator yields.
func TileCount(size, tileSize, overlap Shape) Shape {
	return tile.TileCount(size, tileSize, overlap)
}

// Overflow returns how much the size must grow along each dimension,
// through padding for example, so that the static strategy divides it
// with no remainder.
//
// Example:
//
//	overflow, err := ndtiler.Overflow(ndtiler.Shape{256, 256}, ndtiler.Shape{32, 32}, ndtiler.Shape{10, 10})
//	// overflow == Shape{18, 18}; a 274x274 array tiles evenly.
func Overflow(size, tileSize, overlap Shape) (Shape, error) {
	return tile.Overflow(size, tileSize, overlap)
}
