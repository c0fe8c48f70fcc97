// Copyright 2025 The ndtiler Authors. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.

// Package ndtiler computes coordinate ranges for tiling N-dimensional
// arrays into overlapping or exactly tiled rectangular sub-regions.
//
// # Overview
//
// ndtiler is a pure geometry layer: it never reads or writes array
// contents, only produces integer [start, end) ranges per dimension.
// Callers use the ranges to slice their own array representation.
// Two tiling strategies are supported:
//
//   - Static (Tiles): tiles start at exact multiples of the stride.
//     The array size must divide evenly; otherwise ErrUnevenTiling is
//     returned and the caller should pad the array by the amount
//     Overflow reports, or switch strategies.
//   - Dynamic (DynamicTiles): the last tile along each dimension is
//     clamped to end exactly at the array edge, tolerating uneven
//     sizes at the cost of a larger final overlap.
//
// # Basic Usage
//
//	size := ndtiler.Shape{512, 512}
//	tileSize := ndtiler.Shape{128, 128}
//	overlap := ndtiler.Shape{32, 32}
//
//	tiles, err := ndtiler.Tiles(size, tileSize, overlap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for t := range tiles {
//	    // t[0] is the range along dimension 0, t[1] along dimension 1.
//	    _ = data[t[0].Start:t[0].End] // slice and process
//	}
//
// # Padding Workflow
//
// Not every (size, tile size, overlap) combination tiles evenly. For
// the static strategy, compute the needed correction up front:
//
//	overflow, err := ndtiler.Overflow(size, tileSize, overlap)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Pad the array by overflow[i] along dimension i, then:
//	padded := make(ndtiler.Shape, len(size))
//	for i := range size {
//	    padded[i] = size[i] + overflow[i]
//	}
//	tiles, _ := ndtiler.Tiles(padded, tileSize, overlap)
//
// # Concurrency
//
// The package is stateless and side-effect free. Every function may be
// called from any number of goroutines simultaneously, and the
// returned sequences are independent and restartable.
package ndtiler
