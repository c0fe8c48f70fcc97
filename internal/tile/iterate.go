package tile

import "iter"

// indices enumerates every tile index tuple in row-major order: the
// Cartesian product [0, count[0]) x ... x [0, count[N-1]) with the
// last dimension varying fastest, matching nested loops with dimension
// 0 outermost. The sequence is finite, restartable, and yields nothing
// if any count is zero.
//
// The yielded shape is a single reused buffer; callers must clone it
// if they retain it past the iteration step.
func indices(count Shape) iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		total := count.NumTiles()
		idx := make(Shape, len(count))
		for range total {
			if !yield(idx) {
				return
			}
			// Advance the odometer: increment the last position and
			// carry into earlier positions on overflow.
			for d := len(idx) - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < count[d] {
					break
				}
				idx[d] = 0
			}
		}
	}
}
