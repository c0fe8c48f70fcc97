package tile

import "fmt"

// validate runs the checks shared by both tiling strategies, reporting
// the first violated condition. The even-tiling check is separate
// because only the static strategy requires it.
func validate(size, tileSize, overlap Shape) error {
	if err := checkDimensions(size, tileSize, overlap); err != nil {
		return err
	}
	if err := checkTileSize(tileSize); err != nil {
		return err
	}
	if err := checkStride(tileSize, overlap); err != nil {
		return err
	}
	return checkSize(size, tileSize)
}

func checkDimensions(size, tileSize, overlap Shape) error {
	if len(size) != len(tileSize) || len(size) != len(overlap) {
		return fmt.Errorf("%w: got %d, %d, and %d", ErrDimensionMismatch,
			len(size), len(tileSize), len(overlap))
	}
	return nil
}

func checkTileSize(tileSize Shape) error {
	for i, ts := range tileSize {
		if ts <= 0 {
			return fmt.Errorf("%w: dimension %d has tile size %d", ErrNonPositiveTileSize, i, ts)
		}
	}
	return nil
}

func checkStride(tileSize, overlap Shape) error {
	for i, ts := range tileSize {
		if ts <= overlap[i] {
			return fmt.Errorf("%w: dimension %d has tile size %d and overlap %d",
				ErrNonPositiveStride, i, ts, overlap[i])
		}
	}
	return nil
}

func checkSize(size, tileSize Shape) error {
	for i, s := range size {
		if s < tileSize[i] {
			return fmt.Errorf("%w: dimension %d has size %d and tile size %d",
				ErrSizeTooSmall, i, s, tileSize[i])
		}
	}
	return nil
}

func checkEvenTiling(size, tileSize, overlap Shape) error {
	for i, s := range size {
		stride := tileSize[i] - overlap[i]
		if rem := (s - tileSize[i]) % stride; rem != 0 {
			return fmt.Errorf("%w: dimension %d leaves a remainder of %d over a stride of %d",
				ErrUnevenTiling, i, rem, stride)
		}
	}
	return nil
}
