package tictactoe

import "iter"

// WinMasks - yields every winning line of a size x size board as a row-major mask.
// Row i and column i are emitted in turn, followed by the main diagonal and the anti-diagonal,
// 2*size+2 masks in total. Each mask is freshly allocated, so callers may keep or modify it.
func WinMasks(size int) iter.Seq[[]bool] {
	return func(yield func([]bool) bool) {
		for i := range size {
			if !yield(lineMask(size, func(row, _ int) bool { return row == i })) {
				return
			}
			if !yield(lineMask(size, func(_, col int) bool { return col == i })) {
				return
			}
		}

		if !yield(lineMask(size, func(row, col int) bool { return row == col })) {
			return
		}
		yield(lineMask(size, func(row, col int) bool { return row == size-col-1 }))
	}
}

func lineMask(size int, selected func(row, col int) bool) []bool {
	mask := make([]bool, size*size)
	for row := range size {
		for col := range size {
			mask[row*size+col] = selected(row, col)
		}
	}

	return mask
}
