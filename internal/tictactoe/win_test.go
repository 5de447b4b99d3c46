package tictactoe

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinMasks(t *testing.T) {
	t.Run("Counts and line lengths", func(t *testing.T) {
		for size := 1; size <= 6; size++ {
			t.Run(fmt.Sprintf("size %d", size), func(t *testing.T) {
				// When: collecting every mask
				masks := slices.Collect(WinMasks(size))

				// Then: there are 2N+2 masks of N*N cells with N selected each
				require.Len(t, masks, 2*size+2)
				for _, mask := range masks {
					assert.Len(t, mask, size*size)

					selected := 0
					for _, cell := range mask {
						if cell {
							selected++
						}
					}
					assert.Equal(t, size, selected)
				}
			})
		}
	})

	t.Run("Masks are distinct lines", func(t *testing.T) {
		seen := make(map[string]bool)
		for mask := range WinMasks(4) {
			key := fmt.Sprint(mask)
			assert.False(t, seen[key], "duplicate mask %v", mask)
			seen[key] = true
		}
	})

	t.Run("Emission order", func(t *testing.T) {
		masks := slices.Collect(WinMasks(3))

		// rows and columns interleave, diagonals come last
		assert.Equal(t, []bool{true, true, true, false, false, false, false, false, false}, masks[0])
		assert.Equal(t, []bool{true, false, false, true, false, false, true, false, false}, masks[1])
		assert.Equal(t, []bool{false, false, false, true, true, true, false, false, false}, masks[2])
		assert.Equal(t, []bool{false, false, true, false, false, true, false, false, true}, masks[5])
		assert.Equal(t, []bool{true, false, false, false, true, false, false, false, true}, masks[6])
		assert.Equal(t, []bool{false, false, true, false, true, false, true, false, false}, masks[7])
	})

	t.Run("Sequence is restartable", func(t *testing.T) {
		seq := WinMasks(3)

		first := slices.Collect(seq)
		first[0][0] = false
		second := slices.Collect(seq)

		// a fresh pass yields fresh masks
		assert.True(t, second[0][0])
		assert.Len(t, second, 8)
	})

	t.Run("Stops when the consumer breaks", func(t *testing.T) {
		count := 0
		for range WinMasks(3) {
			count++
			if count == 2 {
				break
			}
		}

		assert.Equal(t, 2, count)
	})
}
