package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoardIsPermutation(t *testing.T) {
	for i := 0; i < 100; i++ {
		board := GenerateBoard()
		require.Len(t, board, BoardSize)

		seen := make(map[int]bool, BoardSize)
		for _, n := range board {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, BoardSize)
			assert.False(t, seen[n], "duplicate number %d", n)
			seen[n] = true
		}
		assert.Len(t, seen, BoardSize)
	}
}

func TestGenerateBoardIndependentCalls(t *testing.T) {
	// Permutations are independent; 100 identical boards in a row would
	// mean the source is broken.
	first := GenerateBoard()
	same := true
	for i := 0; i < 100 && same; i++ {
		next := GenerateBoard()
		for j := range next {
			if next[j] != first[j] {
				same = false
				break
			}
		}
	}
	assert.False(t, same)
}

func TestCheckForBingoEmptyMarked(t *testing.T) {
	board := GenerateBoard()
	res := CheckForBingo(map[int]bool{}, board)
	assert.False(t, res.HasBingo)
	assert.Zero(t, res.TotalLines)
	assert.Empty(t, res.CompletedLines)
}

func TestCheckForBingoFullyMarked(t *testing.T) {
	board := GenerateBoard()
	marked := make(map[int]bool)
	for n := 1; n <= BoardSize; n++ {
		marked[n] = true
	}
	res := CheckForBingo(marked, board)
	assert.True(t, res.HasBingo)
	assert.Equal(t, 12, res.TotalLines)
	assert.Len(t, res.CompletedLines, 12)
}

// identityBoard places number n at position n-1, so row r holds the
// numbers 5r+1..5r+5.
func identityBoard() []int {
	board := make([]int, BoardSize)
	for i := range board {
		board[i] = i + 1
	}
	return board
}

func TestCheckForBingoSingleRow(t *testing.T) {
	board := identityBoard()
	marked := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}

	res := CheckForBingo(marked, board)
	assert.True(t, res.HasBingo)
	assert.Equal(t, 1, res.TotalLines)
	assert.Equal(t, []int{0}, res.CompletedLines)
}

func TestCheckForBingoIgnoresNumbersOffBoard(t *testing.T) {
	board := identityBoard()
	marked := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 99: true}

	res := CheckForBingo(marked, board)
	assert.Equal(t, 1, res.TotalLines)
}

func TestHasWon(t *testing.T) {
	board := identityBoard()

	// Rows 0..3 complete: four lines, not yet a win.
	marked := make(map[int]bool)
	for n := 1; n <= 20; n++ {
		marked[n] = true
	}
	assert.False(t, HasWon(marked, board))

	// 21 completes column 0 (numbers 1, 6, 11, 16, 21): fifth line.
	marked[21] = true
	assert.True(t, HasWon(marked, board))
}
