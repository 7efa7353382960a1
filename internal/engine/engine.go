package engine

import (
	"math/rand"
	"time"
)

const (
	// BoardSize is the number of cells on a board (5x5 grid).
	BoardSize = 25
	// LinesToWin is how many completed lines end the game.
	LinesToWin = 5
)

// winningLines holds the 12 position combinations that count as a line:
// 5 rows, 5 columns and 2 diagonals over positions 0..24.
var winningLines = [12][5]int{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// GenerateBoard returns a fresh board: a uniform random permutation of the
// numbers 1..25, position-indexed 0..24.
func GenerateBoard() []int {
	board := make([]int, BoardSize)
	for i := range board {
		board[i] = i + 1
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	r.Shuffle(len(board), func(i, j int) {
		board[i], board[j] = board[j], board[i]
	})
	return board
}

// BingoResult reports which winning lines a board currently satisfies.
type BingoResult struct {
	HasBingo       bool  `json:"hasBingo"`
	CompletedLines []int `json:"completedLines"`
	TotalLines     int   `json:"totalLines"`
}

// CheckForBingo tests every winning line against the set of called numbers.
// marked holds numbers, not positions; the number->position lookup happens
// here against the given board. Numbers absent from the board simply never
// match a line.
func CheckForBingo(marked map[int]bool, board []int) BingoResult {
	positions := make(map[int]bool, len(marked))
	for pos, num := range board {
		if marked[num] {
			positions[pos] = true
		}
	}

	var res BingoResult
	for i, line := range winningLines {
		complete := true
		for _, pos := range line {
			if !positions[pos] {
				complete = false
				break
			}
		}
		if complete {
			res.CompletedLines = append(res.CompletedLines, i)
			res.TotalLines++
		}
	}
	res.HasBingo = res.TotalLines > 0
	return res
}

// HasWon reports whether the marked numbers complete enough lines to win.
func HasWon(marked map[int]bool, board []int) bool {
	return CheckForBingo(marked, board).TotalLines >= LinesToWin
}
