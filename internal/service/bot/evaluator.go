package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

const (
	// Window scores, checked from top to bottom; only the first match counts
	SCORE_FOUR       = 100 // four of our own
	SCORE_THREE      = 5   // three of ours and one empty cell
	SCORE_TWO        = 2   // two of ours and two empty cells
	SCORE_BLOCK_NEED = -4  // opponent has three and one empty cell

	// Added to the number of own discs in the middle column
	CENTER_BONUS = 6
)

// Window is a run of four cells in one orientation.
type Window [domain.ToWin]domain.Piece

type cell struct {
	row, col int
}

// every 4-cell window of the board: horizontal, vertical, then both diagonals
var windows = buildWindows()

func buildWindows() [][domain.ToWin]cell {
	var out [][domain.ToWin]cell
	add := func(r, c, dr, dc int) {
		var w [domain.ToWin]cell
		for i := 0; i < domain.ToWin; i++ {
			w[i] = cell{r + dr*i, c + dc*i}
		}
		out = append(out, w)
	}

	for r := 0; r < domain.Rows; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			add(r, c, 0, 1)
		}
	}
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r <= domain.Rows-domain.ToWin; r++ {
			add(r, c, 1, 0)
		}
	}
	for r := 0; r <= domain.Rows-domain.ToWin; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			add(r, c, 1, 1)
		}
	}
	for r := 0; r <= domain.Rows-domain.ToWin; r++ {
		for c := 0; c <= domain.Columns-domain.ToWin; c++ {
			add(r+domain.ToWin-1, c, -1, 1)
		}
	}
	return out
}

// Windows returns every window currently on the board, in scan order.
func Windows(board *domain.Board) []Window {
	out := make([]Window, len(windows))
	for i, w := range windows {
		for j, p := range w {
			out[i][j] = board[p.row][p.col]
		}
	}
	return out
}

// EvaluateWindow scores one window from the point of view of piece.
func EvaluateWindow(window Window, piece domain.Piece) int {
	opponent := piece.Opponent()
	own, empty, opp := 0, 0, 0
	for _, p := range window {
		switch p {
		case piece:
			own++
		case opponent:
			opp++
		case domain.Empty:
			empty++
		}
	}

	switch {
	case own == 4:
		return SCORE_FOUR
	case own == 3 && empty == 1:
		return SCORE_THREE
	case own == 2 && empty == 2:
		return SCORE_TWO
	case opp == 3 && empty == 1:
		return SCORE_BLOCK_NEED
	}
	return 0
}

// ScorePosition is the static evaluation of a board for piece: a bonus for
// the middle column plus the score of every window.
func ScorePosition(board *domain.Board, piece domain.Piece) int {
	centerCol := domain.Columns / 2
	centerCount := 0
	for r := 0; r < domain.Rows; r++ {
		if board[r][centerCol] == piece {
			centerCount++
		}
	}
	score := centerCount + CENTER_BONUS

	for _, w := range windows {
		var window Window
		for j, p := range w {
			window[j] = board[p.row][p.col]
		}
		score += EvaluateWindow(window, piece)
	}
	return score
}
