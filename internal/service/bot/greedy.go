package bot

import (
	"github.com/iamasit07/connect4-ai/internal/domain"
)

const ErrNoValidMoves domain.Error = "no valid moves left"

// PickBestMove looks one move ahead: it drops piece into every open column
// and keeps the column whose board scores highest. Columns must beat a
// baseline of zero; if none does, the random default stands.
func PickBestMove(board domain.Board, piece domain.Piece, rng Chooser) (int, error) {
	valid := board.ValidLocations()
	if len(valid) == 0 {
		return NoColumn, ErrNoValidMoves
	}

	bestScore := 0
	bestCol := valid[rng.Intn(len(valid))]
	for _, col := range valid {
		next := child(&board, col, piece)
		score := ScorePosition(&next, piece)
		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol, nil
}
