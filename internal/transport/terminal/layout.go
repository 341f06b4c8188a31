package terminal

import "github.com/iamasit07/connect4-ai/internal/domain"

const (
	cellWidth  = 4
	cellHeight = 2
	// one row of cells above the board holds the disc that follows the pointer
	headerRows = 1
)

// BoardSize is the area the board needs, header included.
func BoardSize() (width, height int) {
	return domain.Columns * cellWidth, (domain.Rows + headerRows) * cellHeight
}

// ColumnAt maps a screen x coordinate to a board column, or -1 when the
// pointer is left or right of the board.
func ColumnAt(x, left int) int {
	if x < left {
		return -1
	}
	col := (x - left) / cellWidth
	if col >= domain.Columns {
		return -1
	}
	return col
}

// CellOrigin returns the top-left screen position of a board cell. Row 0 is
// drawn at the bottom.
func CellOrigin(left, top, row, col int) (x, y int) {
	x = left + col*cellWidth
	y = top + (headerRows+domain.Rows-1-row)*cellHeight
	return x, y
}

// Banner is the text shown once the game has ended.
func Banner(status domain.GameStatus, winner domain.Piece) string {
	switch {
	case status == domain.StatusWon && winner == domain.PlayerPiece:
		return "Player 1 wins!!"
	case status == domain.StatusWon && winner == domain.AiPiece:
		return "Player 2 wins!!"
	case status == domain.StatusDraw:
		return "Draw!"
	}
	return ""
}
