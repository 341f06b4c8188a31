package domain

// WinningMove reports whether piece has four in a row anywhere on the board.
func WinningMove(board *Board, piece Piece) bool {
	// horizontal
	for c := 0; c <= Columns-ToWin; c++ {
		for r := 0; r < Rows; r++ {
			if board[r][c] == piece && board[r][c+1] == piece && board[r][c+2] == piece && board[r][c+3] == piece {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < Columns; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if board[r][c] == piece && board[r+1][c] == piece && board[r+2][c] == piece && board[r+3][c] == piece {
				return true
			}
		}
	}

	// diagonal going up to the right
	for c := 0; c <= Columns-ToWin; c++ {
		for r := 0; r <= Rows-ToWin; r++ {
			if board[r][c] == piece && board[r+1][c+1] == piece && board[r+2][c+2] == piece && board[r+3][c+3] == piece {
				return true
			}
		}
	}

	// diagonal going down to the right
	for c := 0; c <= Columns-ToWin; c++ {
		for r := ToWin - 1; r < Rows; r++ {
			if board[r][c] == piece && board[r-1][c+1] == piece && board[r-2][c+2] == piece && board[r-3][c+3] == piece {
				return true
			}
		}
	}

	return false
}

// IsTerminal is true once either side has won or no column is left to play.
func IsTerminal(board *Board) bool {
	return WinningMove(board, PlayerPiece) || WinningMove(board, AiPiece) || len(board.ValidLocations()) == 0
}

// Winner returns the piece holding four in a row. The ai is checked first.
func Winner(board *Board) Piece {
	if WinningMove(board, AiPiece) {
		return AiPiece
	}
	if WinningMove(board, PlayerPiece) {
		return PlayerPiece
	}
	return Empty
}

var lineDirections = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// CheckWin only looks at the lines passing through (row, column), which is
// enough right after a disc was dropped there.
func CheckWin(board *Board, row, column int, piece Piece) bool {
	if row < 0 || row >= Rows || !IsColumnInRange(column) || board[row][column] != piece {
		return false
	}
	for _, dir := range lineDirections {
		total := 1 +
			CountDiskInDirection(board, row, column, dir[0], dir[1], piece) +
			CountDiskInDirection(board, row, column, -dir[0], -dir[1], piece)
		if total >= ToWin {
			return true
		}
	}
	return false
}
