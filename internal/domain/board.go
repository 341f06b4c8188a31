package domain

import "strings"

// Board is the 6x7 grid. Row 0 is the bottom row, so pieces stack upwards.
// Board is a value: assigning it copies every cell.
type Board [Rows][Columns]Piece

func NewBoard() Board {
	return Board{}
}

func IsColumnInRange(column int) bool {
	return column >= 0 && column < Columns
}

func (b *Board) IsValidLocation(column int) bool {
	if !IsColumnInRange(column) {
		return false
	}
	return b[Rows-1][column] == Empty
}

// NextOpenRow returns the lowest empty row of column.
func (b *Board) NextOpenRow(column int) (int, error) {
	if !IsColumnInRange(column) {
		return -1, ErrInvalidColumn
	}
	for row := 0; row < Rows; row++ {
		if b[row][column] == Empty {
			return row, nil
		}
	}
	return -1, ErrColumnFull
}

// DropPiece places piece at (row, column). The caller is expected to have
// obtained row from NextOpenRow; gravity is not re-checked here.
func (b *Board) DropPiece(row, column int, piece Piece) error {
	if !IsColumnInRange(column) {
		return ErrInvalidColumn
	}
	if row < 0 || row >= Rows {
		return ErrInvalidRow
	}
	b[row][column] = piece
	return nil
}

// Drop lets piece fall into column and returns the row it landed on.
func (b *Board) Drop(column int, piece Piece) (int, error) {
	row, err := b.NextOpenRow(column)
	if err != nil {
		return -1, err
	}
	b[row][column] = piece
	return row, nil
}

// ValidLocations lists the playable columns from left to right.
// An empty result means the board is full.
func (b *Board) ValidLocations() []int {
	valid := make([]int, 0, Columns)
	for col := 0; col < Columns; col++ {
		if b.IsValidLocation(col) {
			valid = append(valid, col)
		}
	}
	return valid
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[Rows-1][c] == Empty {
			return false
		}
	}
	return true
}

func (b *Board) Clone() Board {
	return *b
}

// Swapped returns a copy with player and ai pieces exchanged.
func (b *Board) Swapped() Board {
	out := *b
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			out[r][c] = b[r][c].Opponent()
		}
	}
	return out
}

// ToInts flattens the board row by row, bottom row first.
func (b *Board) ToInts() [][]int {
	out := make([][]int, Rows)
	for r := range out {
		out[r] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			out[r][c] = int(b[r][c])
		}
	}
	return out
}

// String draws the board top row first, the way it looks when standing up.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Columns; c++ {
			switch b[r][c] {
			case PlayerPiece:
				sb.WriteByte('X')
			case AiPiece:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// this will simulate a move and give the result to the caller
// without touching the original board
func SimulateMove(board Board, column int, piece Piece) (Board, int, error) {
	row, err := board.Drop(column, piece)
	if err != nil {
		return board, -1, err
	}
	return board, row, nil
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(board *Board, row, column int, deltaRow, deltaCol int, piece Piece) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for r >= 0 && r < Rows && c >= 0 && c < Columns && board[r][c] == piece {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// ParseBoard reads the layout produced by String: top row first, 'X' for the
// player, 'O' for the ai and '.' for an empty cell.
func ParseBoard(lines ...string) (Board, error) {
	var b Board
	if len(lines) != Rows {
		return b, ErrInvalidRow
	}
	for i, line := range lines {
		if len(line) != Columns {
			return b, ErrInvalidColumn
		}
		r := Rows - 1 - i
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case 'X':
				b[r][c] = PlayerPiece
			case 'O':
				b[r][c] = AiPiece
			case '.':
				b[r][c] = Empty
			default:
				return b, ErrInvalidMove
			}
		}
	}
	return b, nil
}
