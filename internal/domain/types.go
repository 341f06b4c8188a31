package domain

// Piece is the content of a single board cell.
type Piece int

const (
	Empty       Piece = 0
	PlayerPiece Piece = 1
	AiPiece     Piece = 2
)

// Opponent returns the piece playing against p. Empty has no opponent.
func (p Piece) Opponent() Piece {
	switch p {
	case PlayerPiece:
		return AiPiece
	case AiPiece:
		return PlayerPiece
	default:
		return Empty
	}
}

func (p Piece) String() string {
	switch p {
	case PlayerPiece:
		return "player"
	case AiPiece:
		return "ai"
	default:
		return "empty"
	}
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrInvalidColumn Error = "column out of range"
	ErrInvalidRow    Error = "row out of range"
	ErrColumnFull    Error = "column is full"
	ErrNotYourTurn   Error = "not your turn"
	ErrGameOver      Error = "game is already over"
)
