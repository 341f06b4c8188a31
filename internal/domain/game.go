package domain

// Move is a disc that was dropped during a game.
type Move struct {
	Piece  Piece
	Column int
	Row    int
}

// Game is the live state of one match. The board is owned by the game;
// hypothetical moves are always played on copies.
type Game struct {
	Board       Board
	CurrentTurn Piece
	Status      GameStatus
	Winner      Piece
	MoveCount   int
	LastMove    *Move
}

func NewGame(first Piece) *Game {
	if first != AiPiece {
		first = PlayerPiece
	}
	return &Game{
		Board:       NewBoard(),
		CurrentTurn: first,
		Status:      StatusActive,
		Winner:      Empty,
	}
}

func (g *Game) MakeMove(piece Piece, column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameOver
	}

	if piece != g.CurrentTurn {
		return -1, ErrNotYourTurn
	}

	if !IsColumnInRange(column) {
		return -1, ErrInvalidColumn
	}

	if !g.Board.IsValidLocation(column) {
		return -1, ErrColumnFull
	}

	row, err := g.Board.Drop(column, piece)
	if err != nil {
		return -1, err
	}

	g.MoveCount++
	g.LastMove = &Move{Piece: piece, Column: column, Row: row}

	if CheckWin(&g.Board, row, column, piece) {
		g.Status = StatusWon
		g.Winner = piece
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentTurn = piece.Opponent()

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
