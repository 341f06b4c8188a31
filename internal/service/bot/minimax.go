package bot

import (
	"math"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"golang.org/x/exp/rand"
)

const (
	MINIMAX_WIN   = 1000000000
	MINIMAX_LOSS  = -1000000000
	MINIMAX_DRAW  = 0
	DEFAULT_DEPTH = 3

	NegInfinity = math.MinInt32
	Infinity    = math.MaxInt32

	// NoColumn is returned from leaves, where there is nothing left to play
	NoColumn = -1
)

const ErrNegativeDepth domain.Error = "search depth must not be negative"

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

type Result struct {
	Column int
	Value  int
}

// Searcher runs minimax searches with the ai as the maximizing side.
// It is not safe for concurrent use: the random source and node counter are
// not synchronised.
type Searcher struct {
	rng   Chooser
	nodes int
}

func NewSearcher(rng Chooser) *Searcher {
	return &Searcher{rng: rng}
}

func NewSeededSearcher(seed uint64) *Searcher {
	return NewSearcher(rand.New(rand.NewSource(seed)))
}

// Nodes is the number of positions visited since the last reset.
func (s *Searcher) Nodes() int {
	return s.nodes
}

func (s *Searcher) ResetNodes() {
	s.nodes = 0
}

// leafValue evaluates terminal positions and positions at depth zero.
// The ai win is checked before the player win.
func leafValue(board *domain.Board, depth int, valid []int) (Result, bool) {
	aiWon := domain.WinningMove(board, domain.AiPiece)
	playerWon := domain.WinningMove(board, domain.PlayerPiece)
	switch {
	case aiWon:
		return Result{Column: NoColumn, Value: MINIMAX_WIN}, true
	case playerWon:
		return Result{Column: NoColumn, Value: MINIMAX_LOSS}, true
	case len(valid) == 0:
		return Result{Column: NoColumn, Value: MINIMAX_DRAW}, true
	case depth == 0:
		return Result{Column: NoColumn, Value: ScorePosition(board, domain.AiPiece)}, true
	}
	return Result{}, false
}

// child returns a copy of board with piece dropped into a column that is
// known to be valid.
func child(board *domain.Board, column int, piece domain.Piece) domain.Board {
	next := *board
	row, _ := next.NextOpenRow(column)
	next.DropPiece(row, column, piece)
	return next
}

// Minimax searches depth plies without pruning.
func (s *Searcher) Minimax(board domain.Board, depth int, maximizing bool) (Result, error) {
	if depth < 0 {
		return Result{Column: NoColumn}, ErrNegativeDepth
	}
	return s.minimax(&board, depth, maximizing), nil
}

func (s *Searcher) minimax(board *domain.Board, depth int, maximizing bool) Result {
	s.nodes++
	valid := board.ValidLocations()
	if leaf, ok := leafValue(board, depth, valid); ok {
		return leaf
	}

	// ties keep the first column that set the record, starting from a random one
	column := valid[s.rng.Intn(len(valid))]

	if maximizing {
		value := NegInfinity
		for _, col := range valid {
			next := child(board, col, domain.AiPiece)
			score := s.minimax(&next, depth-1, false).Value
			if score > value {
				value = score
				column = col
			}
		}
		return Result{Column: column, Value: value}
	}

	value := Infinity
	for _, col := range valid {
		next := child(board, col, domain.PlayerPiece)
		score := s.minimax(&next, depth-1, true).Value
		if score < value {
			value = score
			column = col
		}
	}
	return Result{Column: column, Value: value}
}

// MinimaxAlphaBeta is Minimax with alpha-beta pruning. It returns the same
// value as Minimax for the same board and depth while visiting fewer nodes.
func (s *Searcher) MinimaxAlphaBeta(board domain.Board, depth, alpha, beta int, maximizing bool) (Result, error) {
	if depth < 0 {
		return Result{Column: NoColumn}, ErrNegativeDepth
	}
	return s.alphaBeta(&board, depth, alpha, beta, maximizing), nil
}

func (s *Searcher) alphaBeta(board *domain.Board, depth, alpha, beta int, maximizing bool) Result {
	s.nodes++
	valid := board.ValidLocations()
	if leaf, ok := leafValue(board, depth, valid); ok {
		return leaf
	}

	column := valid[s.rng.Intn(len(valid))]

	if maximizing {
		value := NegInfinity
		for _, col := range valid {
			next := child(board, col, domain.AiPiece)
			score := s.alphaBeta(&next, depth-1, alpha, beta, false).Value
			if score > value {
				value = score
				column = col
			}
			alpha = max(alpha, value)
			if alpha >= beta {
				break // beta cutoff
			}
		}
		return Result{Column: column, Value: value}
	}

	value := Infinity
	for _, col := range valid {
		next := child(board, col, domain.PlayerPiece)
		score := s.alphaBeta(&next, depth-1, alpha, beta, true).Value
		if score < value {
			value = score
			column = col
		}
		beta = min(beta, value)
		if alpha >= beta {
			break // alpha cutoff
		}
	}
	return Result{Column: column, Value: value}
}
