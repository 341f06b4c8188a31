package bot

import (
	"fmt"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type option func(e *Engine)

func WithStrategy(strategy Strategy) option {
	return func(e *Engine) {
		e.strategy = strategy
	}
}

func WithDepth(depth int) option {
	return func(e *Engine) {
		e.depth = depth
	}
}

func WithWorkers(workers int) option {
	return func(e *Engine) {
		e.workers = workers
	}
}

func WithSeed(seed uint64) option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithChooser(rng Chooser) option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// Engine picks moves for one side of the board using a fixed strategy.
type Engine struct {
	strategy Strategy
	depth    int
	workers  int
	rng      Chooser
	searcher *Searcher
}

func NewEngine(options ...option) *Engine {
	e := &Engine{
		strategy: StrategyAlphaBeta,
		depth:    DEFAULT_DEPTH,
		workers:  1,
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	e.searcher = NewSearcher(e.rng)
	return e
}

func (e *Engine) Strategy() Strategy {
	return e.strategy
}

func (e *Engine) Depth() int {
	return e.depth
}

// BestMove chooses a column for piece. The searches always maximize for the
// ai, so when asked to play the player's side the board is swapped first.
func (e *Engine) BestMove(board domain.Board, piece domain.Piece) (Result, error) {
	if piece == domain.PlayerPiece {
		board = board.Swapped()
	}

	valid := board.ValidLocations()
	if len(valid) == 0 {
		return Result{Column: NoColumn}, ErrNoValidMoves
	}

	start := time.Now()
	e.searcher.ResetNodes()

	var (
		res Result
		err error
	)
	switch e.strategy {
	case StrategyRandom:
		res = Result{Column: valid[e.rng.Intn(len(valid))]}
	case StrategyGreedy:
		res.Column, err = PickBestMove(board, domain.AiPiece, e.rng)
		if err == nil {
			next := child(&board, res.Column, domain.AiPiece)
			res.Value = ScorePosition(&next, domain.AiPiece)
		}
	case StrategyMinimax:
		res, err = e.searcher.Minimax(board, e.depth, true)
	case StrategyParallel:
		res, err = e.searcher.ParallelAlphaBeta(board, e.depth, e.workers)
	default:
		res, err = e.searcher.MinimaxAlphaBeta(board, e.depth, NegInfinity, Infinity, true)
	}
	if err != nil {
		return Result{Column: NoColumn}, fmt.Errorf("%s search: %w", e.strategy, err)
	}

	// depth 0 on a live board has no column to report, fall back to the greedy pick
	if res.Column == NoColumn {
		res.Column, err = PickBestMove(board, domain.AiPiece, e.rng)
		if err != nil {
			return Result{Column: NoColumn}, err
		}
	}

	log.Debug().
		Str("strategy", e.strategy.String()).
		Str("piece", piece.String()).
		Int("depth", e.depth).
		Int("column", res.Column).
		Int("value", res.Value).
		Int("nodes", e.searcher.Nodes()).
		Dur("elapsed", time.Since(start)).
		Msg("[BOT] move chosen")

	return res, nil
}
