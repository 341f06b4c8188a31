package bot

import (
	"math"
	"sync"

	"github.com/iamasit07/connect4-ai/internal/domain"
)

// ParallelAlphaBeta splits the root columns of an ai move across up to
// workers goroutines. Every worker gets its own board copy, its own searcher
// and the full window, so no bound is shared between branches. Results are
// folded in column order with the same tie rule as the sequential search,
// which keeps the returned value identical to MinimaxAlphaBeta.
func (s *Searcher) ParallelAlphaBeta(board domain.Board, depth, workers int) (Result, error) {
	if depth < 0 {
		return Result{Column: NoColumn}, ErrNegativeDepth
	}
	if workers <= 1 {
		return s.alphaBeta(&board, depth, NegInfinity, Infinity, true), nil
	}

	s.nodes++
	valid := board.ValidLocations()
	if leaf, ok := leafValue(&board, depth, valid); ok {
		return leaf, nil
	}

	column := valid[s.rng.Intn(len(valid))]

	// seeds are drawn before fan-out so the outcome only depends on our source
	seeds := make([]uint64, len(valid))
	for i := range seeds {
		seeds[i] = uint64(s.rng.Intn(math.MaxInt32))
	}

	scores := make([]int, len(valid))
	nodes := make([]int, len(valid))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, col := range valid {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, col int) {
			defer wg.Done()
			defer func() { <-sem }()

			worker := NewSeededSearcher(seeds[i])
			next := child(&board, col, domain.AiPiece)
			scores[i] = worker.alphaBeta(&next, depth-1, NegInfinity, Infinity, false).Value
			nodes[i] = worker.nodes
		}(i, col)
	}
	wg.Wait()

	value := NegInfinity
	for i, col := range valid {
		s.nodes += nodes[i]
		if scores[i] > value {
			value = scores[i]
			column = col
		}
	}
	return Result{Column: column, Value: value}, nil
}
