package bot

import "strings"

type Strategy string

const (
	StrategyRandom    Strategy = "random"
	StrategyGreedy    Strategy = "greedy"
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
	StrategyParallel  Strategy = "parallel"
)

// ParseStrategy validates and returns the move strategy. The old difficulty
// names are accepted too. Defaults to alpha-beta if invalid or empty
func ParseStrategy(name string) Strategy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random":
		return StrategyRandom
	case "greedy", "easy":
		return StrategyGreedy
	case "minimax", "medium":
		return StrategyMinimax
	case "alphabeta", "alpha-beta", "hard":
		return StrategyAlphaBeta
	case "parallel":
		return StrategyParallel
	default:
		return StrategyAlphaBeta
	}
}

func (s Strategy) String() string {
	return string(s)
}
