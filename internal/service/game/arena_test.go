package game

import (
	"context"
	"testing"

	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/stretchr/testify/require"
)

func TestPlayMatch(t *testing.T) {
	first := bot.NewEngine(bot.WithStrategy(bot.StrategyAlphaBeta), bot.WithDepth(2), bot.WithSeed(1))
	second := bot.NewEngine(bot.WithStrategy(bot.StrategyRandom), bot.WithSeed(2))

	res, err := PlayMatch(context.Background(), first, second, 4)
	require.NoError(t, err)
	require.Equal(t, 4, res.Games())
	require.GreaterOrEqual(t, res.TotalMoves, 4*7, "a game needs at least seven discs")
	require.Greater(t, res.FirstWins, res.SecondWins)
}

func TestPlayMatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PlayMatch(ctx, bot.NewEngine(bot.WithSeed(1)), bot.NewEngine(bot.WithSeed(2)), 3)
	require.ErrorIs(t, err, context.Canceled)
}
