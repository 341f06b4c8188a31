package game

import (
	"context"
	"fmt"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/rs/zerolog/log"
)

type MatchResult struct {
	FirstWins  int
	SecondWins int
	Draws      int
	TotalMoves int
}

func (r MatchResult) Games() int {
	return r.FirstWins + r.SecondWins + r.Draws
}

// PlayMatch pits two engines against each other. The first engine plays the
// ai discs and the second the player discs; who moves first alternates
// between games.
func PlayMatch(ctx context.Context, first, second *bot.Engine, games int) (MatchResult, error) {
	var result MatchResult
	for i := 0; i < games; i++ {
		starter := domain.AiPiece
		if i%2 == 1 {
			starter = domain.PlayerPiece
		}

		g, err := playGame(ctx, first, second, starter)
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		result.TotalMoves += g.MoveCount
		switch g.Winner {
		case domain.AiPiece:
			result.FirstWins++
		case domain.PlayerPiece:
			result.SecondWins++
		default:
			result.Draws++
		}

		log.Info().
			Int("game", i+1).
			Str("starter", starter.String()).
			Str("winner", g.Winner.String()).
			Int("moves", g.MoveCount).
			Msg("[ARENA] game finished")
	}
	return result, nil
}

func playGame(ctx context.Context, first, second *bot.Engine, starter domain.Piece) (*domain.Game, error) {
	g := domain.NewGame(starter)
	for !g.IsFinished() {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		engine := first
		if g.CurrentTurn == domain.PlayerPiece {
			engine = second
		}

		res, err := engine.BestMove(g.Board, g.CurrentTurn)
		if err != nil {
			return g, err
		}
		if _, err := g.MakeMove(g.CurrentTurn, res.Column); err != nil {
			return g, err
		}
	}
	return g, nil
}
