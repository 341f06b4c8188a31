package game

import (
	"sync"
	"testing"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/stretchr/testify/require"
)

type fixedChooser int

func (f fixedChooser) Intn(n int) int {
	return int(f) % n
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func TestChooseFirst(t *testing.T) {
	require.Equal(t, domain.PlayerPiece, ChooseFirst("player", fixedChooser(1)))
	require.Equal(t, domain.AiPiece, ChooseFirst("AI", fixedChooser(0)))
	require.Equal(t, domain.PlayerPiece, ChooseFirst("random", fixedChooser(0)))
	require.Equal(t, domain.AiPiece, ChooseFirst("", fixedChooser(1)))
}

func TestSessionTurns(t *testing.T) {
	rec := &recorder{}
	engine := bot.NewEngine(bot.WithSeed(1))
	s := NewSession(engine, domain.PlayerPiece, rec)
	require.NotEmpty(t, s.GameID)

	err := s.HandleAIMove()
	require.ErrorIs(t, err, domain.ErrNotYourTurn)

	require.NoError(t, s.HandlePlayerMove(3))
	require.True(t, s.IsAITurn())

	err = s.HandlePlayerMove(2)
	require.ErrorIs(t, err, domain.ErrNotYourTurn)

	require.NoError(t, s.HandleAIMove())
	require.False(t, s.IsAITurn())

	snap := s.Snapshot()
	require.Equal(t, 2, snap.MoveCount)
	require.Equal(t, domain.AiPiece, snap.LastMove.Piece)
	require.Equal(t, []string{EventMoveMade, EventMoveMade}, rec.types())
	require.Equal(t, domain.AiPiece, rec.events[0].NextTurn)

	err = s.HandlePlayerMove(9)
	require.ErrorIs(t, err, domain.ErrInvalidColumn)
}

func TestSessionAIBlocksAndWins(t *testing.T) {
	rec := &recorder{}
	s := NewSession(bot.NewEngine(bot.WithSeed(2)), domain.PlayerPiece, rec)

	// three in column 0 with the ai having nothing yet: it must block
	s.Game.Board = mustBoard(t,
		".......",
		".......",
		".......",
		"X......",
		"X......",
		"X.....O",
	)
	s.Game.CurrentTurn = domain.AiPiece
	require.NoError(t, s.HandleAIMove())
	require.Equal(t, 0, s.Snapshot().LastMove.Column)

	// ai has three stacked in column 6 and it is its move again
	s.Game.Board = mustBoard(t,
		".......",
		".......",
		"X......",
		"O.....O",
		"X.....O",
		"XX....O",
	)
	s.Game.CurrentTurn = domain.AiPiece
	require.NoError(t, s.HandleAIMove())

	snap := s.Snapshot()
	require.Equal(t, domain.StatusWon, snap.Status)
	require.Equal(t, domain.AiPiece, snap.Winner)
	require.Equal(t, ReasonConnectFour, s.Reason)
	require.Equal(t, EventGameOver, rec.events[len(rec.events)-1].Type)

	require.ErrorIs(t, s.HandleAIMove(), domain.ErrGameOver)
	require.ErrorIs(t, s.HandlePlayerMove(1), domain.ErrGameOver)

	oldID := s.GameID
	s.Restart(domain.AiPiece)
	require.NotEqual(t, oldID, s.GameID)
	require.True(t, s.IsAITurn())
	require.Equal(t, 0, s.Snapshot().MoveCount)
}

func TestSessionDraw(t *testing.T) {
	rec := &recorder{}
	s := NewSession(bot.NewEngine(bot.WithSeed(3)), domain.PlayerPiece, rec)
	s.Game.Board = mustBoard(t,
		"XXOOXX.",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"XXOOXXO",
		"XXOOXXO",
	)
	s.Game.CurrentTurn = domain.AiPiece
	require.NoError(t, s.HandleAIMove())

	snap := s.Snapshot()
	require.Equal(t, domain.StatusDraw, snap.Status)
	require.Equal(t, ReasonDraw, s.Reason)
	last := rec.events[len(rec.events)-1]
	require.Equal(t, EventGameOver, last.Type)
	require.Equal(t, domain.Empty, last.Winner)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSession(bot.NewEngine(bot.WithSeed(4)), domain.PlayerPiece, nil)
	require.NoError(t, s.HandlePlayerMove(1))

	snap := s.Snapshot()
	snap.Board[0][1] = domain.AiPiece
	snap.LastMove.Column = 5

	again := s.Snapshot()
	require.Equal(t, domain.PlayerPiece, again.Board[0][1])
	require.Equal(t, 1, again.LastMove.Column)
}

func mustBoard(t *testing.T, lines ...string) domain.Board {
	t.Helper()
	b, err := domain.ParseBoard(lines...)
	require.NoError(t, err)
	return b
}
