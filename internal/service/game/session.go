package game

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/pkg/uid"
	"github.com/rs/zerolog/log"
)

const (
	EventMoveMade = "move_made"
	EventGameOver = "game_over"

	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// Event is pushed to the listener after every move.
type Event struct {
	Type     string
	GameID   string
	Column   int
	Row      int
	Piece    domain.Piece
	Board    domain.Board
	NextTurn domain.Piece
	Winner   domain.Piece
	Reason   string
}

// Listener receives session events; the presentation layer implements it.
type Listener interface {
	OnEvent(event Event)
}

type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// ChooseFirst resolves the FIRST_TURN setting: "player", "ai" or "random".
func ChooseFirst(mode string, rng bot.Chooser) domain.Piece {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "player", "human":
		return domain.PlayerPiece
	case "ai", "bot":
		return domain.AiPiece
	default:
		if rng.Intn(2) == 0 {
			return domain.PlayerPiece
		}
		return domain.AiPiece
	}
}

// Session is one human-versus-engine game. It owns the live board; the
// engine only ever sees copies of it.
type Session struct {
	GameID     string
	Game       *domain.Game
	Engine     *bot.Engine
	Reason     string
	CreatedAt  time.Time
	FinishedAt time.Time
	listener   Listener
	mu         sync.Mutex
}

func NewSession(engine *bot.Engine, first domain.Piece, listener Listener) *Session {
	if listener == nil {
		listener = ListenerFunc(func(Event) {})
	}
	s := &Session{
		GameID:    uid.GenerateGameID(),
		Game:      domain.NewGame(first),
		Engine:    engine,
		CreatedAt: time.Now(),
		listener:  listener,
	}
	log.Info().
		Str("game_id", s.GameID).
		Str("first", first.String()).
		Str("strategy", engine.Strategy().String()).
		Int("depth", engine.Depth()).
		Msg("[SESSION] created session")
	return s
}

// Restart throws the current game away and starts a fresh one.
func (s *Session) Restart(first domain.Piece) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.GameID = uid.GenerateGameID()
	s.Game = domain.NewGame(first)
	s.Reason = ""
	s.CreatedAt = time.Now()
	s.FinishedAt = time.Time{}
	log.Info().Str("game_id", s.GameID).Str("first", first.String()).Msg("[SESSION] restarted")
}

// Snapshot returns a copy of the game that is safe to read without the lock.
func (s *Session) Snapshot() domain.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := *s.Game
	if g.LastMove != nil {
		last := *g.LastMove
		g.LastMove = &last
	}
	return g
}

func (s *Session) IsAITurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.Game.IsFinished() && s.Game.CurrentTurn == domain.AiPiece
}

func (s *Session) HandlePlayerMove(column int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.applyMove(domain.PlayerPiece, column); err != nil {
		return fmt.Errorf("player move in column %d: %w", column, err)
	}
	return nil
}

// HandleAIMove runs the engine on a copy of the board and plays its answer.
// It blocks until the search has finished.
func (s *Session) HandleAIMove() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Verify it's actually the ai's turn
	if s.Game.IsFinished() {
		return domain.ErrGameOver
	}
	if s.Game.CurrentTurn != domain.AiPiece {
		return domain.ErrNotYourTurn
	}

	res, err := s.Engine.BestMove(s.Game.Board, domain.AiPiece)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if err := s.applyMove(domain.AiPiece, res.Column); err != nil {
		return fmt.Errorf("ai move in column %d: %w", res.Column, err)
	}
	return nil
}

// applyMove must be called with s.mu held.
func (s *Session) applyMove(piece domain.Piece, column int) error {
	row, err := s.Game.MakeMove(piece, column)
	if err != nil {
		return err
	}

	s.listener.OnEvent(Event{
		Type:     EventMoveMade,
		GameID:   s.GameID,
		Column:   column,
		Row:      row,
		Piece:    piece,
		Board:    s.Game.Board,
		NextTurn: s.Game.CurrentTurn,
	})

	switch s.Game.Status {
	case domain.StatusWon:
		s.Reason = ReasonConnectFour
	case domain.StatusDraw:
		s.Reason = ReasonDraw
	default:
		return nil
	}

	s.FinishedAt = time.Now()
	log.Info().
		Str("game_id", s.GameID).
		Str("winner", s.Game.Winner.String()).
		Str("reason", s.Reason).
		Int("moves", s.Game.MoveCount).
		Dur("duration", s.FinishedAt.Sub(s.CreatedAt)).
		Msg("[SESSION] game over")

	s.listener.OnEvent(Event{
		Type:   EventGameOver,
		GameID: s.GameID,
		Column: column,
		Row:    row,
		Piece:  piece,
		Board:  s.Game.Board,
		Winner: s.Game.Winner,
		Reason: s.Reason,
	})
	return nil
}
