// Package terminal draws the game in a terminal and turns mouse and key
// input into moves on a game session.
package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/iamasit07/connect4-ai/internal/domain"
	"github.com/iamasit07/connect4-ai/internal/service/bot"
	"github.com/iamasit07/connect4-ai/internal/service/game"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type Options struct {
	AIMoveDelay time.Duration
	FirstTurn   string
	Mouse       bool
	Rng         bot.Chooser
}

type UI struct {
	app     *tview.Application
	board   *tview.Box
	status  *tview.TextView
	session *game.Session
	opts    Options
	styles  map[domain.Piece]tcell.Style

	mu       sync.Mutex
	hoverCol int
	thinking bool
	message  string
}

func New(opts Options) *UI {
	u := &UI{
		app:      tview.NewApplication(),
		board:    tview.NewBox(),
		status:   tview.NewTextView(),
		opts:     opts,
		hoverCol: domain.Columns / 2,
		styles: map[domain.Piece]tcell.Style{
			domain.Empty:       tcell.StyleDefault.Background(tcell.ColorBlack),
			domain.PlayerPiece: tcell.StyleDefault.Background(tcell.ColorRed),
			domain.AiPiece:     tcell.StyleDefault.Background(tcell.ColorYellow),
		},
	}

	u.board.SetBorder(true).SetTitle(" Connect Four ")
	u.board.SetDrawFunc(u.drawBoard)
	u.board.SetMouseCapture(u.handleMouse)

	u.status.SetTextAlign(tview.AlignCenter).SetDynamicColors(true)

	_, h := BoardSize()
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.board, h+2, 0, true).
		AddItem(u.status, 2, 0, false)

	u.app.SetRoot(layout, true).EnableMouse(opts.Mouse)
	u.app.SetInputCapture(u.handleKey)
	return u
}

// Attach binds the session the UI plays on. It must be called before Run.
func (u *UI) Attach(session *game.Session) {
	u.session = session
}

// OnEvent is called by the session while it holds its lock, so it only
// records the event and schedules a redraw.
func (u *UI) OnEvent(event game.Event) {
	if event.Type == game.EventGameOver {
		u.setMessage("")
	}
	go u.app.QueueUpdateDraw(u.refreshStatus)
}

func (u *UI) Run() error {
	if u.session == nil {
		return errors.New("terminal: no session attached")
	}
	u.refreshStatus()
	u.maybeAIMove()
	return u.app.Run()
}

func (u *UI) Stop() {
	u.app.Stop()
}

func (u *UI) setMessage(msg string) {
	u.mu.Lock()
	u.message = msg
	u.mu.Unlock()
}

func (u *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		u.app.Stop()
		return nil
	case tcell.KeyLeft:
		u.moveHover(-1)
		return nil
	case tcell.KeyRight:
		u.moveHover(1)
		return nil
	case tcell.KeyEnter, tcell.KeyDown:
		u.mu.Lock()
		col := u.hoverCol
		u.mu.Unlock()
		u.playColumn(col)
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		switch {
		case r == 'q':
			u.app.Stop()
		case r == 'r':
			u.restart()
		case r == ' ':
			u.mu.Lock()
			col := u.hoverCol
			u.mu.Unlock()
			u.playColumn(col)
		case r >= '1' && r <= '0'+domain.Columns:
			u.playColumn(int(r - '1'))
		}
		return nil
	}
	return event
}

func (u *UI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	left, _, _, _ := u.board.GetInnerRect()
	x, _ := event.Position()
	col := ColumnAt(x, left)
	if col < 0 {
		return action, event
	}

	switch action {
	case tview.MouseMove:
		u.mu.Lock()
		u.hoverCol = col
		u.mu.Unlock()
		return action, nil
	case tview.MouseLeftClick:
		u.mu.Lock()
		u.hoverCol = col
		u.mu.Unlock()
		u.playColumn(col)
		return action, nil
	}
	return action, event
}

func (u *UI) moveHover(delta int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	col := u.hoverCol + delta
	if domain.IsColumnInRange(col) {
		u.hoverCol = col
	}
}

// playColumn runs on the UI goroutine.
func (u *UI) playColumn(col int) {
	if u.session.IsAITurn() {
		return
	}
	if err := u.session.HandlePlayerMove(col); err != nil {
		if !errors.Is(err, domain.ErrGameOver) {
			u.setMessage(fmt.Sprintf("[red]%v", err))
		}
		log.Debug().Err(err).Int("column", col).Msg("[UI] move rejected")
		u.refreshStatus()
		return
	}
	u.setMessage("")
	u.maybeAIMove()
}

// maybeAIMove starts the ai turn off the UI goroutine so the screen keeps
// redrawing while the engine searches.
func (u *UI) maybeAIMove() {
	u.mu.Lock()
	if u.thinking || !u.session.IsAITurn() {
		u.mu.Unlock()
		return
	}
	u.thinking = true
	u.mu.Unlock()
	u.refreshStatus()

	go func() {
		time.Sleep(u.opts.AIMoveDelay)
		err := u.session.HandleAIMove()

		u.mu.Lock()
		u.thinking = false
		u.mu.Unlock()

		if err != nil {
			log.Error().Err(err).Msg("[UI] ai move failed")
			u.setMessage(fmt.Sprintf("[red]%v", err))
		}
		u.app.QueueUpdateDraw(u.refreshStatus)
	}()
}

func (u *UI) restart() {
	u.mu.Lock()
	busy := u.thinking
	u.mu.Unlock()
	if busy {
		return
	}

	u.session.Restart(game.ChooseFirst(u.opts.FirstTurn, u.opts.Rng))
	u.setMessage("")
	u.refreshStatus()
	u.maybeAIMove()
}

func (u *UI) refreshStatus() {
	snap := u.session.Snapshot()

	u.mu.Lock()
	msg := u.message
	thinking := u.thinking
	u.mu.Unlock()

	var line string
	switch {
	case snap.IsFinished():
		line = Banner(snap.Status, snap.Winner) + "  (r: new game, q: quit)"
	case thinking || snap.CurrentTurn == domain.AiPiece:
		line = "[yellow]AI is thinking..."
	default:
		line = "[red]Your turn[-]  (←/→ + Enter, 1-7 or click)"
	}
	if msg != "" && !snap.IsFinished() {
		line += "\n" + msg
	}
	u.status.SetText(line)
}

func (u *UI) drawBoard(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if u.session == nil {
		return x, y, width, height
	}
	snap := u.session.Snapshot()
	left, top := x+1, y+1

	u.mu.Lock()
	hover := u.hoverCol
	u.mu.Unlock()

	frame := tcell.StyleDefault.Background(tcell.ColorBlue)
	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			cx, cy := CellOrigin(left, top, row, col)
			fill(screen, cx, cy, cellWidth, cellHeight, frame)
			fill(screen, cx+1, cy, cellWidth-2, cellHeight, u.styles[snap.Board[row][col]])
		}
	}

	if !snap.IsFinished() && snap.CurrentTurn == domain.PlayerPiece && domain.IsColumnInRange(hover) {
		hx := left + hover*cellWidth
		fill(screen, hx+1, top, cellWidth-2, cellHeight, u.styles[domain.PlayerPiece])
	}

	if last := snap.LastMove; last != nil {
		cx, cy := CellOrigin(left, top, last.Row, last.Column)
		screen.SetContent(cx+1, cy, '*', nil, u.styles[last.Piece].Foreground(tcell.ColorBlack))
	}

	return x + 1, y + 1, width - 2, height - 2
}

func fill(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}
