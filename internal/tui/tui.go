// Package tui is a full-screen terminal driver built on tcell.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/render"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/speech"
)

const (
	cellWidth   = 4
	padTop      = 3
	padLeft     = 1
	legendRow   = padTop + domain.Rows
	statusRow   = legendRow + 2
	helpRow     = statusRow + 2
	markerRow   = padTop - 1
	verRune     = '│'
	markerRune  = '▼'
	centerStart = domain.Columns / 2
)

// Options configures the UI. With a nil Computer both sides are human.
type Options struct {
	Computer  bot.Player
	Announcer speech.Announcer
}

// UI draws the game and reacts to keyboard events.
type UI struct {
	screen tcell.Screen
	style  tcell.Style
	opts   Options

	game   *domain.Game
	cursor int
	status string
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() (tcell.Screen, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	return screen, nil
}

// New starts a game on an initialized screen and draws it.
func New(screen tcell.Screen, opts Options) *UI {
	if opts.Announcer == nil {
		opts.Announcer = speech.Silent{}
	}

	u := UI{
		screen: screen,
		style:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		opts:   opts,
	}
	u.newGame()

	return &u
}

// Run handles terminal events until the player quits. This is a blocking call.
func (u *UI) Run() error {
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil // screen finalized
		}
		if quit := u.HandleEvent(ev); quit {
			return nil
		}
	}
}

func (u *UI) Game() *domain.Game { return u.game }
func (u *UI) Cursor() int        { return u.cursor }
func (u *UI) Status() string     { return u.status }

// HandleEvent applies one terminal event and redraws. It reports whether the
// player asked to quit.
func (u *UI) HandleEvent(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventResize:
		u.screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true

		case tcell.KeyLeft:
			if u.cursor > 0 {
				u.cursor--
			}

		case tcell.KeyRight:
			if u.cursor < domain.Columns-1 {
				u.cursor++
			}

		case tcell.KeyEnter, tcell.KeyDown:
			u.humanDrop()

		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'n':
				u.newGame()
				return false
			case ' ':
				u.humanDrop()
			}
		}
	}

	u.draw()
	return false
}

func (u *UI) newGame() {
	u.game = domain.NewGame()
	u.cursor = centerStart
	u.status = u.turnStatus()

	if u.computerToMove() {
		u.computerMove()
	}

	u.draw()
}

func (u *UI) computerToMove() bool {
	return u.opts.Computer != nil && !u.game.IsFinished() && u.game.CurrentPlayer == u.opts.Computer.Cell()
}

func (u *UI) humanDrop() {
	if u.game.IsFinished() {
		u.screen.Beep()
		return
	}

	if _, err := u.game.MakeMove(u.game.CurrentPlayer, u.cursor); err != nil {
		u.status = fmt.Sprintf("Column %d is full", u.cursor)
		u.screen.Beep()
		return
	}

	if u.finished() {
		return
	}
	u.status = u.turnStatus()

	if u.computerToMove() {
		u.computerMove()
	}
}

func (u *UI) computerMove() {
	column, err := u.opts.Computer.BestMove(u.game.Board)
	if err != nil {
		u.status = err.Error()
		return
	}

	if _, err := u.game.MakeMove(u.opts.Computer.Cell(), column); err != nil {
		u.status = err.Error()
		return
	}

	msg := fmt.Sprintf("Computer selects column %d", column)
	u.opts.Announcer.Say(msg)

	if u.finished() {
		return
	}
	u.status = msg + ". " + u.turnStatus()
}

// finished sets the final status once the game is over.
func (u *UI) finished() bool {
	switch u.game.Status {
	case domain.StatusWon:
		u.status = fmt.Sprintf("Player %s wins!", render.Symbol(u.game.Winner))
	case domain.StatusDraw:
		u.status = "The game is a draw."
	default:
		return false
	}
	u.opts.Announcer.Say(u.status)
	return true
}

func (u *UI) turnStatus() string {
	return fmt.Sprintf("Player %s to move", render.Symbol(u.game.CurrentPlayer))
}

// =============================================================================

func (u *UI) draw() {
	u.screen.Clear()

	u.print(padLeft, 0, "Connect Four", u.style.Bold(true))

	if !u.game.IsFinished() {
		u.print(padLeft+cellWidth*u.cursor+2, markerRow, string(markerRune), u.diskStyle(u.game.CurrentPlayer))
	}

	frame := u.style.Foreground(tcell.ColorBlue)
	for row := 0; row < domain.Rows; row++ {
		y := padTop + row
		for col := 0; col <= domain.Columns; col++ {
			u.screen.SetContent(padLeft+col*cellWidth, y, verRune, nil, frame)
		}
		for col := 0; col < domain.Columns; col++ {
			cell := u.game.Board.Cell(row, col)
			u.print(padLeft+col*cellWidth+2, y, render.Symbol(cell), u.diskStyle(cell))
		}
	}

	for col := 0; col < domain.Columns; col++ {
		u.print(padLeft+col*cellWidth+2, legendRow, fmt.Sprint(col), u.style)
	}

	u.print(padLeft, statusRow, u.status, u.style)
	u.print(padLeft, helpRow, "←/→ move   ↓/enter/space drop   <n> new game   <q> quit", u.style.Foreground(tcell.ColorGray))

	u.screen.Show()
}

func (u *UI) diskStyle(c domain.Cell) tcell.Style {
	switch c {
	case domain.PlayerOne:
		return u.style.Foreground(tcell.ColorRed)
	case domain.PlayerTwo:
		return u.style.Foreground(tcell.ColorYellow)
	}
	return u.style.Foreground(tcell.ColorGray)
}

func (u *UI) print(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		u.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}
