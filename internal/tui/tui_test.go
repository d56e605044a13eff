package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/speech"
)

type scriptedBot struct {
	cell   domain.Cell
	column int
}

func (b scriptedBot) BestMove(domain.Board) (int, error) { return b.column, nil }
func (b scriptedBot) Cell() domain.Cell                  { return b.cell }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// line returns the text shown on row y of the screen.
func line(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		runes := cells[y*width+x].Runes
		if len(runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestCursorMovement(t *testing.T) {
	u := New(newSimScreen(t), Options{})
	if u.Cursor() != 3 {
		t.Fatalf("initial cursor = %d, want 3", u.Cursor())
	}

	for i := 0; i < 10; i++ {
		u.HandleEvent(key(tcell.KeyLeft))
	}
	if u.Cursor() != 0 {
		t.Errorf("cursor = %d after moving far left", u.Cursor())
	}

	for i := 0; i < 10; i++ {
		u.HandleEvent(key(tcell.KeyRight))
	}
	if u.Cursor() != domain.Columns-1 {
		t.Errorf("cursor = %d after moving far right", u.Cursor())
	}
}

func TestHumansPlayToWin(t *testing.T) {
	screen := newSimScreen(t)
	u := New(screen, Options{})

	// X drops on 3 with Enter, O on 4 with Space, repeat until X has four.
	for i := 0; i < 3; i++ {
		u.HandleEvent(key(tcell.KeyEnter))
		u.HandleEvent(key(tcell.KeyRight))
		u.HandleEvent(char(' '))
		u.HandleEvent(key(tcell.KeyLeft))
	}
	if got := u.Status(); got != "Player X to move" {
		t.Errorf("status = %q", got)
	}
	u.HandleEvent(key(tcell.KeyDown))

	if u.Game().Winner != domain.PlayerOne {
		t.Fatalf("winner = %v, status %q", u.Game().Winner, u.Status())
	}
	if got := line(screen, statusRow); got != " Player X wins!" {
		t.Errorf("status line = %q", got)
	}
	if got := line(screen, padTop+domain.Rows-1); !strings.Contains(got, "X") || !strings.Contains(got, "O") {
		t.Errorf("bottom row = %q", got)
	}

	moves := u.Game().MoveCount
	u.HandleEvent(key(tcell.KeyEnter))
	if u.Game().MoveCount != moves {
		t.Errorf("drop accepted after the game ended")
	}

	u.HandleEvent(char('n'))
	if u.Game().MoveCount != 0 || u.Game().IsFinished() || u.Cursor() != 3 {
		t.Errorf("new game not started: %+v", u.Game())
	}
}

func TestFullColumn(t *testing.T) {
	u := New(newSimScreen(t), Options{})
	for i := 0; i < domain.Rows; i++ {
		u.HandleEvent(key(tcell.KeyEnter))
	}
	u.HandleEvent(key(tcell.KeyEnter))

	if u.Status() != "Column 3 is full" {
		t.Errorf("status = %q", u.Status())
	}
	if u.Game().MoveCount != domain.Rows {
		t.Errorf("move count = %d", u.Game().MoveCount)
	}
}

func TestComputerReplies(t *testing.T) {
	var rec speech.Recorder
	u := New(newSimScreen(t), Options{Computer: scriptedBot{domain.PlayerTwo, 0}, Announcer: &rec})

	u.HandleEvent(key(tcell.KeyEnter))

	if u.Game().MoveCount != 2 || u.Game().Board.Cell(domain.Rows-1, 0) != domain.PlayerTwo {
		t.Fatalf("computer did not reply: %+v", u.Game().History)
	}
	if u.Status() != "Computer selects column 0. Player X to move" {
		t.Errorf("status = %q", u.Status())
	}
	if msgs := rec.Messages(); len(msgs) != 1 || msgs[0] != "Computer selects column 0" {
		t.Errorf("announcements = %v", msgs)
	}
}

func TestComputerOpens(t *testing.T) {
	u := New(newSimScreen(t), Options{Computer: scriptedBot{domain.PlayerOne, 6}})

	if u.Game().MoveCount != 1 || u.Game().CurrentPlayer != domain.PlayerTwo {
		t.Errorf("computer did not open: %+v", u.Game().History)
	}
}

func TestRunQuits(t *testing.T) {
	screen := newSimScreen(t)
	u := New(screen, Options{})

	done := make(chan error, 1)
	go func() { done <- u.Run() }()

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
