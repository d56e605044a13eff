package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/speech"
)

type scriptedBot struct {
	cell   domain.Cell
	column int
}

func (b scriptedBot) BestMove(domain.Board) (int, error) { return b.column, nil }
func (b scriptedBot) Cell() domain.Cell                  { return b.cell }

func lines(cols ...string) io.Reader {
	return strings.NewReader(strings.Join(cols, "\n") + "\n")
}

func TestPlayHumansVertical(t *testing.T) {
	var out bytes.Buffer
	g, err := Play(lines("0", "1", "0", "1", "0", "1", "0"), &out, Options{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if g.Status != domain.StatusWon || g.Winner != domain.PlayerOne || g.MoveCount != 7 {
		t.Errorf("game = %+v", g)
	}

	text := out.String()
	if !strings.HasPrefix(text, "Welcome to Connect Four!") {
		t.Errorf("missing welcome: %q", text[:40])
	}
	if got := strings.Count(text, "Player X, choose a column (0-6): "); got != 4 {
		t.Errorf("X prompted %d times, want 4", got)
	}
	if got := strings.Count(text, "Player O, choose a column (0-6): "); got != 3 {
		t.Errorf("O prompted %d times, want 3", got)
	}
	if !strings.HasSuffix(text, "\nPlayer X wins!\n") {
		t.Errorf("output does not end with the winner:\n%s", text)
	}
	if !strings.Contains(text, "X O . . . . .\n0 1 2 3 4 5 6") {
		t.Errorf("final board missing:\n%s", text)
	}
}

func TestPlayRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	input := lines(
		"abc", "9", "-1", "",
		"0", "0", "0", "0", "0", "0", // fills column 0 without a winner
		"0", // full
		"1", "2", "1", "2", "1", "2", "1",
	)

	g, err := Play(input, &out, Options{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got := strings.Count(out.String(), "Invalid move, try again."); got != 5 {
		t.Errorf("%d retries reported, want 5", got)
	}
	if g.Winner != domain.PlayerOne {
		t.Errorf("winner = %v", g.Winner)
	}
}

func TestPlayAgainstComputer(t *testing.T) {
	var out bytes.Buffer
	var rec speech.Recorder

	g, err := Play(lines("0", "0", "0", "0"), &out, Options{
		Computer:  scriptedBot{domain.PlayerTwo, 6},
		Announcer: &rec,
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.Winner != domain.PlayerOne {
		t.Errorf("winner = %v", g.Winner)
	}

	want := []string{
		"Computer selects column 6",
		"Computer selects column 6",
		"Computer selects column 6",
		"Player X wins!",
	}
	if diff := cmp.Diff(want, rec.Messages()); diff != "" {
		t.Errorf("announcements (-want +got):\n%s", diff)
	}
	if strings.Contains(out.String(), "Player O, choose") {
		t.Errorf("computer side was prompted")
	}
}

func TestPlayComputerWinsAndOpens(t *testing.T) {
	var out bytes.Buffer
	g, err := Play(lines("0", "1", "0"), &out, Options{Computer: scriptedBot{domain.PlayerOne, 6}})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.Winner != domain.PlayerOne {
		t.Errorf("winner = %v", g.Winner)
	}

	text := out.String()
	if first := strings.Index(text, "Computer selects column 6"); first < 0 || first > strings.Index(text, "Player O, choose") {
		t.Errorf("computer did not open:\n%s", text)
	}
	if !strings.HasSuffix(text, "Player X wins!\n") {
		t.Errorf("output does not end with the winner:\n%s", text)
	}
}

func TestPlayDraw(t *testing.T) {
	cols := strings.Fields("0 1 5 5 0 2 3 2 0 3 4 5 3 6 4 3 5 6 2 2 2 2 3 0 4 1 6 1 0 4 5 0 1 1 1 4 4 3 5 6 6 6")

	var out bytes.Buffer
	g, err := Play(lines(cols...), &out, Options{})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.Status != domain.StatusDraw {
		t.Errorf("status = %s", g.Status)
	}
	if !strings.HasSuffix(out.String(), "\nThe game is a draw.\n") {
		t.Errorf("draw not reported:\n%s", out.String())
	}
}

func TestPlayEndOfInput(t *testing.T) {
	var out bytes.Buffer
	g, err := Play(lines("3"), &out, Options{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("error = %v, want io.ErrUnexpectedEOF", err)
	}
	if g.MoveCount != 1 {
		t.Errorf("move count = %d", g.MoveCount)
	}
}
