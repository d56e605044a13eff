// Package cli plays Connect Four over a line-oriented prompt.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/render"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/speech"
)

// Options configures a game. With a nil Computer both sides are human.
type Options struct {
	Computer  bot.Player
	Announcer speech.Announcer
}

// Play runs one game reading human columns from in and writing the board and
// messages to out. It returns the finished game. Running out of input before
// the game ends returns io.ErrUnexpectedEOF.
func Play(in io.Reader, out io.Writer, opts Options) (*domain.Game, error) {
	announcer := opts.Announcer
	if announcer == nil {
		announcer = speech.Silent{}
	}

	g := domain.NewGame()
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "Welcome to Connect Four!\n\n")
	for {
		fmt.Fprintf(out, "\n%s\n", render.Text(g.Board))

		player := g.CurrentPlayer
		var column int
		if opts.Computer != nil && player == opts.Computer.Cell() {
			col, err := opts.Computer.BestMove(g.Board)
			if err != nil {
				return g, fmt.Errorf("computer move: %w", err)
			}
			column = col

			msg := fmt.Sprintf("Computer selects column %d", column)
			fmt.Fprintln(out, msg)
			announcer.Say(msg)
		} else {
			col, err := humanMove(scanner, out, g.Board, player)
			if err != nil {
				return g, err
			}
			column = col
		}

		if _, err := g.MakeMove(player, column); err != nil {
			return g, fmt.Errorf("apply column %d: %w", column, err)
		}

		if g.IsFinished() {
			fmt.Fprintf(out, "\n%s\n", render.Text(g.Board))

			msg := "The game is a draw."
			if g.Status == domain.StatusWon {
				msg = fmt.Sprintf("Player %s wins!", render.Symbol(g.Winner))
			}
			fmt.Fprintf(out, "\n%s\n", msg)
			announcer.Say(msg)
			return g, nil
		}
	}
}

// humanMove prompts until the player enters a legal column.
func humanMove(scanner *bufio.Scanner, out io.Writer, board domain.Board, player domain.Cell) (int, error) {
	for {
		fmt.Fprintf(out, "Player %s, choose a column (0-%d): ", render.Symbol(player), domain.Columns-1)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}

		col, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && slices.Contains(board.LegalMoves(), col) {
			return col, nil
		}

		fmt.Fprintln(out, "Invalid move, try again.")
	}
}
