package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/iamasit07/connectfour/internal/domain"
)

// Player is anything that can choose a column for its side.
type Player interface {
	BestMove(board domain.Board) (int, error)
	Cell() domain.Cell
}

type Difficulty string

const (
	Easy    Difficulty = "easy"
	Medium  Difficulty = "medium"
	Hard    Difficulty = "hard"
	Expert  Difficulty = "expert"
	Default            = Hard
)

var searchDepth = map[Difficulty]int{
	Medium: 2,
	Hard:   DefaultDepth,
	Expert: 6,
}

// ParseDifficulty accepts a difficulty name case-insensitively. An empty
// string selects the default.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return Default, nil
	}
	if d == Easy {
		return d, nil
	}
	if _, ok := searchDepth[d]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Settings describes the computer opponent to build.
type Settings struct {
	Difficulty Difficulty
	Depth      *int // overrides the difficulty's search depth when set
	Parallel   bool
	Rand       *rand.Rand
}

// New creates the computer player for the given settings.
func New(player domain.Cell, s Settings) (Player, error) {
	if !player.IsPlayer() {
		return nil, domain.ErrInvalidPlayer
	}

	if s.Depth != nil {
		return NewEngine(player, *s.Depth, engineOptions(s)...), nil
	}

	switch s.Difficulty {
	case Easy:
		return NewEasy(player, s.Rand), nil
	case "":
		return NewEngine(player, searchDepth[Default], engineOptions(s)...), nil
	}

	depth, ok := searchDepth[s.Difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", s.Difficulty)
	}
	return NewEngine(player, depth, engineOptions(s)...), nil
}

func engineOptions(s Settings) []Option {
	var opts []Option
	if s.Rand != nil {
		opts = append(opts, WithRand(s.Rand))
	}
	if s.Parallel {
		opts = append(opts, WithParallel())
	}
	return opts
}
