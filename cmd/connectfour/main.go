package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/iamasit07/connectfour/internal/cli"
	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/speech"
	"github.com/iamasit07/connectfour/internal/tui"
)

var (
	mode       = flag.String("mode", "ai", "ai: play the computer, pvp: two humans")
	human      = flag.Int("human", 1, "side the human plays against the computer (1 moves first)")
	difficulty = flag.String("difficulty", "", "easy, medium, hard or expert (default from AI_DIFFICULTY)")
	depth      = flag.Int("depth", -1, "search depth in plies, overrides -difficulty")
	parallel   = flag.Bool("parallel", false, "search root moves in parallel")
	useTUI     = flag.Bool("tui", false, "full-screen terminal interface")
	speak      = flag.Bool("speak", false, "read computer moves aloud")
	seed       = flag.Int64("seed", 0, "seed for the computer's random fallback (0: time based)")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// -------------------------------------------------------------------------
	// Layer flags over the environment.

	cfg := config.LoadConfig()
	if *difficulty != "" {
		cfg.SetDifficulty(*difficulty)
	}
	if *parallel {
		cfg.ParallelSearch = true
	}
	if *speak {
		cfg.Speak = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	settings, err := cfg.BotSettings()
	if err != nil {
		return fmt.Errorf("bot settings: %w", err)
	}
	if *depth >= 0 {
		settings.Depth = depth
	}
	if *seed != 0 {
		settings.Rand = rand.New(rand.NewSource(*seed))
	}

	// -------------------------------------------------------------------------
	// Build the computer opponent.

	var computer bot.Player
	switch *mode {
	case "ai":
		side, err := domain.ParsePlayer(*human)
		if err != nil {
			return fmt.Errorf("-human: %w", err)
		}
		computer, err = bot.New(side.Opponent(), settings)
		if err != nil {
			return fmt.Errorf("new bot: %w", err)
		}
	case "pvp":
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	announcer := speech.New(cfg.Speak, cfg.AudioDir)

	// -------------------------------------------------------------------------
	// Play.

	if *useTUI {
		screen, err := tui.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()

		return tui.New(screen, tui.Options{Computer: computer, Announcer: announcer}).Run()
	}

	_, err = cli.Play(os.Stdin, os.Stdout, cli.Options{Computer: computer, Announcer: announcer})
	return err
}
