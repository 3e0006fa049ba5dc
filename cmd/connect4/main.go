package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/iamasit07/connect4-minimax/internal/config"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
	"github.com/iamasit07/connect4-minimax/internal/transport/terminal"
)

func main() {
	difficulty := flag.String("difficulty", "", "computer strength: easy, medium or hard (default: SEARCH_DEPTH)")
	flag.Parse()

	log.SetFlags(0)
	config.LoadEnv()
	cfg := config.LoadConfig()

	engine := bot.NewEngine(searchConfig(cfg).WithDifficulty(*difficulty))
	loop := terminal.NewLoop(os.Stdin, os.Stdout, engine)

	if _, err := loop.Run(); err != nil {
		if errors.Is(err, terminal.ErrInputClosed) {
			return
		}
		log.Fatal(err)
	}
}

// searchConfig builds the engine configuration from the loaded settings.
func searchConfig(cfg *config.Config) bot.Config {
	return bot.Config{
		Depth:             cfg.SearchDepth,
		BlackWinScore:     cfg.BlackWinScore,
		WhiteWinScore:     cfg.WhiteWinScore,
		DrawScore:         cfg.DrawScore,
		UndeterminedScore: cfg.UndeterminedScore,
		Parallel:          cfg.SearchParallel,
		Verbose:           cfg.SearchVerbose,
	}
}
