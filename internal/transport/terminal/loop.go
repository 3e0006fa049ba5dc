package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/iamasit07/connect4-minimax/internal/domain"
	"github.com/iamasit07/connect4-minimax/internal/render"
	"github.com/iamasit07/connect4-minimax/internal/service/bot"
)

var ErrInputClosed = errors.New("input closed before the game finished")

// Loop plays one game: a human (Black) reading moves from In against the
// engine (White), writing the board to Out after every move.
type Loop struct {
	In     io.Reader
	Out    io.Writer
	Engine *bot.Engine
}

func NewLoop(in io.Reader, out io.Writer, engine *bot.Engine) *Loop {
	return &Loop{In: in, Out: out, Engine: engine}
}

// Run returns the final status of the game.
func (l *Loop) Run() (domain.Status, error) {
	game := domain.NewGame()
	scanner := bufio.NewScanner(l.In)

	fmt.Fprint(l.Out, render.Board(&game.Board))

	for {
		fmt.Fprintf(l.Out, "Player %s's turn to move!\n", render.Glyph(game.Turn))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return game.Status, err
			}
			return game.Status, ErrInputClosed
		}

		if !game.ApplyMove(scanner.Text()) {
			fmt.Fprintln(l.Out, "Please enter valid movement!")
			continue
		}
		fmt.Fprint(l.Out, render.Board(&game.Board))
		if game.IsFinished() {
			fmt.Fprintln(l.Out, render.StatusMessage(game.Status))
			return game.Status, nil
		}

		if _, err := l.Engine.PlayMove(&game); err != nil {
			return game.Status, fmt.Errorf("computer move failed: %w", err)
		}
		fmt.Fprint(l.Out, render.Board(&game.Board))
		if game.IsFinished() {
			fmt.Fprintln(l.Out, render.StatusMessage(game.Status))
			return game.Status, nil
		}
	}
}
