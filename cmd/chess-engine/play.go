package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/config"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/output"
	"github.com/lgbarn/chessengine-go/internal/search"
)

// Player kinds accepted by -white and -black.
const (
	playerEngine = "engine"
	playerHuman  = "human"
	playerRandom = "random"
)

// runPlay plays a game to its end, or until input runs out or -maxply is reached.
func runPlay(env *environment, args []string) int {
	cfg := newConfig(env)
	fs := newFlagSet(env, "play", "")
	var ef engineFlags
	ef.register(fs, cfg)
	fen := fenFlag(fs)
	white := fs.String("white", playerHuman, "White player: engine, human or random")
	black := fs.String("black", playerEngine, "Black player: engine, human or random")
	seed := fs.Int64("seed", 1, "Seed for the random player")
	maxPly := fs.Int("maxply", 0, "Stop after N plies (0 = no limit)")
	showBoard := fs.Bool("board", cfg.Output.ShowBoard, "Draw the board before every move")
	record := fs.String("record", "", "Write the finished game to this file (- for stdout)")
	format := fs.String("format", string(cfg.Output.GameFormat), "Format of the recorded game: pgn or json")
	lineLength := fs.Int("w", cfg.Output.MaxLineLength, "Maximum PGN line length")
	if ok, code := parseFlags(fs, args); !ok {
		return code
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.GameFormat = output.Format(*format)
	cfg.Output.MaxLineLength = *lineLength
	closer, err := ef.apply(cfg)
	if err != nil {
		return fail(env, err)
	}
	defer closer.Close()

	gen := cfg.Generator()
	game, err := engine.NewGameFromFEN(*fen, engine.WithGenerator(gen))
	if err != nil {
		return fail(env, err)
	}

	var human *search.ReaderPicker
	pickers := map[chess.Colour]search.MovePicker{}
	for colour, kind := range map[chess.Colour]string{chess.White: *white, chess.Black: *black} {
		if kind == playerHuman && human == nil {
			human = search.NewReaderPicker(env.stdin, env.stdout, gen)
		}
		picker, err := newPicker(cfg, gen, kind, *seed, human)
		if err != nil {
			return fail(env, err)
		}
		pickers[colour] = picker
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if code := playGame(ctx, env, cfg, game, pickers, *maxPly); code != exitOK {
		return code
	}
	if *record == "" {
		return exitOK
	}
	tags := output.Tags{
		"Event": "chess-engine game",
		"Date":  time.Now().Format("2006.01.02"),
		"White": *white,
		"Black": *black,
	}
	if err := recordGame(env, cfg, *record, game, tags); err != nil {
		return fail(env, err)
	}
	return exitOK
}

// recordGame writes game to the named file, or stdout for "-".
func recordGame(env *environment, cfg *config.Config, name string, game *engine.Game, tags output.Tags) error {
	w := env.stdout
	if name != "-" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("creating record file %s: %w", name, err)
		}
		defer f.Close()
		w = f
	}
	gw, err := cfg.GameWriter(w)
	if err != nil {
		return err
	}
	if err := gw.WriteGame(game, tags); err != nil {
		return err
	}
	return gw.Close()
}

// newPicker builds the move picker for one player kind.
func newPicker(cfg *config.Config, gen *engine.Generator, kind string, seed int64, human *search.ReaderPicker) (search.MovePicker, error) {
	switch kind {
	case playerEngine:
		return cfg.Picker(gen)
	case playerRandom:
		return search.NewRandomPicker(seed, gen), nil
	case playerHuman:
		return human, nil
	}
	return nil, fmt.Errorf("player %q (want %s, %s or %s): %w",
		kind, playerEngine, playerHuman, playerRandom, errors.ErrInvalidConfig)
}

func playGame(ctx context.Context, env *environment, cfg *config.Config, game *engine.Game, pickers map[chess.Colour]search.MovePicker, maxPly int) int {
	out := cfg.Output.Writer
	for plies := 0; game.State() == chess.Unfinished; plies++ {
		if maxPly > 0 && plies >= maxPly {
			fmt.Fprintf(out, "stopped after %d plies\n", plies)
			break
		}
		p := game.Position()
		if cfg.Output.ShowBoard {
			writeBoard(out, p)
		}
		m, err := pickers[p.ToMove].PickMove(ctx, p)
		if err == io.EOF {
			fmt.Fprintln(out, "input closed")
			break
		}
		if err != nil {
			return fail(env, err)
		}
		rec, err := game.MakeMove(m)
		if err != nil {
			return fail(env, err)
		}
		if p.ToMove == chess.White {
			fmt.Fprintf(out, "%d. %s\n", p.FullmoveNumber, rec.SAN())
		} else {
			fmt.Fprintf(out, "%d... %s\n", p.FullmoveNumber, rec.SAN())
		}
	}

	if cfg.Output.ShowBoard {
		writeBoard(out, game.Position())
	}
	fmt.Fprintf(out, "Moves: %s\n", strings.Join(game.SANHistory(), " "))
	fmt.Fprintf(out, "Result: %s (%s)\n", game.Result(), game.State())
	return exitOK
}
