package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
)

const backRankFEN = "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"

// runCommand runs the CLI with args and stdin, returning the exit code and
// both output streams.
func runCommand(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	env := &environment{stdin: strings.NewReader(stdin), stdout: &out, stderr: &errOut}
	code = run(env, args)
	return code, out.String(), errOut.String()
}

func assertContains(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("output missing %q:\n%s", w, output)
		}
	}
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"no arguments", nil, exitUsage, "", "Usage: chess-engine"},
		{"help", []string{"help"}, exitOK, "perft", ""},
		{"version", []string{"-version"}, exitOK, programVersion, ""},
		{"unknown command", []string{"fly"}, exitUsage, "", `unknown command "fly"`},
		{"command help", []string{"bestmove", "-h"}, exitOK, "", "-depth"},
		{"bad flag", []string{"perft", "-bogus"}, exitUsage, "", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCommand(t, "", tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			assertContains(t, out, tt.wantOut)
			assertContains(t, errOut, tt.wantErr)
		})
	}
}

func TestBestMove(t *testing.T) {
	code, out, errOut := runCommand(t, "", "bestmove", "-fen", backRankFEN, "-depth", "2", "-s")
	if code != exitOK {
		t.Fatalf("exit code = %d: %s", code, errOut)
	}
	assertContains(t, out, "bestmove a1a8 (Ra8#)", "depth 2")
}

func TestBestMoveErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad fen", []string{"-fen", "8/8 w"}, "invalid FEN"},
		{"bad evaluator", []string{"-eval", "oracle"}, "oracle"},
		{"bad depth", []string{"-depth", "0"}, "depth 0"},
		{"no moves", []string{"-fen", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"}, "no legal moves"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCommand(t, "", append([]string{"bestmove", "-s"}, tt.args...)...)
			if code != exitError {
				t.Errorf("exit code = %d, want %d", code, exitError)
			}
			assertContains(t, errOut, "Error:", tt.want)
		})
	}
}

func TestBestMoveLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "engine.log")
	code, _, _ := runCommand(t, "", "bestmove", "-depth", "1", "-v", "2", "-l", logPath)
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, string(data), "depth 1 best", "chose", "move cache")
}

func TestMoves(t *testing.T) {
	code, out, _ := runCommand(t, "", "moves", "-board")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, out, "Nf3      g1f3", "20 moves, White to move, Unfinished", "8  r n b q k b n r")

	_, out, _ = runCommand(t, "", "moves", "-fen", "7k/6Q1/6K1/8/8/8/8/8 b - - 0 1")
	assertContains(t, out, "0 moves, Black to move, WhiteWon")
}

func TestPerft(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		code, out, _ := runCommand(t, "", "perft", "-depth", "2")
		if code != exitOK {
			t.Fatalf("exit code = %d", code)
		}
		assertContains(t, out, "perft(2) = 400")
	})

	t.Run("divide", func(t *testing.T) {
		_, out, _ := runCommand(t, "", "perft", "-depth", "1", "-divide")
		assertContains(t, out, "a2a3: 1", "Total: 20")
	})

	t.Run("verify", func(t *testing.T) {
		code, out, _ := runCommand(t, "", "perft", "-depth", "2", "-verify",
			"-fen", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
		if code != exitOK {
			t.Fatalf("exit code = %d:\n%s", code, out)
		}
		assertContains(t, out, "perft(2) = 2039", "verified: reference count 2039")
	})

	t.Run("bad depth", func(t *testing.T) {
		code, _, errOut := runCommand(t, "", "perft", "-depth", "0")
		if code != exitUsage {
			t.Errorf("exit code = %d, want %d", code, exitUsage)
		}
		assertContains(t, errOut, "-depth must be > 0")
	})
}

func TestAnalyse(t *testing.T) {
	input := strings.Join([]string{
		"# tactics",
		backRankFEN,
		"",
		"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
		"not a position",
	}, "\n")

	code, out, errOut := runCommand(t, input, "analyse", "-depth", "2", "-workers", "2")
	if code != exitError {
		t.Errorf("exit code = %d, want %d (one bad line)", code, exitError)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d result lines, want 3:\n%s", len(lines), out)
	}
	assertContains(t, lines[0], "stdin:2\tRa8#\ta1a8")
	assertContains(t, lines[1], "stdin:4\tRxd5\td1d5")
	assertContains(t, lines[2], "stdin:5\terror:")
	assertContains(t, errOut, "analysed 3 positions, 1 failed")
}

func TestAnalyseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	if err := os.WriteFile(path, []byte(engine.InitialFEN+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	code, out, _ := runCommand(t, "", "analyse", "-depth", "1", "-s", path)
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, out, path+":1\t")

	code, _, errOut := runCommand(t, "", "analyse", filepath.Join(t.TempDir(), "missing.txt"))
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	assertContains(t, errOut, "Error:")
}

func TestPlayRandomGame(t *testing.T) {
	code, out, errOut := runCommand(t, "", "play", "-white", "random", "-black", "random",
		"-maxply", "10", "-board=false", "-s")
	if code != exitOK {
		t.Fatalf("exit code = %d: %s", code, errOut)
	}
	assertContains(t, out, "1. ", "5... ", "stopped after 10 plies", "Result: *")
}

func TestPlayHumanGame(t *testing.T) {
	moves := "f3\ne5\ng4\nQh4\n"
	code, out, errOut := runCommand(t, moves, "play", "-white", "human", "-black", "human", "-board=false")
	if code != exitOK {
		t.Fatalf("exit code = %d: %s", code, errOut)
	}
	assertContains(t, out, "1. f3", "1... e5", "2... Qh4#", "Moves: f3 e5 g4 Qh4#", "Result: 0-1 (BlackWon)")
}

func TestPlayAgainstEngine(t *testing.T) {
	code, out, _ := runCommand(t, "e4\n", "play", "-depth", "1", "-s")
	if code != exitOK {
		t.Fatalf("exit code = %d", code)
	}
	assertContains(t, out, "1. e4", "1... ", "input closed", "Result: *")
}

func TestPlayBadPlayer(t *testing.T) {
	code, _, errOut := runCommand(t, "", "play", "-white", "oracle")
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	assertContains(t, errOut, `player "oracle"`)
}

func TestPlayRejectsKingCapturePosition(t *testing.T) {
	code, _, errOut := runCommand(t, "e7e8\n", "play", "-fen", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1",
		"-white", "human", "-board=false")
	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	assertContains(t, errOut, "Error:", "side not to move is in check")
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	writeBoard(&buf, chess.NewInitialPosition())
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "8  r n b q k b n r" {
		t.Errorf("rank 8 = %q", lines[0])
	}
	if lines[4] != "4  . . . . . . . ." {
		t.Errorf("rank 4 = %q", lines[4])
	}
	if lines[8] != "   a b c d e f g h" {
		t.Errorf("files = %q", lines[8])
	}
}

func TestPlayRecord(t *testing.T) {
	moves := "f3\ne5\ng4\nQh4\n"

	t.Run("pgn file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.pgn")
		code, _, errOut := runCommand(t, moves, "play", "-white", "human", "-black", "human",
			"-board=false", "-record", path)
		if code != exitOK {
			t.Fatalf("exit code = %d: %s", code, errOut)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		assertContains(t, string(data), `[White "human"]`, `[Result "0-1"]`, "1. f3 e5 2. g4 Qh4# 0-1")
	})

	t.Run("json stdout", func(t *testing.T) {
		code, out, _ := runCommand(t, moves, "play", "-white", "human", "-black", "human",
			"-board=false", "-record", "-", "-format", "json")
		if code != exitOK {
			t.Fatalf("exit code = %d", code)
		}
		assertContains(t, out, `"san": "Qh4#"`, `"result": "0-1"`)
	})

	t.Run("bad format", func(t *testing.T) {
		code, _, errOut := runCommand(t, "", "play", "-format", "xml")
		if code != exitError {
			t.Errorf("exit code = %d, want %d", code, exitError)
		}
		assertContains(t, errOut, "xml")
	})
}
