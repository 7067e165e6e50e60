// chess-engine plays, analyses and verifies chess positions from the command line.
package main

import (
	"fmt"
	"io"
	"os"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command is one subcommand. run receives the arguments after its name.
type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) int
}

var commands = []command{
	{"play", "play a game between humans, the engine or a random mover", runPlay},
	{"bestmove", "print the engine's move for a position", runBestMove},
	{"perft", "count move-tree leaves, optionally checked against a reference generator", runPerft},
	{"analyse", "find best moves for a list of FEN positions in parallel", runAnalyse},
	{"moves", "list the legal moves of a position", runMoves},
}

// environment holds the process streams so commands can be driven from tests.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	env := &environment{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(run(env, os.Args[1:]))
}

func run(env *environment, args []string) int {
	if len(args) == 0 {
		usage(env.stderr)
		return exitUsage
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		usage(env.stdout)
		return exitOK
	case "-version", "--version", "version":
		fmt.Fprintf(env.stdout, "chess-engine version %s\n", programVersion)
		return exitOK
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(env, args[1:])
		}
	}
	fmt.Fprintf(env.stderr, "unknown command %q\n\n", args[0])
	usage(env.stderr)
	return exitUsage
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chess-engine <command> [options]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, "\nRun 'chess-engine <command> -h' for the options of a command.\n")
}

// fail reports err on stderr and returns the error exit code.
func fail(env *environment, err error) int {
	fmt.Fprintf(env.stderr, "Error: %v\n", err)
	return exitError
}
