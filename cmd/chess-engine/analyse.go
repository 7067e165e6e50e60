package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/worker"
)

// runAnalyse finds the best move of every FEN in a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func runAnalyse(env *environment, args []string) int {
	cfg := newConfig(env)
	// A single-position search parallelises itself; across many positions
	// the pool does.
	cfg.Search.Parallel = false
	fs := newFlagSet(env, "analyse", "[file]")
	var ef engineFlags
	ef.register(fs, cfg)
	workers := fs.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	if ok, code := parseFlags(fs, args); !ok {
		return code
	}
	closer, err := ef.apply(cfg)
	if err != nil {
		return fail(env, err)
	}
	defer closer.Close()

	name := "-"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	jobs, err := loadJobs(env, name)
	if err != nil {
		return fail(env, err)
	}

	gen := cfg.Generator()
	s, err := cfg.Searcher(gen)
	if err != nil {
		return fail(env, err)
	}

	numWorkers := *workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := worker.Run(ctx, jobs, worker.SearchFunc(s, gen),
		worker.WithWorkers(numWorkers), worker.WithBufferSize(2*numWorkers))

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(env.stdout, "%s\terror: %v\n", r.Label, r.Error)
			continue
		}
		fmt.Fprintf(env.stdout, "%s\t%s\t%s\t%.2f\n", r.Label, r.SAN, r.Move.UCI(), r.Score)
	}
	if cfg.Output.Verbosity > 0 {
		cfg.Logger("").Printf("analysed %d positions, %d failed", len(results), failed)
	}
	if err != nil {
		return fail(env, err)
	}
	if failed > 0 {
		return exitError
	}
	return exitOK
}

// loadJobs reads FEN lines from the named file, or stdin for "-".
func loadJobs(env *environment, name string) ([]worker.Job, error) {
	var in io.Reader = env.stdin
	label := "stdin"
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in, label = f, name
	}

	var jobs []worker.Job
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		jobs = append(jobs, worker.Job{
			Index: len(jobs),
			Label: fmt.Sprintf("%s:%d", label, line),
			FEN:   text,
		})
	}
	return jobs, scanner.Err()
}
