package config

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/cache"
	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/output"
	"github.com/lgbarn/chessengine-go/internal/search"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want 3", cfg.Depth)
	}
	if cfg.CaptureDepth != 0 {
		t.Errorf("CaptureDepth = %d, want 0", cfg.CaptureDepth)
	}
	if !cfg.Parallel {
		t.Error("Parallel should be true by default")
	}
	if cfg.Iterative {
		t.Error("Iterative should be false by default")
	}
	if !cfg.Ordering {
		t.Error("Ordering should be true by default")
	}
	if cfg.Evaluator != "standard" {
		t.Errorf("Evaluator = %q, want standard", cfg.Evaluator)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     *NewSearchConfig(),
			wantErr: false,
		},
		{
			name:    "zero depth",
			cfg:     SearchConfig{Depth: 0, Evaluator: "standard"},
			wantErr: true,
		},
		{
			name:    "negative capture depth",
			cfg:     SearchConfig{Depth: 2, CaptureDepth: -1, Evaluator: "standard"},
			wantErr: true,
		},
		{
			name:    "unknown evaluator",
			cfg:     SearchConfig{Depth: 2, Evaluator: "oracle"},
			wantErr: true,
		},
		{
			name:    "material evaluator",
			cfg:     SearchConfig{Depth: 1, Evaluator: "material"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestCacheConfig verifies cache defaults and validation
func TestCacheConfig(t *testing.T) {
	cfg := NewCacheConfig()
	if !cfg.Enabled || cfg.Capacity != cache.DefaultCapacity {
		t.Errorf("CacheConfig = %+v, want enabled with default capacity", cfg)
	}
	testutil.AssertNoError(t, cfg.Validate())

	cfg.Capacity = 0
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)

	cfg.Enabled = false
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(logs)

	if cfg.Output.Writer != out {
		t.Error("SetOutput did not set Writer")
	}
	cfg.Logger("engine: ").Print("ready")
	testutil.AssertEqual(t, logs.String(), "engine: ready\n")
}

// TestConfig_Generator verifies the cache setting reaches the generator
func TestConfig_Generator(t *testing.T) {
	cfg := NewConfig()
	cfg.Cache.Capacity = 16
	gen := cfg.Generator()
	if gen.Cache() == nil {
		t.Fatal("enabled cache should back the generator")
	}
	testutil.AssertEqual(t, gen.Cache().Capacity(), 16)

	cfg.Cache.Enabled = false
	if cfg.Generator().Cache() != nil {
		t.Error("disabled cache should give an uncached generator")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var logs bytes.Buffer
	cfg, err := NewConfigBuilder().
		WithDepth(4).
		WithCaptureDepth(5).
		WithParallel(false).
		WithIterativeDeepening(true).
		WithMoveOrdering(false).
		WithEvaluator("material").
		WithCache(true, 1000).
		WithLog(&logs).
		WithVerbosity(2).
		ShowBoard(false).
		Build()
	testutil.AssertNoError(t, err)

	want := SearchConfig{Depth: 4, CaptureDepth: 5, Iterative: true, Evaluator: "material"}
	testutil.AssertEqual(t, cfg.Search, want)
	testutil.AssertEqual(t, cfg.Cache, CacheConfig{Enabled: true, Capacity: 1000})
	if cfg.Output.Verbosity != 2 || cfg.Output.ShowBoard {
		t.Errorf("Output = %+v, want verbosity 2 without board", cfg.Output)
	}
	if cfg.Output.LogFile != &logs {
		t.Error("WithLog did not set LogFile")
	}
}

// TestConfigBuilder_Invalid verifies Build rejects bad settings
func TestConfigBuilder_Invalid(t *testing.T) {
	_, err := NewConfigBuilder().WithDepth(0).Build()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = NewConfigBuilder().WithEvaluator("nope").Build()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

// TestConfig_Searcher verifies a configured searcher plays a sensible move
func TestConfig_Searcher(t *testing.T) {
	cfg, err := NewConfigBuilder().WithDepth(2).WithLog(&bytes.Buffer{}).Build()
	testutil.AssertNoError(t, err)

	s, err := cfg.Searcher(cfg.Generator())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, s.Depth(), 2)

	m, err := s.ChooseMove(context.Background(), engine.MustParseFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "a1a8")

	cfg.Search.Depth = 0
	_, err = cfg.Searcher(nil)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

// TestConfig_Picker verifies capture depth selects a dispatching picker
func TestConfig_Picker(t *testing.T) {
	var logs strings.Builder
	cfg, err := NewConfigBuilder().WithDepth(1).WithLog(&logs).Build()
	testutil.AssertNoError(t, err)

	p, err := cfg.Picker(nil)
	testutil.AssertNoError(t, err)
	if _, ok := p.(*search.Searcher); !ok {
		t.Errorf("Picker() = %T, want *search.Searcher", p)
	}

	cfg.Search.CaptureDepth = 2
	p, err = cfg.Picker(nil)
	testutil.AssertNoError(t, err)
	if _, ok := p.(*search.CapturePicker); !ok {
		t.Fatalf("Picker() = %T, want *search.CapturePicker", p)
	}

	m, err := p.PickMove(context.Background(), chess.NewInitialPosition())
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, engine.IsLegal(chess.NewInitialPosition(), m))
}

// TestOutputConfig verifies output defaults and validation
func TestOutputConfig(t *testing.T) {
	cfg := NewOutputConfig()
	if cfg.GameFormat != output.FormatPGN || cfg.MaxLineLength != output.DefaultLineLength {
		t.Errorf("OutputConfig = %+v, want PGN at default line length", cfg)
	}
	testutil.AssertNoError(t, cfg.Validate())

	cfg.GameFormat = "xml"
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)

	cfg.GameFormat = output.FormatJSON
	cfg.MaxLineLength = -1
	testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
}

// TestConfig_GameWriter verifies the configured format reaches the writer
func TestConfig_GameWriter(t *testing.T) {
	cfg, err := NewConfigBuilder().WithGameFormat(output.FormatJSON).WithMaxLineLength(60).Build()
	testutil.AssertNoError(t, err)

	w, err := cfg.GameWriter(&bytes.Buffer{})
	testutil.AssertNoError(t, err)
	if _, ok := w.(*output.JSONWriter); !ok {
		t.Errorf("GameWriter() = %T, want *output.JSONWriter", w)
	}
}
