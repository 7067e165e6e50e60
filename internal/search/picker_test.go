package search

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chessengine-go/internal/chess"
	"github.com/lgbarn/chessengine-go/internal/engine"
	"github.com/lgbarn/chessengine-go/internal/errors"
	"github.com/lgbarn/chessengine-go/internal/testutil"
)

func TestRandomPicker(t *testing.T) {
	p := chess.NewInitialPosition()
	a := NewRandomPicker(42, nil)
	b := NewRandomPicker(42, engine.NewGenerator(engine.NewMoveCache(8)))

	for i := 0; i < 10; i++ {
		ma, err := a.PickMove(context.Background(), p)
		testutil.AssertNoError(t, err)
		mb, err := b.PickMove(context.Background(), p)
		testutil.AssertNoError(t, err)
		if ma != mb {
			t.Fatalf("pick %d: %s vs %s; same seed should give the same moves", i, ma.UCI(), mb.UCI())
		}
		testutil.AssertTrue(t, engine.IsLegal(p, ma))
	}

	_, err := a.PickMove(context.Background(), engine.MustParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	testutil.AssertErrorIs(t, err, errors.ErrSearchFailed)
}

func fixedPicker(name string, calls *[]string) MovePicker {
	return PickerFunc(func(ctx context.Context, p *chess.Position) (chess.Move, error) {
		*calls = append(*calls, name)
		return engine.LegalMoves(p)[0], nil
	})
}

func TestCapturePicker(t *testing.T) {
	var calls []string
	picker := NewCapturePicker(fixedPicker("capture", &calls), fixedPicker("quiet", &calls), nil)

	_, err := picker.PickMove(context.Background(), chess.NewInitialPosition())
	testutil.AssertNoError(t, err)
	_, err = picker.PickMove(context.Background(), engine.MustParseFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1"))
	testutil.AssertNoError(t, err)
	_, err = picker.PickMove(context.Background(), engine.MustParseFEN("rnbqkbnr/ppp2ppp/4p3/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"))
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, calls, []string{"quiet", "capture", "capture"})
}

func TestCapturePickerWithSearchers(t *testing.T) {
	deep := newSearcher(t, 2)
	shallow := newSearcher(t, 1)
	picker := NewCapturePicker(deep, shallow, nil)

	m, err := picker.PickMove(context.Background(), engine.MustParseFEN("4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "d1d5")
}

func TestReaderPicker(t *testing.T) {
	input := "\nZz9\nNf3\n"
	var out strings.Builder
	picker := NewReaderPicker(strings.NewReader(input), &out, nil)

	m, err := picker.PickMove(context.Background(), chess.NewInitialPosition())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "g1f3")
	if !strings.Contains(out.String(), "Zz9") {
		t.Errorf("bad input was not reported: %q", out.String())
	}
	if strings.Count(out.String(), picker.Prompt) != 3 {
		t.Errorf("prompted %d times; want 3", strings.Count(out.String(), picker.Prompt))
	}

	_, err = picker.PickMove(context.Background(), chess.NewInitialPosition())
	testutil.AssertErrorIs(t, err, io.EOF)
}

func TestReaderPickerAcceptsUCI(t *testing.T) {
	picker := NewReaderPicker(strings.NewReader("e2e4\n"), io.Discard, nil)
	m, err := picker.PickMove(context.Background(), chess.NewInitialPosition())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.UCI(), "e2e4")
}

func TestHasCapture(t *testing.T) {
	p := chess.NewInitialPosition()
	testutil.AssertFalse(t, HasCapture(p, engine.LegalMoves(p)))
}
