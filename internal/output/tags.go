package output

import (
	"sort"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/engine"
	"golang.org/x/exp/slices"
)

// SevenTagRoster lists the PGN tags every exported game carries, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Tags are PGN header pairs.
type Tags map[string]string

// gameTags returns t completed for game: missing roster tags become "?",
// Result follows the game state, and a non-standard start adds SetUp and FEN.
func gameTags(t Tags, game *engine.Game) Tags {
	out := make(Tags, len(t)+len(SevenTagRoster)+2)
	for k, v := range t {
		out[k] = v
	}
	for _, tag := range SevenTagRoster {
		if out[tag] == "" {
			out[tag] = "?"
		}
	}
	out["Result"] = game.Result()
	if game.StartFEN() != engine.InitialFEN {
		out["SetUp"] = "1"
		out["FEN"] = game.StartFEN()
	}
	return out
}

// ordered returns the roster tags first, then the rest alphabetically.
func (t Tags) ordered() []string {
	names := make([]string, 0, len(t))
	names = append(names, SevenTagRoster...)
	var extra []string
	for name := range t {
		if !slices.Contains(SevenTagRoster, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
