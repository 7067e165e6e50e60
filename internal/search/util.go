package search

import (
	"sort"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

func sortByUCI(moves []chess.Move) {
	sort.Slice(moves, func(i, j int) bool {
		return moves[i].UCI() < moves[j].UCI()
	})
}
