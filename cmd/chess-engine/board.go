package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessengine-go/internal/chess"
)

// writeBoard draws p as text, rank 8 at the top, with '.' for empty squares.
func writeBoard(w io.Writer, p *chess.Position) {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			letter := byte('.')
			if piece, ok := p.PieceAt(chess.MakeSquare(rank, file)); ok {
				letter = piece.FENLetter()
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	io.WriteString(w, sb.String())
}
