package testutil

import (
	"testing"

	"github.com/lgbarn/chessington-go/internal/board"
	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/engine"
)

// MustBoard builds a board from a FEN placement.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t *testing.T, fen string, opts ...board.Option) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("FromFEN(%q) error: %v", fen, err)
	}
	return b
}

// MustPlace puts p on the named square ("e2") and returns p.
func MustPlace(t *testing.T, b *board.Board, name string, p *engine.Piece) *engine.Piece {
	t.Helper()
	if err := b.SetPiece(MustSquare(t, name), p); err != nil {
		t.Fatalf("SetPiece(%s) error: %v", name, err)
	}
	return p
}

// MustSquare parses an algebraic square name.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// Squares parses algebraic square names, panicking on bad input.
// Intended for test tables.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			panic(err)
		}
		squares = append(squares, sq)
	}
	return squares
}
