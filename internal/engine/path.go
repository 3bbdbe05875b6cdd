package engine

import "github.com/lgbarn/chessington-go/internal/chess"

// slidingMoves generates moves for bishops, rooks and queens.
// Not implemented yet: always empty.
// TODO: step along each direction until off-board or blocked.
func slidingMoves(from chess.Square) []chess.Square {
	return []chess.Square{}
}

// kingMoves generates king moves. Not implemented yet: always empty.
func kingMoves(from chess.Square) []chess.Square {
	return []chess.Square{}
}
