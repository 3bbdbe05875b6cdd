package engine

import "github.com/lgbarn/chessington-go/internal/chess"

// knightOffsets holds the four base (row, col) jumps. Each is tried as-is
// and then negated, which covers all eight knight moves.
var knightOffsets = [][2]int{{-2, 1}, {-1, 2}, {1, 2}, {2, 1}}

// knightMoves returns every on-board knight jump from from. Occupancy is
// not consulted.
func knightMoves(from chess.Square) []chess.Square {
	moves := make([]chess.Square, 0, 8)
	for _, offset := range knightOffsets {
		if to, ok := from.Offset(offset[0], offset[1]); ok {
			moves = append(moves, to)
		}
		if to, ok := from.Offset(-offset[0], -offset[1]); ok {
			moves = append(moves, to)
		}
	}
	return moves
}
