package engine

import "github.com/lgbarn/chessington-go/internal/chess"

// PieceMoves lists the candidate destinations of one placed piece.
type PieceMoves struct {
	From  chess.Square
	Piece *Piece
	Moves []chess.Square
}

// AllMoves returns candidate moves for every piece owned by player, in the
// board's row-major order. Pieces without moves are included with an empty
// Moves slice.
func AllMoves(b Lister, player chess.Player) ([]PieceMoves, error) {
	var result []PieceMoves
	for _, pl := range b.Pieces() {
		if pl.Piece.Player() != player {
			continue
		}
		moves, err := pl.Piece.AvailableMoves(b)
		if err != nil {
			return nil, err
		}
		result = append(result, PieceMoves{From: pl.Square, Piece: pl.Piece, Moves: moves})
	}
	return result, nil
}

// HasMoves returns true if any piece of player has at least one candidate move.
func HasMoves(b Lister, player chess.Player) (bool, error) {
	all, err := AllMoves(b, player)
	if err != nil {
		return false, err
	}
	for _, pm := range all {
		if len(pm.Moves) > 0 {
			return true, nil
		}
	}
	return false, nil
}
