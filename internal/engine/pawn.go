package engine

import "github.com/lgbarn/chessington-go/internal/chess"

// pawnMoves returns the forward steps of a pawn standing on from.
// Captures are not generated. Forward squares are bounds-checked before the
// board is queried, so a pawn on its last row simply has no moves.
func (p *Piece) pawnMoves(b Board, from chess.Square) ([]chess.Square, error) {
	moves := []chess.Square{}
	dir := p.player.Direction()

	one, ok := from.Offset(dir, 0)
	if !ok {
		return moves, nil
	}
	empty, err := b.SquareEmpty(one)
	if err != nil {
		return nil, err
	}
	if !empty {
		return moves, nil
	}
	moves = append(moves, one)

	if p.hasMoved {
		return moves, nil
	}
	two, ok := from.Offset(2*dir, 0)
	if !ok {
		return moves, nil
	}
	empty, err = b.SquareEmpty(two)
	if err != nil {
		return nil, err
	}
	if empty {
		moves = append(moves, two)
	}
	return moves, nil
}
