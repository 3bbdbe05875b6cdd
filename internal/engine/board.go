package engine

import "github.com/lgbarn/chessington-go/internal/chess"

// Board is the query surface the move generator needs from board storage.
// Implementations own the square-to-piece mapping.
type Board interface {
	// FindPiece returns the square currently holding p.
	// It fails with errors.ErrPieceNotFound when p is not placed.
	FindPiece(p *Piece) (chess.Square, error)

	// SquareEmpty reports whether sq holds no piece.
	// It fails with errors.ErrInvalidCoordinate for off-board squares.
	SquareEmpty(sq chess.Square) (bool, error)

	// MovePiece relocates the occupant of from onto to, replacing
	// anything already on to.
	MovePiece(from, to chess.Square) error
}

// Placement pairs a piece with the square it stands on.
type Placement struct {
	Square chess.Square
	Piece  *Piece
}

// Lister is a Board that can enumerate its pieces.
type Lister interface {
	Board

	// Pieces returns every placed piece in row-major order.
	Pieces() []Placement
}
