// Package engine generates candidate destination squares for chess pieces
// under simplified movement rules: no check detection, castling,
// en passant or promotion.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// Piece is a chess piece owned by one player. Pieces are identified by
// pointer; a board locates a piece by identity, not by kind and colour.
type Piece struct {
	kind     chess.Kind
	player   chess.Player
	hasMoved bool
}

// New creates an unmoved piece of the given kind.
func New(kind chess.Kind, player chess.Player) *Piece {
	return &Piece{kind: kind, player: player}
}

func NewPawn(player chess.Player) *Piece   { return New(chess.Pawn, player) }
func NewKnight(player chess.Player) *Piece { return New(chess.Knight, player) }
func NewBishop(player chess.Player) *Piece { return New(chess.Bishop, player) }
func NewRook(player chess.Player) *Piece   { return New(chess.Rook, player) }
func NewQueen(player chess.Player) *Piece  { return New(chess.Queen, player) }
func NewKing(player chess.Player) *Piece   { return New(chess.King, player) }

// Kind returns the piece type.
func (p *Piece) Kind() chess.Kind { return p.kind }

// Player returns the owner of the piece.
func (p *Piece) Player() chess.Player { return p.player }

// HasMoved reports whether the piece has left its starting square.
func (p *Piece) HasMoved() bool { return p.hasMoved }

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.player == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a description such as "White Knight".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.player, p.kind)
}

// AvailableMoves returns the squares the piece could move to on b.
// Neither the piece nor the board is modified. The result is never nil.
func (p *Piece) AvailableMoves(b Board) ([]chess.Square, error) {
	from, err := b.FindPiece(p)
	if err != nil {
		return nil, &errors.MoveError{Err: err, Piece: p.String()}
	}

	switch p.kind {
	case chess.Pawn:
		return p.pawnMoves(b, from)
	case chess.Knight:
		return knightMoves(from), nil
	case chess.Bishop, chess.Rook, chess.Queen:
		return slidingMoves(from), nil
	case chess.King:
		return kingMoves(from), nil
	}
	return []chess.Square{}, nil
}

// MoveTo relocates the piece to dst and marks it as moved. The destination
// is not checked against AvailableMoves; that is the caller's job.
// When the piece is not on b, or b rejects the relocation, nothing changes.
func (p *Piece) MoveTo(b Board, dst chess.Square) error {
	from, err := b.FindPiece(p)
	if err != nil {
		return &errors.MoveError{Err: err, Piece: p.String(), To: dst.String()}
	}
	if err := b.MovePiece(from, dst); err != nil {
		return &errors.MoveError{Err: err, Piece: p.String(), From: from.String(), To: dst.String()}
	}
	p.hasMoved = true
	return nil
}
