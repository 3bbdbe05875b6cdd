package engine_test

import (
	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/engine"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// recordingBoard is a minimal Board that remembers every occupancy query.
type recordingBoard struct {
	pieces  map[chess.Square]*engine.Piece
	queries []chess.Square
	moves   int
}

func newRecordingBoard() *recordingBoard {
	return &recordingBoard{pieces: make(map[chess.Square]*engine.Piece)}
}

func (b *recordingBoard) place(sq chess.Square, p *engine.Piece) *engine.Piece {
	b.pieces[sq] = p
	return p
}

func (b *recordingBoard) FindPiece(p *engine.Piece) (chess.Square, error) {
	for sq, candidate := range b.pieces {
		if candidate == p {
			return sq, nil
		}
	}
	return chess.Square{}, errors.ErrPieceNotFound
}

func (b *recordingBoard) SquareEmpty(sq chess.Square) (bool, error) {
	b.queries = append(b.queries, sq)
	if !sq.Valid() {
		return false, errors.ErrInvalidCoordinate
	}
	_, occupied := b.pieces[sq]
	return !occupied, nil
}

func (b *recordingBoard) MovePiece(from, to chess.Square) error {
	p, ok := b.pieces[from]
	if !ok {
		return errors.ErrEmptySquare
	}
	if !to.Valid() {
		return errors.ErrInvalidCoordinate
	}
	delete(b.pieces, from)
	b.pieces[to] = p
	b.moves++
	return nil
}
