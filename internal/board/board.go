// Package board provides an 8x8 square-to-piece mapping that satisfies the
// engine's Board contract.
package board

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/engine"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// Board stores which piece stands on each square.
// board[row][col], row 0 being White's back row.
// A Board is not safe for concurrent use.
type Board struct {
	squares [chess.BoardSize][chess.BoardSize]*engine.Piece
	id      string
	logger  *zap.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger used for relocation events.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		id:     uuid.NewString(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewStartingBoard creates a board set up in the standard initial position.
func NewStartingBoard(opts ...Option) *Board {
	b := New(opts...)
	backRank := []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for col := 0; col < chess.BoardSize; col++ {
		b.squares[0][col] = engine.New(backRank[col], chess.White)
		b.squares[1][col] = engine.NewPawn(chess.White)
		b.squares[6][col] = engine.NewPawn(chess.Black)
		b.squares[7][col] = engine.New(backRank[col], chess.Black)
	}
	return b
}

// ID returns the identifier attached to this board's log entries.
func (b *Board) ID() string {
	return b.id
}

// SetPiece places p on sq, replacing any occupant. A nil p clears the square.
func (b *Board) SetPiece(sq chess.Square, p *engine.Piece) error {
	if !sq.Valid() {
		return invalidSquare(sq)
	}
	b.squares[sq.Row][sq.Col] = p
	return nil
}

// GetPiece returns the piece on sq, or nil if the square is empty.
func (b *Board) GetPiece(sq chess.Square) (*engine.Piece, error) {
	if !sq.Valid() {
		return nil, invalidSquare(sq)
	}
	return b.squares[sq.Row][sq.Col], nil
}

// FindPiece returns the square holding p.
func (b *Board) FindPiece(p *engine.Piece) (chess.Square, error) {
	if p != nil {
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				if b.squares[row][col] == p {
					return chess.Square{Row: row, Col: col}, nil
				}
			}
		}
	}
	return chess.Square{}, errors.ErrPieceNotFound
}

// SquareEmpty reports whether sq holds no piece.
func (b *Board) SquareEmpty(sq chess.Square) (bool, error) {
	if !sq.Valid() {
		return false, invalidSquare(sq)
	}
	return b.squares[sq.Row][sq.Col] == nil, nil
}

// MovePiece relocates the piece on from to to. Whatever stood on to is
// removed from the board.
func (b *Board) MovePiece(from, to chess.Square) error {
	if !from.Valid() {
		return invalidSquare(from)
	}
	if !to.Valid() {
		return invalidSquare(to)
	}
	piece := b.squares[from.Row][from.Col]
	if piece == nil {
		return errors.Wrapf(errors.ErrEmptySquare, "square %s", from)
	}
	captured := b.squares[to.Row][to.Col]

	b.squares[from.Row][from.Col] = nil
	b.squares[to.Row][to.Col] = piece

	b.logger.Debug("piece moved",
		zap.String("board", b.id),
		zap.Stringer("piece", piece),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Bool("captured", captured != nil && captured != piece),
	)
	return nil
}

// Pieces returns every placed piece in row-major order, starting at a1.
func (b *Board) Pieces() []engine.Placement {
	var placements []engine.Placement
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				placements = append(placements, engine.Placement{
					Square: chess.Square{Row: row, Col: col},
					Piece:  p,
				})
			}
		}
	}
	return placements
}

// Copy returns a board with the same placement. Pieces are shared, so
// moving a piece on the copy also marks the original's piece as moved.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.id = uuid.NewString()
	return newBoard
}

func invalidSquare(sq chess.Square) error {
	return fmt.Errorf("square (%d, %d): %w", sq.Row, sq.Col, errors.ErrInvalidCoordinate)
}
