package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/engine"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// StartingFEN is the placement field of the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// FromFEN creates a board from a FEN string. Only the piece placement field
// is read; side to move, castling and clocks are ignored. Every piece starts
// unmoved.
func FromFEN(fen string, opts ...Option) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	b := New(opts...)
	if err := parsePiecePositions(b, parts[0]); err != nil {
		return nil, err
	}
	return b, nil
}

// parsePiecePositions fills b from the placement field, rank 8 first.
func parsePiecePositions(b *Board, positions string) error {
	row := chess.BoardSize - 1
	col := 0

	fenError := func(offset int, expected, got string) error {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Offset: offset, Expected: expected, Got: got}
	}

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fenError(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
			row--
			col = 0
			if row < 0 {
				return fenError(i, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fenError(i, "8 squares in rank", fmt.Sprintf("%d", col))
			}
		default:
			kind, ok := chess.KindFromLetter(c)
			if !ok {
				return fenError(i, "piece letter or digit", string(c))
			}
			if col >= chess.BoardSize {
				return fenError(i, "8 squares in rank", "more")
			}

			player := chess.White
			if unicode.IsLower(rune(c)) {
				player = chess.Black
			}
			b.squares[row][col] = engine.New(kind, player)
			col++
		}
	}

	if row != 0 || col != chess.BoardSize {
		return fenError(len(positions), "8 ranks of 8 squares", "end of input")
	}
	return nil
}

// FEN returns the piece placement field for the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := b.squares[row][col]
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
