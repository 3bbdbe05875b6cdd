package chess

import (
	"fmt"

	"github.com/lgbarn/chessington-go/internal/errors"
)

// Square is a board coordinate. Row 0 is White's back row and column 0 is
// the a-file. Squares compare equal iff row and column match.
type Square struct {
	Row int
	Col int
}

// At returns the square at row, col. Both must lie in [0, BoardSize).
func At(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square (%d, %d): %w", row, col, errors.ErrInvalidCoordinate)
	}
	return sq, nil
}

// MustAt is like At but panics on invalid coordinates.
// Intended for constant tables and tests.
func MustAt(row, col int) Square {
	sq, err := At(row, col)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return inRange(s.Row) && inRange(s.Col)
}

// Offset returns the square dRow rows and dCol columns away, and whether it
// is on the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	next := Square{Row: s.Row + dRow, Col: s.Col + dCol}
	return next, next.Valid()
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + s.Col), byte('1' + s.Row)})
}

// ParseSquare converts an algebraic square name ("a1".."h8") to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: name, Expected: "file and rank"}
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: name, Offset: 0, Expected: "file a-h", Got: string(file)}
	}
	if rank < '1' || rank > '8' {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: name, Offset: 1, Expected: "rank 1-8", Got: string(rank)}
	}
	return Square{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

func inRange(v int) bool {
	return v >= 0 && v < BoardSize
}

// ParseMove splits a coordinate move such as "e2e4" into its two squares.
func ParseMove(move string) (from, to Square, err error) {
	if len(move) != 4 {
		return Square{}, Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: move, Expected: "two squares, e.g. e2e4"}
	}
	if from, err = ParseSquare(move[:2]); err != nil {
		return Square{}, Square{}, err
	}
	if to, err = ParseSquare(move[2:]); err != nil {
		return Square{}, Square{}, err
	}
	return from, to, nil
}
