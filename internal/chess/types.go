// Package chess provides core chess types shared by the move generator
// and the board.
package chess

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Player identifies the owner of a piece.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other player.
func (p Player) Opposite() Player {
	if p == White {
		return Black
	}
	return White
}

// Direction returns the row step of a pawn move: +1 for White, -1 for Black.
// Rows grow toward Black's side of the board.
func (p Player) Direction() int {
	if p == White {
		return 1
	}
	return -1
}

// ParsePlayer converts "white"/"black" (any case, or "w"/"b") to a Player.
func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, true
	case "black", "Black", "BLACK", "b", "B":
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a Kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return Pawn, false
}
