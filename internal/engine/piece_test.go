package engine_test

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessington-go/internal/board"
	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/engine"
	chesserrors "github.com/lgbarn/chessington-go/internal/errors"
	"github.com/lgbarn/chessington-go/internal/testutil"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		piece  *engine.Piece
		kind   chess.Kind
		player chess.Player
		letter byte
		desc   string
	}{
		{"white pawn", engine.NewPawn(chess.White), chess.Pawn, chess.White, 'P', "White Pawn"},
		{"black knight", engine.NewKnight(chess.Black), chess.Knight, chess.Black, 'n', "Black Knight"},
		{"white bishop", engine.NewBishop(chess.White), chess.Bishop, chess.White, 'B', "White Bishop"},
		{"black rook", engine.NewRook(chess.Black), chess.Rook, chess.Black, 'r', "Black Rook"},
		{"white queen", engine.NewQueen(chess.White), chess.Queen, chess.White, 'Q', "White Queen"},
		{"black king", engine.NewKing(chess.Black), chess.King, chess.Black, 'k', "Black King"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.piece.Kind(), tt.kind)
			testutil.AssertEqual(t, tt.piece.Player(), tt.player)
			testutil.AssertEqual(t, tt.piece.Letter(), tt.letter)
			testutil.AssertEqual(t, tt.piece.String(), tt.desc)
			testutil.AssertFalse(t, tt.piece.HasMoved(), "new pieces start unmoved")
		})
	}
}

func TestMoveTo(t *testing.T) {
	b := board.New()
	knight := engine.NewKnight(chess.White)
	start := chess.MustAt(0, 1)
	dst := chess.MustAt(2, 2)
	testutil.AssertNoError(t, b.SetPiece(start, knight))

	testutil.AssertNoError(t, knight.MoveTo(b, dst))
	testutil.AssertTrue(t, knight.HasMoved())

	empty, err := b.SquareEmpty(start)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, empty, "origin square should be vacated")

	at, err := b.FindPiece(knight)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, at, dst)

	moves, err := knight.AvailableMoves(b)
	testutil.AssertNoError(t, err)
	testutil.AssertSquaresMatch(t, moves, testutil.Squares("d1", "b5", "e2", "a4", "e4", "a2", "d5", "b1"))
}

func TestMoveTo_HasMovedNeverResets(t *testing.T) {
	b := board.New()
	rook := testutil.MustPlace(t, b, "a1", engine.NewRook(chess.White))

	testutil.AssertNoError(t, rook.MoveTo(b, testutil.MustSquare(t, "a4")))
	testutil.AssertNoError(t, rook.MoveTo(b, testutil.MustSquare(t, "a1")))
	testutil.AssertTrue(t, rook.HasMoved(), "returning to the start square keeps the piece moved")
}

func TestMoveTo_DoesNotValidateDestination(t *testing.T) {
	b := board.New()
	pawn := testutil.MustPlace(t, b, "e2", engine.NewPawn(chess.White))

	testutil.AssertNoError(t, pawn.MoveTo(b, testutil.MustSquare(t, "a8")))
	at, err := b.FindPiece(pawn)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, at.String(), "a8")
}

func TestMoveTo_Capture(t *testing.T) {
	b := board.New()
	knight := testutil.MustPlace(t, b, "b1", engine.NewKnight(chess.White))
	victim := testutil.MustPlace(t, b, "c3", engine.NewPawn(chess.Black))

	testutil.AssertNoError(t, knight.MoveTo(b, testutil.MustSquare(t, "c3")))
	_, err := b.FindPiece(victim)
	testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound, "captured piece leaves the board")
}

func TestMoveTo_PieceNotOnBoard(t *testing.T) {
	b := board.NewStartingBoard()
	before := b.FEN()
	stray := engine.NewQueen(chess.White)

	err := stray.MoveTo(b, testutil.MustSquare(t, "d4"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound)

	var moveErr *chesserrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("error %v is not a MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.To, "d4")
	testutil.AssertFalse(t, stray.HasMoved(), "failed move must not mark the piece as moved")
	testutil.AssertEqual(t, b.FEN(), before, "failed move must not touch the board")
}

func TestMoveTo_BoardRejectsDestination(t *testing.T) {
	b := newRecordingBoard()
	pawn := b.place(chess.MustAt(1, 0), engine.NewPawn(chess.White))

	err := pawn.MoveTo(b, chess.Square{Row: 1, Col: -1})
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidCoordinate)
	testutil.AssertFalse(t, pawn.HasMoved())
	testutil.AssertEqual(t, b.moves, 0)
}

func TestAvailableMoves_PieceNotOnBoard(t *testing.T) {
	b := board.NewStartingBoard()
	for k := chess.Pawn; k < chess.NumKinds; k++ {
		t.Run(k.String(), func(t *testing.T) {
			moves, err := engine.New(k, chess.Black).AvailableMoves(b)
			testutil.AssertErrorIs(t, err, chesserrors.ErrPieceNotFound)
			if moves != nil {
				t.Errorf("moves = %v; want nil on error", moves)
			}
		})
	}
}

func TestPieces_IdentifiedByPointer(t *testing.T) {
	b := board.New()
	left := testutil.MustPlace(t, b, "a2", engine.NewPawn(chess.White))
	right := testutil.MustPlace(t, b, "h2", engine.NewPawn(chess.White))

	testutil.AssertNoError(t, right.MoveTo(b, testutil.MustSquare(t, "h3")))
	testutil.AssertFalse(t, left.HasMoved(), "moving one pawn must not affect an identical pawn")

	moves, err := left.AvailableMoves(b)
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, moves, testutil.Squares("a3", "a4"))
}
