// processor.go - Board setup, move application and move listing
package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chessington-go/internal/board"
	"github.com/lgbarn/chessington-go/internal/chess"
	"github.com/lgbarn/chessington-go/internal/config"
	"github.com/lgbarn/chessington-go/internal/engine"
	"github.com/lgbarn/chessington-go/internal/errors"
)

// run loads the configured position, applies the configured relocations and
// writes the requested move listings to out.
func run(cfg *config.Config, out io.Writer, logger *zap.Logger) error {
	b, err := board.FromFEN(cfg.Position, board.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "loading position")
	}

	for _, mv := range cfg.Moves {
		if err := applyMove(b, mv); err != nil {
			return err
		}
	}

	for _, name := range cfg.Show {
		sq, err := chess.ParseSquare(name)
		if err != nil {
			return err
		}
		if err := showSquare(out, b, sq); err != nil {
			return err
		}
	}

	if cfg.Player != "" {
		player, ok := chess.ParsePlayer(cfg.Player)
		if !ok {
			return fmt.Errorf("player %q: %w", cfg.Player, errors.ErrInvalidConfig)
		}
		all, err := engine.AllMoves(b, player)
		if err != nil {
			return err
		}
		for _, pm := range all {
			fmt.Fprintln(out, formatMoves(pm.From, pm.Piece, pm.Moves))
		}
	}

	fmt.Fprintf(out, "fen: %s\n", b.FEN())
	return nil
}

// applyMove relocates the piece on the move's origin square. The move is
// not checked against the piece's candidate moves.
func applyMove(b *board.Board, mv string) error {
	from, to, err := chess.ParseMove(mv)
	if err != nil {
		return err
	}
	p, err := b.GetPiece(from)
	if err != nil {
		return err
	}
	if p == nil {
		return &errors.MoveError{Err: errors.ErrEmptySquare, From: from.String(), To: to.String()}
	}
	return p.MoveTo(b, to)
}

func showSquare(out io.Writer, b *board.Board, sq chess.Square) error {
	p, err := b.GetPiece(sq)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintf(out, "%s: empty\n", sq)
		return nil
	}
	moves, err := p.AvailableMoves(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatMoves(sq, p, moves))
	return nil
}

// formatMoves renders one listing line, e.g. "e2 White Pawn: e3 e4".
func formatMoves(sq chess.Square, p *engine.Piece, moves []chess.Square) string {
	if len(moves) == 0 {
		return fmt.Sprintf("%s %s: -", sq, p)
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return fmt.Sprintf("%s %s: %s", sq, p, strings.Join(names, " "))
}
