package chesscore

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMove indicates a move string that is not four characters
	// of the form <fromFile><fromRank><toFile><toRank>, e.g. "e2e4".
	ErrMalformedMove = errors.New("chess: malformed move string")
	// ErrMalformedSquare indicates a square name outside a1-h8.
	ErrMalformedSquare = errors.New("chess: malformed square name")
	// ErrIllegalMove indicates a well-formed move that fails a legality rule.
	// Errors returned by the engine wrap it with the specific reason.
	ErrIllegalMove = errors.New("chess: illegal move")
	// ErrEmptyHistory indicates an undo request with no prior state recorded.
	ErrEmptyHistory = errors.New("chess: no moves to undo")
	// ErrNoPendingPromotion indicates a promotion request when no pawn is
	// awaiting promotion.
	ErrNoPendingPromotion = errors.New("chess: no promotion pending")
)

func illegalf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, a...))
}
