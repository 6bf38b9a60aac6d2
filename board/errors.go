package board

import "errors"

var (
	// ErrInvalidMove is returned when the origin is empty, not owned by the
	// mover, or the destination is not in the piece's legal set.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidCastle is returned when any castling precondition fails.
	ErrInvalidCastle = errors.New("invalid castle")

	// ErrInvalidEnPassant is returned when an en passant capture is not available.
	ErrInvalidEnPassant = errors.New("invalid en passant")

	// ErrInvalidPromotion is returned when a pawn promotion is malformed.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrPromotionPending is returned by turn-taking while an unresolved
	// promotion blocks all other moves.
	ErrPromotionPending = errors.New("promotion pending")
)
