package board

// Status classifies the game for the side about to move. It is derived, not
// stored on the board; recompute after every committed move.
type Status uint8

const (
	// StatusUnknown is when the game status is unknown.
	StatusUnknown Status = iota

	// StatusNormal is when the mover has a legal move and its King is safe.
	StatusNormal

	// StatusCheck is when the mover's King is attacked but a legal move exists.
	StatusCheck

	// StatusCheckmate is when the mover's King is attacked and no legal move exists.
	StatusCheckmate

	// StatusStalemate is when the mover has no legal move but its King is safe.
	StatusStalemate

	// StatusInsufficientMaterial is when neither side can force a checkmate.
	StatusInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusCheck:
		return "Check"
	case StatusCheckmate:
		return "Checkmate"
	case StatusStalemate:
		return "Stalemate"
	case StatusInsufficientMaterial:
		return "InsufficientMaterial"
	default:
		return ""
	}
}

// IsGameOver reports whether the status terminates the game.
func (s Status) IsGameOver() bool {
	switch s {
	case StatusCheckmate, StatusStalemate, StatusInsufficientMaterial:
		return true
	default:
		return false
	}
}

// Classify determines the status for the given side to move from two facts:
// whether at least one legal move exists and whether the King is unsafe.
func (b *Board) Classify(s Side) Status {
	if b.insufficientMaterial() {
		return StatusInsufficientMaterial
	}

	hasMove := b.HasLegalMove(s)
	kingUnsafe := false
	if king, ok := b.king(s); ok {
		kingUnsafe = !b.IsSquareSafe(s, king)
	}

	switch {
	case !hasMove && !kingUnsafe:
		return StatusStalemate
	case !hasMove && kingUnsafe:
		return StatusCheckmate
	case hasMove && kingUnsafe:
		return StatusCheck
	default:
		return StatusNormal
	}
}

// insufficientMaterial reports whether no side retains mating material:
// bare Kings, or King versus King with a single minor piece.
func (b *Board) insufficientMaterial() bool {
	var minors int
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			t := b.tiles[y][x]
			switch t.Piece.Kind {
			case PieceUnknown, PieceKing:
			case PieceBishop, PieceKnight:
				minors++
			default:
				return false
			}
		}
	}
	return minors <= 1
}
