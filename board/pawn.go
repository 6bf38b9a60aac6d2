package board

import (
	"fmt"

	"github.com/caissa-chess/caissa/position"
)

// Lunge advances a pawn two squares and sets its just-lunged flag,
// unconditionally; callers validate with CheckMove first.
func (b *Board) Lunge(c position.Coord) {
	p := b.At(c).Piece
	end := c.Offset(0, 2*p.Side.Forward())
	b.MovePiece(c, end)

	p = b.At(end).Piece
	p.JustLunged = true
	b.Place(end, p)
}

// ClearLungeFlags resets every pawn's just-lunged flag. Invoked at the start
// of resolving each move, so the flag survives exactly one opposing ply.
func (b *Board) ClearLungeFlags() {
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			t := b.tiles[y][x]
			if t.Piece.JustLunged {
				t.Piece.JustLunged = false
				b.tiles[y][x] = t
			}
		}
	}
}

// CheckEnPassant verifies that the player's own pawn at the given coordinate
// may capture en passant towards dx (-1 or +1): the adjacent piece in that
// direction must be an enemy pawn with its just-lunged flag still set.
func (b *Board) CheckEnPassant(s Side, pawn position.Coord, dx int8) error {
	t := b.At(pawn)
	if !t.HoldsSide(s) || t.Piece.Kind != PiecePawn {
		return fmt.Errorf("%w: %s does not hold an eligible %s pawn", ErrInvalidEnPassant, pawn, s)
	}

	target := pawn.Offset(dx, 0)
	if !target.Valid() {
		return fmt.Errorf("%w: no adjacent pawn at %s", ErrInvalidEnPassant, target)
	}
	tt := b.At(target)
	if !tt.HoldsSide(s.Opposite()) || tt.Piece.Kind != PiecePawn || !tt.Piece.JustLunged {
		return fmt.Errorf("%w: %s does not hold a just-lunged enemy pawn", ErrInvalidEnPassant, target)
	}
	return nil
}

// EnPassant moves the capturing pawn and removes the captured pawn sitting
// one rank behind the destination, relative to the mover's direction.
// Callers validate with CheckEnPassant first. Returns the captured pawn.
func (b *Board) EnPassant(start, end position.Coord) Piece {
	s := b.At(start).Piece.Side
	b.MovePiece(start, end)

	capturedPos := end.Offset(0, -s.Forward())
	captured := b.At(capturedPos).Piece
	b.Remove(capturedPos)
	return captured
}

// PawnNeedingPromotion scans the two far ranks for a pawn that has reached
// the edge of the board.
func (b *Board) PawnNeedingPromotion() (position.Coord, bool) {
	for _, s := range []Side{SideWhite, SideBlack} {
		rank := s.PromotionRank()
		for x := int8(0); x < Width; x++ {
			c := position.Coord{X: x, Y: rank}
			if t := b.At(c); t.HoldsSide(s) && t.Piece.Kind == PiecePawn {
				return c, true
			}
		}
	}
	return position.Coord{}, false
}

// CheckPromotion verifies that the given tile holds a pawn at its promotion
// rank and that the target kind is promotable.
func (b *Board) CheckPromotion(c position.Coord, kind PieceKind) error {
	t := b.At(c)
	if !t.Occupied() || t.Piece.Kind != PiecePawn {
		return fmt.Errorf("%w: no pawn at %s", ErrInvalidPromotion, c)
	}
	if c.Y != t.Piece.Side.PromotionRank() {
		return fmt.Errorf("%w: %s is not at the promotion rank", ErrInvalidPromotion, c)
	}
	if kind == PiecePawn || kind == PieceKing || kind == PieceUnknown {
		return fmt.Errorf("%w: cannot promote to %s", ErrInvalidPromotion, kind)
	}
	return nil
}

// Promote replaces the pawn at the given tile with the target kind.
func (b *Board) Promote(c position.Coord, kind PieceKind) error {
	if err := b.CheckPromotion(c, kind); err != nil {
		return err
	}
	p := b.At(c).Piece
	p.Kind = kind
	p.JustLunged = false
	b.Place(c, p)
	return nil
}
