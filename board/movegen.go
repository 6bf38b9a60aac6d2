package board

import (
	"fmt"

	"github.com/caissa-chess/caissa/position"
)

type offset struct {
	dx, dy int8
}

var (
	offsetsKnight = []offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	offsetsKing = []offset{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	raysBishop = []offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	raysRook   = []offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

// PseudoDestinations enumerates the destinations reachable from the given
// tile under the occupant's movement pattern, ignoring king safety. Castling,
// en passant and promotion are handled as higher-level concerns and never
// appear here.
func (b *Board) PseudoDestinations(c position.Coord) []position.Coord {
	t := b.At(c)
	if !t.Occupied() {
		return nil
	}

	p := t.Piece
	switch p.Kind {
	case PiecePawn:
		return b.pawnDestinations(c, p)
	case PieceKnight:
		return b.offsetDestinations(c, p.Side, offsetsKnight)
	case PieceKing:
		return b.offsetDestinations(c, p.Side, offsetsKing)
	case PieceBishop:
		return b.rayDestinations(c, p.Side, raysBishop)
	case PieceRook:
		return b.rayDestinations(c, p.Side, raysRook)
	case PieceQueen:
		return append(b.rayDestinations(c, p.Side, raysBishop), b.rayDestinations(c, p.Side, raysRook)...)
	default:
		return nil
	}
}

func (b *Board) pawnDestinations(c position.Coord, p Piece) []position.Coord {
	var dsts []position.Coord
	fwd := p.Side.Forward()

	if one := c.Offset(0, fwd); one.Valid() && !b.At(one).Occupied() {
		dsts = append(dsts, one)
		if two := c.Offset(0, 2*fwd); !p.HasMoved && two.Valid() && !b.At(two).Occupied() {
			dsts = append(dsts, two)
		}
	}
	for _, dx := range []int8{-1, 1} {
		if cap := c.Offset(dx, fwd); cap.Valid() && b.At(cap).HoldsSide(p.Side.Opposite()) {
			dsts = append(dsts, cap)
		}
	}
	return dsts
}

func (b *Board) offsetDestinations(c position.Coord, s Side, offsets []offset) []position.Coord {
	var dsts []position.Coord
	for _, o := range offsets {
		dst := c.Offset(o.dx, o.dy)
		if dst.Valid() && !b.At(dst).HoldsSide(s) {
			dsts = append(dsts, dst)
		}
	}
	return dsts
}

func (b *Board) rayDestinations(c position.Coord, s Side, rays []offset) []position.Coord {
	var dsts []position.Coord
	for _, r := range rays {
		for dst := c.Offset(r.dx, r.dy); dst.Valid(); dst = dst.Offset(r.dx, r.dy) {
			t := b.At(dst)
			if t.HoldsSide(s) {
				break
			}
			dsts = append(dsts, dst)
			if t.Occupied() {
				break // enemy piece blocks the ray past itself
			}
		}
	}
	return dsts
}

// IsSquareSafe reports whether no opposing piece's pseudo-legal move set
// contains the given square. It rescans all 64 tiles per query; this is the
// dominant cost center of the legality layer.
func (b *Board) IsSquareSafe(s Side, c position.Coord) bool {
	opponent := s.Opposite()
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			from := position.Coord{X: x, Y: y}
			if !b.At(from).HoldsSide(opponent) {
				continue
			}
			for _, dst := range b.PseudoDestinations(from) {
				if dst == c {
					return false
				}
			}
		}
	}
	return true
}

// LegalDestinations filters the pseudo-legal set of the piece at the given
// tile down to moves that do not leave its own King unsafe. Each candidate is
// simulated on a full board copy: evaluating safety after the piece has
// actually left its origin square avoids line-of-sight mistakes, e.g. a king
// stepping sideways out of a rook's line.
func (b *Board) LegalDestinations(s Side, c position.Coord) []position.Coord {
	if !b.At(c).HoldsSide(s) {
		return nil
	}

	var dsts []position.Coord
	for _, dst := range b.PseudoDestinations(c) {
		bb := b.Clone()
		bb.MovePiece(c, dst)
		king, ok := bb.king(s)
		if ok && !bb.IsSquareSafe(s, king) {
			continue
		}
		dsts = append(dsts, dst)
	}
	return dsts
}

// HasLegalMove reports whether the given side has at least one legal move.
func (b *Board) HasLegalMove(s Side) bool {
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			c := position.Coord{X: x, Y: y}
			if !b.At(c).HoldsSide(s) {
				continue
			}
			if len(b.LegalDestinations(s, c)) > 0 {
				return true
			}
		}
	}
	return false
}

// CheckMove verifies that the origin holds a piece owned by the mover and
// that the destination is a member of that piece's legal destination set.
func (b *Board) CheckMove(s Side, start, end position.Coord) error {
	t := b.At(start)
	if !t.Occupied() {
		return fmt.Errorf("%w: no piece at %s", ErrInvalidMove, start)
	}
	if t.Piece.Side != s {
		return fmt.Errorf("%w: %s is not owned by %s", ErrInvalidMove, start, s)
	}
	for _, dst := range b.LegalDestinations(s, start) {
		if dst == end {
			return nil
		}
	}
	return fmt.Errorf("%w: %s cannot reach %s", ErrInvalidMove, start, end)
}
