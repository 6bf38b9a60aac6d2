package board

import (
	"fmt"

	"github.com/caissa-chess/caissa/position"
)

type CastleSide uint8

const (
	CastleSideUnknown CastleSide = iota
	CastleSideKing
	CastleSideQueen
)

func (d CastleSide) String() string {
	switch d {
	case CastleSideKing:
		return "0-0"
	case CastleSideQueen:
		return "0-0-0"
	default:
		return ""
	}
}

const kingStartFile = int8(4)

// rookStartFile is the home file of the rook participating in castling.
func (d CastleSide) rookStartFile() int8 {
	if d == CastleSideKing {
		return 7
	}
	return 0
}

// KingDestinationFile is the file the King lands on after castling.
func (d CastleSide) KingDestinationFile() int8 {
	if d == CastleSideKing {
		return 6
	}
	return 2
}

func (d CastleSide) rookDestinationFile() int8 {
	if d == CastleSideKing {
		return 5
	}
	return 3
}

// transitFiles are the files the King transits through, destination included.
func (d CastleSide) transitFiles() []int8 {
	if d == CastleSideKing {
		return []int8{5, 6}
	}
	return []int8{3, 2}
}

// CanCastle verifies castling eligibility for the given side and direction:
// the King unmoved and not currently in check, the matching Rook unmoved,
// every square the King transits (destination included) empty and unattacked,
// and for queenside the square next to the Rook empty even though the King
// never occupies it.
func (b *Board) CanCastle(s Side, d CastleSide) error {
	rank := s.HomeRank()

	kingPos := position.Coord{X: kingStartFile, Y: rank}
	kingTile := b.At(kingPos)
	if !kingTile.HoldsSide(s) || kingTile.Piece.Kind != PieceKing || kingTile.Piece.HasMoved {
		return fmt.Errorf("%w: King has moved", ErrInvalidCastle)
	}
	if !b.IsSquareSafe(s, kingPos) {
		return fmt.Errorf("%w: King is in check", ErrInvalidCastle)
	}

	rookPos := position.Coord{X: d.rookStartFile(), Y: rank}
	rookTile := b.At(rookPos)
	if !rookTile.HoldsSide(s) || rookTile.Piece.Kind != PieceRook || rookTile.Piece.HasMoved {
		return fmt.Errorf("%w: Rook has moved", ErrInvalidCastle)
	}

	for _, x := range d.transitFiles() {
		c := position.Coord{X: x, Y: rank}
		if b.At(c).Occupied() {
			return fmt.Errorf("%w: %s is occupied", ErrInvalidCastle, c)
		}
		if !b.IsSquareSafe(s, c) {
			return fmt.Errorf("%w: %s is attacked", ErrInvalidCastle, c)
		}
	}
	if d == CastleSideQueen {
		if c := (position.Coord{X: 1, Y: rank}); b.At(c).Occupied() {
			return fmt.Errorf("%w: %s is occupied", ErrInvalidCastle, c)
		}
	}

	return nil
}

// Castle relocates the King and Rook unconditionally; callers validate with
// CanCastle first.
func (b *Board) Castle(s Side, d CastleSide) {
	rank := s.HomeRank()
	b.MovePiece(position.Coord{X: kingStartFile, Y: rank}, position.Coord{X: d.KingDestinationFile(), Y: rank})
	b.MovePiece(position.Coord{X: d.rookStartFile(), Y: rank}, position.Coord{X: d.rookDestinationFile(), Y: rank})
}
