package board

import (
	"strings"
	"testing"

	"github.com/caissa-chess/caissa/position"
)

func TestAtPanicsOffBoard(t *testing.T) {
	t.Parallel()
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on off-board access")
		}
	}()
	b.At(position.Coord{X: 8, Y: 0})
}

func TestPlacePanicsOffBoard(t *testing.T) {
	t.Parallel()
	b := NewEmpty()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on off-board access")
		}
	}()
	b.Place(position.Coord{X: 0, Y: -1}, Piece{Side: SideWhite, Kind: PiecePawn})
}

func TestNewStartingPosition(t *testing.T) {
	t.Parallel()
	b := New()

	if got := b.At(position.MustNew(4, 0)).Piece; got.Side != SideWhite || got.Kind != PieceKing {
		t.Errorf("unexpected e1: %+v", got)
	}
	if got := b.At(position.MustNew(3, 7)).Piece; got.Side != SideBlack || got.Kind != PieceQueen {
		t.Errorf("unexpected d8: %+v", got)
	}
	for x := int8(0); x < Width; x++ {
		if got := b.At(position.Coord{X: x, Y: 1}).Piece; got.Side != SideWhite || got.Kind != PiecePawn {
			t.Errorf("unexpected white pawn rank at x=%d: %+v", x, got)
		}
		if got := b.At(position.Coord{X: x, Y: 6}).Piece; got.Side != SideBlack || got.Kind != PiecePawn {
			t.Errorf("unexpected black pawn rank at x=%d: %+v", x, got)
		}
	}
	if b.At(position.MustNew(4, 4)).Occupied() {
		t.Error("middle of the board should be empty")
	}
}

func TestMovePiece(t *testing.T) {
	t.Parallel()
	b := New()

	captured, ok := b.MovePiece(position.MustNew(4, 1), position.MustNew(4, 3))
	if ok {
		t.Errorf("unexpected capture: %+v", captured)
	}
	if got := b.At(position.MustNew(4, 3)).Piece; got.Kind != PiecePawn || !got.HasMoved {
		t.Errorf("unexpected destination tile: %+v", got)
	}

	captured, ok = b.MovePiece(position.MustNew(4, 3), position.MustNew(4, 6))
	if !ok || captured.Side != SideBlack || captured.Kind != PiecePawn {
		t.Errorf("unexpected capture result: ok=%v captured=%+v", ok, captured)
	}
}

func TestMaterial(t *testing.T) {
	t.Parallel()
	b := New()
	// 8 pawns + 2 knights + 2 bishops + 2 rooks + 1 queen = 8+6+6+10+9
	if got := b.Material(SideWhite); got != 39 {
		t.Errorf("unexpected material: got=%d want=39", got)
	}
	if got := b.Material(SideBlack); got != 39 {
		t.Errorf("unexpected material: got=%d want=39", got)
	}

	b.Remove(position.MustNew(3, 7)) // black queen
	if got := b.Material(SideBlack); got != 30 {
		t.Errorf("unexpected material after removal: got=%d want=30", got)
	}
}

func TestCloneRoundTrip(t *testing.T) {
	t.Parallel()
	b := New()
	bb := b.Clone()

	moves := [][2]position.Coord{
		{position.MustNew(4, 1), position.MustNew(4, 3)},
		{position.MustNew(3, 6), position.MustNew(3, 4)},
		{position.MustNew(4, 3), position.MustNew(3, 4)},
		{position.MustNew(3, 7), position.MustNew(3, 4)},
	}
	for _, mv := range moves {
		b.MovePiece(mv[0], mv[1])
		bb.MovePiece(mv[0], mv[1])
	}

	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			c := position.Coord{X: x, Y: y}
			if b.At(c) != bb.At(c) {
				t.Errorf("grids diverged at %s: got=%+v want=%+v", c, bb.At(c), b.At(c))
			}
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	t.Parallel()
	b := New()
	bb := b.Clone()
	bb.MovePiece(position.MustNew(4, 1), position.MustNew(4, 3))

	if !b.At(position.MustNew(4, 1)).Occupied() {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	dump := New().Dump()
	for _, sym := range []string{"K", "k", "Q", "q", "a", "h"} {
		if !strings.Contains(dump, sym) {
			t.Errorf("dump missing %q:\n%s", sym, dump)
		}
	}
}
