package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/caissa-chess/caissa/position"
)

const (
	Width  = int8(position.MaxComponentScalar)
	Height = int8(position.MaxComponentScalar)
)

// Board is an 8x8 grid of tiles, indexed by position.Coord with rank 0 as
// White's home rank. It owns no history: every mutation is destructive, so
// callers snapshot with Clone before attempting a speculative move.
type Board struct {
	tiles [Height][Width]Tile
}

// New returns a board in the standard starting position.
func New() *Board {
	b := NewEmpty()
	backRank := [Width]PieceKind{
		PieceRook, PieceKnight, PieceBishop, PieceQueen,
		PieceKing, PieceBishop, PieceKnight, PieceRook,
	}
	for x := int8(0); x < Width; x++ {
		b.Place(position.Coord{X: x, Y: 0}, Piece{Side: SideWhite, Kind: backRank[x]})
		b.Place(position.Coord{X: x, Y: 1}, Piece{Side: SideWhite, Kind: PiecePawn})
		b.Place(position.Coord{X: x, Y: 6}, Piece{Side: SideBlack, Kind: PiecePawn})
		b.Place(position.Coord{X: x, Y: 7}, Piece{Side: SideBlack, Kind: backRank[x]})
	}
	return b
}

// NewEmpty returns a board with no pieces, for composing custom positions.
func NewEmpty() *Board {
	return &Board{}
}

// At returns the tile at the given coordinate.
// Panics if the coordinate is off board; callers are expected to validate first.
func (b *Board) At(c position.Coord) Tile {
	if !c.Valid() {
		panic(fmt.Sprintf("board: access outside board: (%d, %d)", c.X, c.Y))
	}
	return b.tiles[c.Y][c.X]
}

// Place puts a piece on the given tile, replacing any occupant.
// Panics if the coordinate is off board.
func (b *Board) Place(c position.Coord, p Piece) {
	if !c.Valid() {
		panic(fmt.Sprintf("board: access outside board: (%d, %d)", c.X, c.Y))
	}
	b.tiles[c.Y][c.X] = Tile{Piece: p}
}

// Remove clears the given tile.
// Panics if the coordinate is off board.
func (b *Board) Remove(c position.Coord) {
	if !c.Valid() {
		panic(fmt.Sprintf("board: access outside board: (%d, %d)", c.X, c.Y))
	}
	b.tiles[c.Y][c.X] = Tile{}
}

// MovePiece unconditionally relocates a piece, marking it moved, and returns
// the captured occupant of the destination, if any. Only called after the
// move has been validated.
func (b *Board) MovePiece(start, end position.Coord) (Piece, bool) {
	target := b.At(end)
	p := b.At(start).Piece
	p.HasMoved = true
	b.Remove(start)
	b.Place(end, p)
	return target.Piece, target.Occupied()
}

// Material returns the summed material value of the given side's pieces.
func (b *Board) Material(s Side) int16 {
	var total int16
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			if t := b.tiles[y][x]; t.HoldsSide(s) {
				total += t.Piece.Kind.Value()
			}
		}
	}
	return total
}

// king returns the coordinate of the given side's King.
// Each side always has exactly one King; ok is false only on malformed test boards.
func (b *Board) king(s Side) (position.Coord, bool) {
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			t := b.tiles[y][x]
			if t.HoldsSide(s) && t.Piece.Kind == PieceKing {
				return position.Coord{X: x, Y: y}, true
			}
		}
	}
	return position.Coord{}, false
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := int8(0); x < Width; x++ {
			sym := " "
			if t := b.tiles[y][x]; t.Occupied() {
				sym = t.Piece.Kind.Symbol(t.Piece.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := int8(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", string(rune('a'+x))))
	}
	return builder.String()
}

var (
	tileDark  = color.New(color.FgBlack, color.BgGreen)
	tileLight = color.New(color.FgBlack, color.BgHiWhite)
)

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d ", y+1))
		for x := int8(0); x < Width; x++ {
			sym := " "
			if t := b.tiles[y][x]; t.Occupied() {
				sym = t.Piece.Kind.SymbolUnicode(t.Piece.Side)
			}
			cell := tileLight
			if x%2^y%2 == 0 {
				cell = tileDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := int8(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", string(rune('a'+x))))
	}
	return builder.String()
}
