package board

import (
	"errors"
	"testing"

	"github.com/caissa-chess/caissa/position"
)

func castleBoard() *Board {
	b := NewEmpty()
	b.Place(position.MustNew(4, 0), Piece{Side: SideWhite, Kind: PieceKing})
	b.Place(position.MustNew(0, 0), Piece{Side: SideWhite, Kind: PieceRook})
	b.Place(position.MustNew(7, 0), Piece{Side: SideWhite, Kind: PieceRook})
	b.Place(position.MustNew(4, 7), Piece{Side: SideBlack, Kind: PieceKing})
	return b
}

func TestCanCastle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		setup   func(*Board)
		side    CastleSide
		wantErr error
	}{
		{
			name:  "ok kingside",
			setup: func(*Board) {},
			side:  CastleSideKing,
		},
		{
			name:  "ok queenside",
			setup: func(*Board) {},
			side:  CastleSideQueen,
		},
		{
			name: "king has moved",
			setup: func(b *Board) {
				b.Place(position.MustNew(4, 0), Piece{Side: SideWhite, Kind: PieceKing, HasMoved: true})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "rook has moved",
			setup: func(b *Board) {
				b.Place(position.MustNew(7, 0), Piece{Side: SideWhite, Kind: PieceRook, HasMoved: true})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "king in check",
			setup: func(b *Board) {
				b.Place(position.MustNew(4, 5), Piece{Side: SideBlack, Kind: PieceRook})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "transit square attacked",
			setup: func(b *Board) {
				b.Place(position.MustNew(5, 5), Piece{Side: SideBlack, Kind: PieceRook})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "destination attacked",
			setup: func(b *Board) {
				b.Place(position.MustNew(6, 5), Piece{Side: SideBlack, Kind: PieceRook})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "transit square occupied",
			setup: func(b *Board) {
				b.Place(position.MustNew(5, 0), Piece{Side: SideWhite, Kind: PieceBishop})
			},
			side:    CastleSideKing,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "queenside knight square occupied",
			setup: func(b *Board) {
				b.Place(position.MustNew(1, 0), Piece{Side: SideWhite, Kind: PieceKnight})
			},
			side:    CastleSideQueen,
			wantErr: ErrInvalidCastle,
		},
		{
			name: "queenside unaffected by kingside attacker",
			setup: func(b *Board) {
				b.Place(position.MustNew(5, 5), Piece{Side: SideBlack, Kind: PieceRook})
			},
			side: CastleSideQueen,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := castleBoard()
			tt.setup(b)

			err := b.CanCastle(SideWhite, tt.side)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCastleExecution(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name               string
		side               CastleSide
		wantKing, wantRook position.Coord
	}{
		{
			name:     "kingside",
			side:     CastleSideKing,
			wantKing: position.MustNew(6, 0),
			wantRook: position.MustNew(5, 0),
		},
		{
			name:     "queenside",
			side:     CastleSideQueen,
			wantKing: position.MustNew(2, 0),
			wantRook: position.MustNew(3, 0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := castleBoard()
			b.Castle(SideWhite, tt.side)

			if got := b.At(tt.wantKing).Piece; got.Kind != PieceKing || !got.HasMoved {
				t.Errorf("unexpected king tile: got=%+v", got)
			}
			if got := b.At(tt.wantRook).Piece; got.Kind != PieceRook || !got.HasMoved {
				t.Errorf("unexpected rook tile: got=%+v", got)
			}
			if b.At(position.MustNew(4, 0)).Occupied() {
				t.Error("king origin should be empty")
			}
		})
	}
}
