package board

// Tile optionally holds one Piece. A zero-kind Piece marks an empty tile;
// empty tiles carry no other state.
type Tile struct {
	Piece Piece
}

func (t Tile) Occupied() bool {
	return t.Piece.Kind != PieceUnknown
}

// HoldsSide reports whether the tile holds a piece of the given side.
func (t Tile) HoldsSide(s Side) bool {
	return t.Occupied() && t.Piece.Side == s
}
