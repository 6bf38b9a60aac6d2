package board

import "github.com/caissa-chess/caissa/position"

// Move is an origin-destination pair. The turn state machine classifies it as
// castle, lunge, en passant or a plain move on application.
type Move struct {
	From, To position.Coord
}

// IsNull reports whether the move is the zero value. No legal move keeps a
// piece on its origin square, so the zero value doubles as "no move".
func (m Move) IsNull() bool {
	return m.From == m.To
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) String() string {
	return m.From.Notation() + m.To.Notation()
}
