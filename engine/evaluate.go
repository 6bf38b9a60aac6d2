package engine

import "github.com/caissa-chess/caissa/board"

// Heuristic tuning values.
const (
	scoreCheckBonus    int16 = 4
	scoreCheckmateBase int16 = 999
	scoreDrawPenalty   int16 = -2
)

// evaluate returns the static leaf score of the position relative to
// maxSide: material balance plus a positional bonus from the game status.
// Forced mates closer to the root score higher in magnitude, rewarding speed;
// draws carry a mild penalty, discouraging them when ahead.
func (e *Engine) evaluate(g *board.Game, maxSide board.Side, depth int) int16 {
	b := g.Board()
	score := b.Material(maxSide) - b.Material(maxSide.Opposite())

	// the status always describes the side about to move
	switch g.Status() {
	case board.StatusCheck:
		if g.Turn() == maxSide {
			score -= scoreCheckBonus
		} else {
			score += scoreCheckBonus
		}
	case board.StatusCheckmate:
		mate := scoreCheckmateBase - int16(depth)
		if g.Turn() == maxSide {
			score -= mate
		} else {
			score += mate
		}
	case board.StatusStalemate, board.StatusInsufficientMaterial:
		score += scoreDrawPenalty
	}
	return score
}
