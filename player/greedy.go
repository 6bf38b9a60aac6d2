package player

import "github.com/caissa-chess/caissa/board"

// pickGreedy simulates each of the player's legal moves and counts the
// opponent's resulting replies, fewer being judged better. Moves tying for
// the minimum are chosen among uniformly.
func (p *Player) pickGreedy(g *board.Game) board.Move {
	mvs := g.LegalMoves()
	if len(mvs) == 0 {
		panic("player: no legal move available, game is already over")
	}

	best := -1
	var candidates []board.Move
	for _, mv := range mvs {
		gg := g.Clone()
		if err := gg.TakeTurn(mv.From, mv.To); err != nil {
			continue
		}
		if c, ok := gg.PendingPromotion(); ok {
			_ = gg.Promote(c, board.PieceQueen)
		}

		replies := len(gg.LegalMoves())
		switch {
		case best == -1 || replies < best:
			best = replies
			candidates = candidates[:0]
			candidates = append(candidates, mv)
		case replies == best:
			candidates = append(candidates, mv)
		}
	}
	return candidates[p.rng.Intn(len(candidates))]
}
