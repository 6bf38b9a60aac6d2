package player

import "github.com/caissa-chess/caissa/board"

// pickRandom selects uniformly among all legal moves. An empty legal set is a
// caller contract violation (the game was already over) and aborts loudly.
func (p *Player) pickRandom(g *board.Game) board.Move {
	mvs := g.LegalMoves()
	if len(mvs) == 0 {
		panic("player: no legal move available, game is already over")
	}
	return mvs[p.rng.Intn(len(mvs))]
}
