package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-chess/caissa/board"
)

// Perft walks the legal-move tree of the given position to the given depth and
// counts leaf nodes, exercising every rule path at once: a wrong count at any
// depth pinpoints a legality bug. Captures, en passants, castles and
// promotions among the leaf moves are tallied separately. With verbose set,
// the per-root-move subtree counts are emitted on out. Promotions count once:
// the tree always queens, underpromotion lines are not expanded.
func Perft(g *board.Game, depth int, parallel, verbose bool, out chan<- string) {
	var nodes, cap, enp, cas, pro uint64

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(g, depth, true, verbose, out, &nodes, &cap, &enp, &cas, &pro)
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), cap, enp, cas, pro, end.Sub(start).Seconds())
}

type perftFunc func(g *board.Game, d int, root, verbose bool, out chan<- string, nodes, cap, enp, cas, pro *uint64) uint64

func runPerft(g *board.Game, d int, root, verbose bool, out chan<- string, nodes, cap, enp, cas, pro *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range g.LegalMoves() {
		var child uint64
		gg := g.Clone()
		if err := gg.TakeTurn(mv.From, mv.To); err != nil {
			continue
		}
		if c, ok := gg.PendingPromotion(); ok {
			_ = gg.Promote(c, board.PieceQueen)
		}
		if d != 2 {
			child = runPerft(gg, d-1, false, verbose, out, nodes, cap, enp, cas, pro)
		} else {
			leafMoves := gg.LegalMoves()
			child = uint64(len(leafMoves))
			*nodes += child
			for _, leaf := range leafMoves {
				lc, le, lca, lp := classify(gg, leaf)
				*cap += lc
				*enp += le
				*cas += lca
				*pro += lp
			}
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(g *board.Game, d int, root, verbose bool, out chan<- string, nodes, cap, enp, cas, pro *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range g.LegalMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			gg := g.Clone()
			if err := gg.TakeTurn(mv.From, mv.To); err != nil {
				return
			}
			if c, ok := gg.PendingPromotion(); ok {
				_ = gg.Promote(c, board.PieceQueen)
			}
			if d != 2 {
				child = runPerftParallel(gg, d-1, false, verbose, out, nodes, cap, enp, cas, pro)
			} else {
				leafMoves := gg.LegalMoves()
				child = uint64(len(leafMoves))
				atomic.AddUint64(nodes, child)
				for _, leaf := range leafMoves {
					lc, le, lca, lp := classify(gg, leaf)
					atomic.AddUint64(cap, lc)
					atomic.AddUint64(enp, le)
					atomic.AddUint64(cas, lca)
					atomic.AddUint64(pro, lp)
				}
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// classify tags a not-yet-applied leaf move by inspecting the mover and the
// destination tile: occupied destinations are captures, a pawn moving
// diagonally onto an empty tile is an en passant capture, a king moving two
// files is a castle and a pawn reaching the far rank is a promotion.
func classify(g *board.Game, mv board.Move) (cap, enp, cas, pro uint64) {
	p := g.Board().At(mv.From).Piece
	dx := mv.To.X - mv.From.X

	switch {
	case g.Board().At(mv.To).Occupied():
		cap = 1
	case p.Kind == board.PiecePawn && dx != 0:
		cap, enp = 1, 1
	}
	if p.Kind == board.PieceKing && (dx == 2 || dx == -2) {
		cas = 1
	}
	if p.Kind == board.PiecePawn && mv.To.Y == g.Turn().PromotionRank() {
		pro = 1
	}
	return cap, enp, cas, pro
}
