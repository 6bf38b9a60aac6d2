package player

import (
	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/engine"
)

type searchResult struct {
	move  board.Move
	score int16
	ctx   *engine.Context
}

// pollSearch drives the tree-search strategy's non-blocking contract. The
// first poll with no outstanding search deep-copies the position and the
// accumulated search context, hands both to a fresh worker goroutine and
// reports not ready. Each later poll checks the worker's single-use channel
// without blocking: a delivered result is adopted (killer-move ordering
// persists into the next search) and reported ready. A worker that vanishes
// without sending broke an upstream invariant, so it aborts loudly. Launched
// searches are never cancelled; the worker always runs to completion and
// exits after sending.
func (p *Player) pollSearch(g *board.Game) (board.Move, bool) {
	if p.pending == nil {
		ch := make(chan searchResult, 1)
		p.pending = ch
		go runSearch(g.Clone(), p.ctx.Clone(), p.debug, p.logger, ch)
		return board.Move{}, false
	}

	select {
	case res, ok := <-p.pending:
		if !ok {
			panic("player: search worker exited without a result")
		}
		p.pending = nil
		p.ctx = res.ctx
		return res.move, true
	default:
		return board.Move{}, false
	}
}

func runSearch(g *board.Game, ctx *engine.Context, debug bool, logger func(...any), ch chan<- searchResult) {
	defer close(ch)

	e := engine.NewEngine(&engine.Config{
		Context: ctx,
		Debug:   debug,
		Logger:  logger,
	})
	mv, score, err := e.Search(g)
	if err != nil {
		panic(err) // searching a finished game is a caller contract violation
	}
	ch <- searchResult{move: mv, score: score, ctx: e.Context()}
}
