package main

import (
	"fmt"
	"log"
	"time"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/player"
)

const pollInterval = 10 * time.Millisecond

// watch plays the two strategies against each other, polling each one the
// way a frame loop would until it reports a move ready.
func watch(white, black *player.Player) error {
	g := board.NewGame()
	fmt.Println(g.Board().Draw())

	for step := 1; !g.IsGameOver(); step++ {
		p := white
		if g.Turn() == board.SideBlack {
			p = black
		}

		mv := awaitMove(p, g)
		if err := g.TakeTurn(mv.From, mv.To); err != nil {
			return err
		}
		if c, ok := g.PendingPromotion(); ok {
			kind, _ := p.PickPromotion(g)
			if err := g.Promote(c, kind); err != nil {
				return err
			}
		}

		fmt.Printf("\n>>> [#%d] %s (%s): %s\n", step, g.Turn().Opposite(), p.Kind(), mv)
		fmt.Println(g.Board().Draw())
		fmt.Println("status:", g.Status())
	}

	log.Println("game ended:", g.Status())
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		if dead := g.Casualties(s); len(dead) > 0 {
			fmt.Printf("%s casualties: %d\n", s, len(dead))
		}
	}
	return nil
}

func awaitMove(p *player.Player, g *board.Game) board.Move {
	for {
		if mv, ready := p.PickMove(g); ready {
			return mv
		}
		<-time.Tick(pollInterval)
	}
}
