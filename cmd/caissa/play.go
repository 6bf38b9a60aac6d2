package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/player"
	"github.com/caissa-chess/caissa/position"
)

// play runs a human (White, via stdin coordinates like "e2 e4") against the
// given AI strategy.
func play(ai *player.Player) error {
	g := board.NewGame()
	reader := bufio.NewReader(os.Stdin)

	for !g.IsGameOver() {
		fmt.Println(g.Board().Draw())
		fmt.Println("status:", g.Status())

		if g.Turn() == board.SideWhite {
			if err := humanTurn(g, reader); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				fmt.Println(err)
				continue
			}
		} else {
			mv := awaitMove(ai, g)
			if err := g.TakeTurn(mv.From, mv.To); err != nil {
				return err
			}
			if c, ok := g.PendingPromotion(); ok {
				kind, _ := ai.PickPromotion(g)
				if err := g.Promote(c, kind); err != nil {
					return err
				}
			}
			fmt.Printf("\n>>> %s (%s): %s\n", board.SideBlack, ai.Kind(), mv)
		}
	}

	fmt.Println(g.Board().Draw())
	log.Println("game ended:", g.Status())
	return nil
}

var errQuit = errors.New("quit")

func humanTurn(g *board.Game, reader *bufio.Reader) error {
	fmt.Print("your move> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return errQuit
	}
	fields := strings.Fields(line)
	if len(fields) == 1 && strings.EqualFold(fields[0], "quit") {
		return errQuit
	}
	if len(fields) != 2 {
		return errors.New("enter a move as two squares, e.g.: e2 e4")
	}

	start, err := position.NewFromNotation(fields[0])
	if err != nil {
		return err
	}
	end, err := position.NewFromNotation(fields[1])
	if err != nil {
		return err
	}
	if err := g.TakeTurn(start, end); err != nil {
		return err
	}

	if c, ok := g.PendingPromotion(); ok {
		kind, err := readPromotion(reader)
		if err != nil {
			return err
		}
		return g.Promote(c, kind)
	}
	return nil
}

func readPromotion(reader *bufio.Reader) (board.PieceKind, error) {
	fmt.Print("promote to (q/r/b/n)> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return board.PieceUnknown, errQuit
	}
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "q", "":
		return board.PieceQueen, nil
	case "r":
		return board.PieceRook, nil
	case "b":
		return board.PieceBishop, nil
	case "n":
		return board.PieceKnight, nil
	default:
		return board.PieceUnknown, errors.New("unknown promotion kind")
	}
}
