package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caissa-chess/caissa/player"
)

const (
	exitOK = iota
	exitErr
)

var (
	watchRun = flag.Bool("watch", false, "run watch mode (AI vs AI)")
	playRun  = flag.Bool("play", false, "run play mode (human vs AI)")
	perftRun = flag.Bool("perft", false, "walk the legal-move tree from the starting position")

	perftParallel = flag.Bool("parallel", false, "fan the perft walk out across goroutines")

	whiteStrategy = flag.String("white", "search", "white strategy: random|greedy|search")
	blackStrategy = flag.String("black", "random", "black strategy: random|greedy|search")
	searchDepth   = flag.Int("depth", 3, "tree-search ply depth")
	debug         = flag.Bool("debug", false, "log search diagnostics")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	if *perftRun {
		return perft(*searchDepth, *perftParallel)
	}
	if *playRun {
		ai, err := newPlayer(*blackStrategy)
		if err != nil {
			return err
		}
		return play(ai)
	}
	if *watchRun {
		white, err := newPlayer(*whiteStrategy)
		if err != nil {
			return err
		}
		black, err := newPlayer(*blackStrategy)
		if err != nil {
			return err
		}
		return watch(white, black)
	}

	flag.Usage()
	return nil
}

func newPlayer(strategy string) (*player.Player, error) {
	opts := []player.Option{player.WithDepth(*searchDepth)}
	if *debug {
		opts = append(opts, player.WithDebug(func(a ...any) { fmt.Println(a...) }))
	}
	switch strings.ToLower(strategy) {
	case "random":
		return player.NewRandom(opts...), nil
	case "greedy":
		return player.NewGreedy(opts...), nil
	case "search":
		return player.NewSearch(opts...), nil
	default:
		return nil, errors.New("unknown strategy: " + strategy)
	}
}
