package main

import (
	"fmt"
	"sync"

	"github.com/caissa-chess/caissa/bench"
	"github.com/caissa-chess/caissa/board"
)

// perft walks the legal-move tree from the starting position, printing the
// per-root-move subtree counts and the summary line as they arrive.
func perft(depth int, parallel bool) error {
	out := make(chan string)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for line := range out {
			fmt.Println(line)
		}
	}()

	bench.Perft(board.NewGame(), depth, parallel, true, out)
	close(out)
	wg.Wait()
	return nil
}
