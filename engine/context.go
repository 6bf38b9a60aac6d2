package engine

import (
	"golang.org/x/exp/slices"

	"github.com/caissa-chess/caissa/board"
)

const DefaultMaxDepth = 3

// Context is the search engine's working state: the fixed ply limit, the
// per-depth killer-move table and branch counters. It is threaded through the
// recursion and carried across successive top-level searches, so killer-move
// ordering learned in one turn persists into the next.
type Context struct {
	maxDepth int
	killers  [][2]board.Move

	// TotalBranches counts every candidate move seen; SearchedBranches only
	// those actually explored before a cutoff.
	TotalBranches    uint64
	SearchedBranches uint64
}

func NewContext(maxDepth int) *Context {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	return &Context{
		maxDepth: maxDepth,
		killers:  make([][2]board.Move, maxDepth),
	}
}

func (c *Context) MaxDepth() int {
	return c.maxDepth
}

// Killers returns the killer moves recorded at the given depth.
func (c *Context) Killers(depth int) [2]board.Move {
	if depth < 0 || depth >= len(c.killers) {
		return [2]board.Move{}
	}
	return c.killers[depth]
}

func (c *Context) setKillers(depth int, best, second board.Move) {
	if depth < 0 || depth >= len(c.killers) {
		return
	}
	c.killers[depth] = [2]board.Move{best, second}
}

// Clone deep-copies the context for handoff to a search worker.
func (c *Context) Clone() *Context {
	return &Context{
		maxDepth:         c.maxDepth,
		killers:          slices.Clone(c.killers),
		TotalBranches:    c.TotalBranches,
		SearchedBranches: c.SearchedBranches,
	}
}
