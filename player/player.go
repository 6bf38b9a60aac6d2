// Package player implements the AI move-selection strategies. The set is a
// closed tagged variant: one Player struct discriminated by Kind, constructed
// through NewRandom, NewGreedy and NewSearch.
package player

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/engine"
)

type Kind uint8

const (
	KindUnknown Kind = iota

	// KindRandom selects uniformly among all legal moves.
	KindRandom

	// KindGreedy picks the move leaving the opponent the fewest replies.
	KindGreedy

	// KindSearch runs the alpha-beta engine on a background worker.
	KindSearch
)

func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "Random"
	case KindGreedy:
		return "Greedy"
	case KindSearch:
		return "Search"
	default:
		return ""
	}
}

type Player struct {
	kind Kind
	rng  *rand.Rand

	// tree-search state; the player owns its context across turns
	ctx     *engine.Context
	debug   bool
	logger  func(...any)
	pending chan searchResult
}

type playerConfig struct {
	seed   int64
	depth  int
	debug  bool
	logger func(...any)
}

type Option func(*playerConfig)

// WithSeed fixes the random source, for reproducible play and tests.
func WithSeed(seed int64) Option {
	return func(cfg *playerConfig) {
		cfg.seed = seed
	}
}

// WithDepth sets the search ply limit for the tree-search strategy.
func WithDepth(depth int) Option {
	return func(cfg *playerConfig) {
		cfg.depth = depth
	}
}

// WithDebug enables search diagnostics through the given logger.
func WithDebug(logger func(...any)) Option {
	return func(cfg *playerConfig) {
		cfg.debug = true
		cfg.logger = logger
	}
}

func newConfig(opts []Option) *playerConfig {
	cfg := &playerConfig{
		seed:  time.Now().UnixNano(),
		depth: engine.DefaultMaxDepth,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

func NewRandom(opts ...Option) *Player {
	cfg := newConfig(opts)
	return &Player{
		kind: KindRandom,
		rng:  rand.New(rand.NewSource(cfg.seed)),
	}
}

func NewGreedy(opts ...Option) *Player {
	cfg := newConfig(opts)
	return &Player{
		kind: KindGreedy,
		rng:  rand.New(rand.NewSource(cfg.seed)),
	}
}

func NewSearch(opts ...Option) *Player {
	cfg := newConfig(opts)
	return &Player{
		kind:   KindSearch,
		ctx:    engine.NewContext(cfg.depth),
		debug:  cfg.debug,
		logger: cfg.logger,
	}
}

func (p *Player) Kind() Kind {
	return p.kind
}

// PickMove selects a move for the game's current player. The returned bool is
// the Ready flag: the synchronous strategies always resolve within a single
// poll, while the tree-search strategy reports false until its background
// worker completes. Callers must not invoke PickMove on a finished game.
func (p *Player) PickMove(g *board.Game) (board.Move, bool) {
	switch p.kind {
	case KindRandom:
		return p.pickRandom(g), true
	case KindGreedy:
		return p.pickGreedy(g), true
	case KindSearch:
		return p.pollSearch(g)
	default:
		panic(fmt.Sprintf("player: unknown strategy kind %d", p.kind))
	}
}

// PickPromotion selects the kind a pending promotion resolves to.
// Every strategy queens.
func (p *Player) PickPromotion(*board.Game) (board.PieceKind, bool) {
	return board.PieceQueen, true
}
