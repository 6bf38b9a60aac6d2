package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caissa-chess/caissa/board"
)

const ScoreInfinite int16 = math.MaxInt16

var ErrNoMove = errors.New("cannot resolve best move")

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type Config struct {
	// MaxDepth is the fixed ply limit; depth is the only cost control.
	MaxDepth int

	// Context reuses an existing search context (killer table, counters).
	// When set, its depth limit takes precedence over MaxDepth.
	Context *Context

	Debug  bool
	Logger func(...any)
}

type Engine struct {
	ctx    *Context
	debug  bool
	logger func(...any)
}

func NewEngine(cfg *Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = NewContext(cfg.MaxDepth)
	}

	return &Engine{
		ctx:    ctx,
		debug:  cfg.Debug,
		logger: cfg.Logger,
	}
}

// Context returns the engine's search context, for carrying killer-move
// ordering into the next search.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Search runs the full alpha-beta recursion for the position's current
// player and returns the winning move with its score. The position itself is
// never mutated; every explored line runs on a clone.
func (e *Engine) Search(g *board.Game) (board.Move, int16, error) {
	startTime := time.Now()
	score, mv := e.score(g, 0, -ScoreInfinite, ScoreInfinite, g.Turn())
	elapsed := time.Since(startTime)

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("depth:%d best:%s score:%d branches:%d/%d t:%s",
				e.ctx.maxDepth, mv, score, e.ctx.SearchedBranches, e.ctx.TotalBranches, elapsed))
	}

	if mv.IsNull() {
		return board.Move{}, 0, ErrNoMove
	}
	return mv, score, nil
}

// score recursively evaluates the position to the fixed depth limit.
// maxSide is the side the search maximizes for; a node maximizes exactly when
// that side is about to move. Ties break by iteration order: the first move
// achieving the best score wins unless a later one strictly improves it.
func (e *Engine) score(g *board.Game, depth int, alpha, beta int16, maxSide board.Side) (int16, board.Move) {
	if depth >= e.ctx.maxDepth || g.IsGameOver() {
		return e.evaluate(g, maxSide, depth), board.Move{}
	}

	mvs := g.LegalMoves()
	e.ctx.TotalBranches += uint64(len(mvs))
	e.promoteKillers(depth, mvs)

	maximizing := g.Turn() == maxSide
	bestScore := -ScoreInfinite
	if !maximizing {
		bestScore = ScoreInfinite
	}
	var bestMove, secondMove board.Move
	for _, mv := range mvs {
		e.ctx.SearchedBranches++

		gg := g.Clone()
		if err := gg.TakeTurn(mv.From, mv.To); err != nil {
			continue
		}
		// promotion choices are not explored; the search always queens
		if c, ok := gg.PendingPromotion(); ok {
			_ = gg.Promote(c, board.PieceQueen)
		}

		s, _ := e.score(gg, depth+1, alpha, beta, maxSide)
		if maximizing {
			if s > bestScore {
				secondMove = bestMove
				bestMove = mv
				bestScore = s
			}
			alpha = max(alpha, s)
		} else {
			if s < bestScore {
				secondMove = bestMove
				bestMove = mv
				bestScore = s
			}
			beta = min(beta, s)
		}
		if alpha >= beta {
			break // no further move here can affect a line the opponent already avoids
		}
	}

	e.ctx.setKillers(depth, bestMove, secondMove)
	return bestScore, bestMove
}

// promoteKillers moves this depth's stored killer moves to the front of the
// candidate list when present. Ordering only; correctness is unaffected.
func (e *Engine) promoteKillers(depth int, mvs []board.Move) {
	front := 0
	for _, k := range e.ctx.Killers(depth) {
		if k.IsNull() {
			continue
		}
		for i := front; i < len(mvs); i++ {
			if mvs[i].Equals(k) {
				copy(mvs[front+1:i+1], mvs[front:i])
				mvs[front] = k
				front++
				break
			}
		}
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}
