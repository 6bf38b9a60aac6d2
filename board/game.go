package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/caissa-chess/caissa/position"
)

// Game is the turn-taking state machine wrapping a Board: whose turn it is,
// the accumulated check/mate status, any pending promotion and the casualty
// lists. It is the only entity the surrounding application touches directly.
type Game struct {
	board *Board
	turn  Side

	status           Status
	promotion        position.Coord
	promotionPending bool

	casualtiesWhite []Piece
	casualtiesBlack []Piece
}

type gameConfig struct {
	board *Board
	turn  Side
}

type GameOption func(*gameConfig)

// WithBoard starts the game from a custom position instead of the standard setup.
func WithBoard(b *Board) GameOption {
	return func(cfg *gameConfig) {
		cfg.board = b
	}
}

// WithTurn sets the side to move first.
func WithTurn(s Side) GameOption {
	return func(cfg *gameConfig) {
		cfg.turn = s
	}
}

func NewGame(opts ...GameOption) *Game {
	cfg := &gameConfig{
		board: New(),
		turn:  SideWhite,
	}
	for _, f := range opts {
		f(cfg)
	}

	g := &Game{
		board: cfg.board,
		turn:  cfg.turn,
	}
	g.status = g.board.Classify(g.turn)
	return g
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) IsGameOver() bool {
	return g.status.IsGameOver()
}

// PendingPromotion returns the coordinate of a pawn awaiting promotion, if
// any. While set, promotion is the only legal action.
func (g *Game) PendingPromotion() (position.Coord, bool) {
	return g.promotion, g.promotionPending
}

// Board exposes the underlying grid for read-only uses such as evaluation and
// rendering. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Casualties lists the captured pieces of the given side, in capture order.
func (g *Game) Casualties(s Side) []Piece {
	if s == SideWhite {
		return g.casualtiesWhite
	}
	return g.casualtiesBlack
}

// TakeTurn attempts to move the current player's piece from start to end. The
// intended move is classified as castle, lunge, en passant or a plain move by
// inspecting the piece kind and movement delta; each class performs its own
// legality check before mutating the board. En passant inspects the opposing
// pawn's just-lunged flag before all flags are cleared for the ply.
func (g *Game) TakeTurn(start, end position.Coord) error {
	if g.promotionPending {
		return fmt.Errorf("%w: promote the pawn at %s first", ErrPromotionPending, g.promotion)
	}
	if !start.Valid() || !end.Valid() {
		return fmt.Errorf("%w: %v to %v is off board", ErrInvalidMove, start, end)
	}
	t := g.board.At(start)
	if !t.HoldsSide(g.turn) {
		return fmt.Errorf("%w: %s is not owned by %s", ErrInvalidMove, start, g.turn)
	}

	p := t.Piece
	dx, dy := end.X-start.X, end.Y-start.Y
	switch {
	case p.Kind == PieceKing && dy == 0 && (dx == 2 || dx == -2):
		d := CastleSideQueen
		if dx > 0 {
			d = CastleSideKing
		}
		if err := g.board.CanCastle(g.turn, d); err != nil {
			return err
		}
		g.board.ClearLungeFlags()
		g.board.Castle(g.turn, d)

	case p.Kind == PiecePawn && dx == 0 && dy == 2*g.turn.Forward():
		if err := g.board.CheckMove(g.turn, start, end); err != nil {
			return err
		}
		g.board.ClearLungeFlags()
		g.board.Lunge(start)

	case p.Kind == PiecePawn && (dx == 1 || dx == -1) && dy == g.turn.Forward() && !g.board.At(end).Occupied():
		if err := g.board.CheckEnPassant(g.turn, start, dx); err != nil {
			return err
		}
		g.board.ClearLungeFlags()
		g.addCasualty(g.board.EnPassant(start, end))

	default:
		if err := g.board.CheckMove(g.turn, start, end); err != nil {
			return err
		}
		g.board.ClearLungeFlags()
		if captured, ok := g.board.MovePiece(start, end); ok {
			g.addCasualty(captured)
		}
	}

	if c, ok := g.board.PawnNeedingPromotion(); ok {
		// the turn does not flip until the promotion is resolved
		g.promotion = c
		g.promotionPending = true
		return nil
	}

	g.turn = g.turn.Opposite()
	g.status = g.board.Classify(g.turn)
	return nil
}

// Promote resolves a pending promotion, then passes the turn.
func (g *Game) Promote(c position.Coord, kind PieceKind) error {
	if !g.promotionPending {
		return fmt.Errorf("%w: no promotion pending", ErrInvalidPromotion)
	}
	if c != g.promotion {
		return fmt.Errorf("%w: pending promotion is at %s", ErrInvalidPromotion, g.promotion)
	}
	if err := g.board.Promote(c, kind); err != nil {
		return err
	}

	g.promotionPending = false
	g.turn = g.turn.Opposite()
	g.status = g.board.Classify(g.turn)
	return nil
}

// LegalDestinations lists the squares the current player's piece at the given
// coordinate may move to, castle and en passant destinations included. It is
// empty if the coordinate is off board, a promotion is pending, the tile is
// empty or the occupant is not the mover's.
func (g *Game) LegalDestinations(c position.Coord) []position.Coord {
	if !c.Valid() || g.promotionPending {
		return nil
	}
	t := g.board.At(c)
	if !t.HoldsSide(g.turn) {
		return nil
	}

	dsts := g.board.LegalDestinations(g.turn, c)
	switch t.Piece.Kind {
	case PieceKing:
		for _, d := range []CastleSide{CastleSideKing, CastleSideQueen} {
			if g.board.CanCastle(g.turn, d) == nil {
				dsts = append(dsts, position.Coord{X: d.KingDestinationFile(), Y: g.turn.HomeRank()})
			}
		}
	case PiecePawn:
		for _, dx := range []int8{-1, 1} {
			if g.board.CheckEnPassant(g.turn, c, dx) == nil {
				dsts = append(dsts, c.Offset(dx, g.turn.Forward()))
			}
		}
	}
	return dsts
}

// LegalMoves lists every legal move of the current player.
func (g *Game) LegalMoves() []Move {
	var mvs []Move
	for y := int8(0); y < Height; y++ {
		for x := int8(0); x < Width; x++ {
			c := position.Coord{X: x, Y: y}
			for _, dst := range g.LegalDestinations(c) {
				mvs = append(mvs, Move{From: c, To: dst})
			}
		}
	}
	return mvs
}

func (g *Game) Clone() *Game {
	return &Game{
		board:            g.board.Clone(),
		turn:             g.turn,
		status:           g.status,
		promotion:        g.promotion,
		promotionPending: g.promotionPending,
		casualtiesWhite:  slices.Clone(g.casualtiesWhite),
		casualtiesBlack:  slices.Clone(g.casualtiesBlack),
	}
}

func (g *Game) addCasualty(p Piece) {
	if p.Side == SideWhite {
		g.casualtiesWhite = append(g.casualtiesWhite, p)
	} else {
		g.casualtiesBlack = append(g.casualtiesBlack, p)
	}
}
