package engine

import (
	"testing"

	"github.com/caissa-chess/caissa/board"
	"github.com/caissa-chess/caissa/position"
)

// plainMinimax is an unpruned reference search mirroring Engine.score, used
// to verify that alpha-beta cutoffs never change the chosen move or score.
func plainMinimax(t *testing.T, g *board.Game, depth, maxDepth int, maxSide board.Side) (int16, board.Move) {
	t.Helper()
	e := NewEngine(&Config{MaxDepth: maxDepth})
	if depth >= maxDepth || g.IsGameOver() {
		return e.evaluate(g, maxSide, depth), board.Move{}
	}

	maximizing := g.Turn() == maxSide
	bestScore := -ScoreInfinite
	if !maximizing {
		bestScore = ScoreInfinite
	}
	var bestMove board.Move
	for _, mv := range g.LegalMoves() {
		gg := g.Clone()
		if err := gg.TakeTurn(mv.From, mv.To); err != nil {
			t.Fatalf("unexpected error applying %s: %v", mv, err)
		}
		if c, ok := gg.PendingPromotion(); ok {
			if err := gg.Promote(c, board.PieceQueen); err != nil {
				t.Fatalf("unexpected error promoting: %v", err)
			}
		}
		s, _ := plainMinimax(t, gg, depth+1, maxDepth, maxSide)
		if maximizing && s > bestScore || !maximizing && s < bestScore {
			bestScore = s
			bestMove = mv
		}
	}
	return bestScore, bestMove
}

func mateInOneGame() *board.Game {
	// white mates with Rg8: the second rook seals the seventh rank
	b := board.NewEmpty()
	b.Place(position.MustNew(0, 7), board.Piece{Side: board.SideBlack, Kind: board.PieceKing, HasMoved: true})
	b.Place(position.MustNew(7, 6), board.Piece{Side: board.SideWhite, Kind: board.PieceRook, HasMoved: true})
	b.Place(position.MustNew(6, 0), board.Piece{Side: board.SideWhite, Kind: board.PieceRook, HasMoved: true})
	b.Place(position.MustNew(4, 0), board.Piece{Side: board.SideWhite, Kind: board.PieceKing, HasMoved: true})
	return board.NewGame(board.WithBoard(b))
}

func TestSearchFindsMateInOne(t *testing.T) {
	t.Parallel()
	e := NewEngine(&Config{MaxDepth: 2})

	mv, score, err := e.Search(mateInOneGame())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := board.Move{From: position.MustNew(6, 0), To: position.MustNew(6, 7)}
	if !mv.Equals(want) {
		t.Errorf("unexpected move: got=%s want=%s", mv, want)
	}
	// two rooks of material plus the mate bonus one ply in
	if wantScore := int16(10 + 999 - 1); score != wantScore {
		t.Errorf("unexpected score: got=%d want=%d", score, wantScore)
	}
}

func TestSearchIdempotent(t *testing.T) {
	t.Parallel()
	g := board.NewGame()

	mv1, score1, err := NewEngine(&Config{MaxDepth: 2}).Search(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv2, score2, err := NewEngine(&Config{MaxDepth: 2}).Search(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mv1.Equals(mv2) || score1 != score2 {
		t.Errorf("search not reproducible: got=%s/%d and %s/%d", mv1, score1, mv2, score2)
	}
}

func TestSearchMatchesPlainMinimax(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		game     func() *board.Game
		maxDepth int
	}{
		{name: "starting position depth 2", game: func() *board.Game { return board.NewGame() }, maxDepth: 2},
		{name: "mate in one depth 2", game: mateInOneGame, maxDepth: 2},
		{name: "starting position depth 3", game: func() *board.Game { return board.NewGame() }, maxDepth: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := tt.game()

			gotMove, gotScore, err := NewEngine(&Config{MaxDepth: tt.maxDepth}).Search(g)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			wantScore, wantMove := plainMinimax(t, g, 0, tt.maxDepth, g.Turn())

			if gotScore != wantScore {
				t.Errorf("unexpected score: got=%d want=%d", gotScore, wantScore)
			}
			if !gotMove.Equals(wantMove) {
				t.Errorf("unexpected move: got=%s want=%s", gotMove, wantMove)
			}
		})
	}
}

func TestKillerOrderingKeepsScore(t *testing.T) {
	t.Parallel()
	g := board.NewGame()

	e := NewEngine(&Config{MaxDepth: 2})
	_, first, err := e.Search(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// reuse the learned context: ordering may differ, the score must not
	reuse := NewEngine(&Config{Context: e.Context().Clone()})
	mv, second, err := reuse.Search(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("killer ordering changed the score: got=%d want=%d", second, first)
	}

	var legal bool
	for _, cand := range g.LegalMoves() {
		if cand.Equals(mv) {
			legal = true
		}
	}
	if !legal {
		t.Errorf("chosen move is not legal: %s", mv)
	}
}

func TestSearchStatistics(t *testing.T) {
	t.Parallel()
	e := NewEngine(&Config{MaxDepth: 2})

	if _, _, err := e.Search(board.NewGame()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := e.Context()
	if ctx.TotalBranches == 0 {
		t.Error("expected branches to be counted")
	}
	if ctx.SearchedBranches > ctx.TotalBranches {
		t.Errorf("searched more branches than seen: %d > %d", ctx.SearchedBranches, ctx.TotalBranches)
	}
}

func TestSearchErrNoMove(t *testing.T) {
	t.Parallel()

	// checkmate already on the board: there is nothing to search
	b := board.NewEmpty()
	b.Place(position.MustNew(7, 7), board.Piece{Side: board.SideBlack, Kind: board.PieceKing})
	b.Place(position.MustNew(6, 6), board.Piece{Side: board.SideWhite, Kind: board.PieceQueen})
	b.Place(position.MustNew(5, 5), board.Piece{Side: board.SideWhite, Kind: board.PieceKing})
	g := board.NewGame(board.WithBoard(b), board.WithTurn(board.SideBlack))

	if _, _, err := NewEngine(&Config{MaxDepth: 2}).Search(g); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestContextClone(t *testing.T) {
	t.Parallel()
	ctx := NewContext(3)
	ctx.setKillers(1, board.Move{From: position.MustNew(0, 1), To: position.MustNew(0, 3)}, board.Move{})
	ctx.TotalBranches = 42

	cp := ctx.Clone()
	cp.setKillers(1, board.Move{}, board.Move{})
	cp.TotalBranches = 0

	if got := ctx.Killers(1)[0]; got.IsNull() {
		t.Error("mutating the clone must not affect the original killer table")
	}
	if ctx.TotalBranches != 42 {
		t.Errorf("unexpected branch counter: got=%d want=42", ctx.TotalBranches)
	}
}
