package board

type PieceKind uint8

const (
	PieceUnknown PieceKind = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceKind{PieceBishop, PieceKnight, PieceRook, PieceQueen}

func (p PieceKind) String() string {
	return p.Name()
}

func (p PieceKind) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// Value is the material value used by the static evaluation.
// The King carries no material value; its safety is accounted for elsewhere.
func (p PieceKind) Value() int16 {
	switch p {
	case PiecePawn:
		return 1
	case PieceBishop, PieceKnight:
		return 3
	case PieceRook:
		return 5
	case PieceQueen:
		return 9
	default:
		return 0
	}
}

func (p PieceKind) Symbol(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p PieceKind) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is a single chessman. HasMoved gates castling and the pawn
// double-step; JustLunged marks a pawn for exactly the one ply following its
// double-step, enabling en passant against it.
type Piece struct {
	Side Side
	Kind PieceKind

	HasMoved   bool
	JustLunged bool
}

func (p Piece) String() string {
	if p.Kind == PieceUnknown {
		return ""
	}
	return p.Side.String() + " " + p.Kind.Name()
}
