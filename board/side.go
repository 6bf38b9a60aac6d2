package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward is the rank direction pawns of this side advance in.
func (s Side) Forward() int8 {
	switch s {
	case SideWhite:
		return 1
	case SideBlack:
		return -1
	default:
		return 0
	}
}

// HomeRank is the rank this side's back pieces start on.
func (s Side) HomeRank() int8 {
	switch s {
	case SideWhite:
		return 0
	case SideBlack:
		return 7
	default:
		return -1
	}
}

// PromotionRank is the farthest rank from this side's home, where its pawns promote.
func (s Side) PromotionRank() int8 {
	return s.Opposite().HomeRank()
}
