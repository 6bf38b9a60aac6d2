package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrOffBoard represents a coordinate outside the board.
	ErrOffBoard = errors.New("coordinate off board")
)

// Coord identifies a single square as a (file, rank) pair.
// The origin (0, 0) is the bottom-left corner, rank 0 being White's home rank.
type Coord struct {
	X, Y int8
}

// New returns a Coord, rejecting components outside [0, MaxComponentScalar).
func New(x, y int8) (Coord, error) {
	c := Coord{X: x, Y: y}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: (%d, %d)", ErrOffBoard, x, y)
	}
	return c, nil
}

// MustNew is New, panicking on invalid components. For fixed tables and tests.
func MustNew(x, y int8) Coord {
	c, err := New(x, y)
	if err != nil {
		panic(err)
	}
	return c
}

func NewFromNotation(n string) (Coord, error) {
	if len(n) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	c := Coord{X: int8(n[0] - 'a'), Y: int8(n[1] - '1')}
	if !c.Valid() {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, n)
	}
	return c, nil
}

func (c Coord) Valid() bool {
	return 0 <= c.X && c.X < MaxComponentScalar && 0 <= c.Y && c.Y < MaxComponentScalar
}

// Offset returns the coordinate shifted by (dx, dy). The result may be off
// board; callers check Valid before use.
func (c Coord) Offset(dx, dy int8) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return c.Notation()
}

func (c Coord) Notation() string {
	if !c.Valid() {
		return ""
	}
	return string(rune('a'+c.X)) + string(rune('1'+c.Y))
}
