package model

import "fmt"

type Color int8

const (
	// None is the color of an empty square. No live piece carries it.
	None Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return ""
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	case "":
		*c = None
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return None
}

func (c Color) index() int {
	switch c {
	case White:
		return 0
	case Black:
		return 1
	}
	panic("model: color none has no side index")
}

// White pawns advance toward rank 0, black pawns toward rank 7.
func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnHomeRank() int {
	if c == White {
		return 6
	}
	return 1
}

// doubleAdvanceRank is where a pawn lands after its two-square first move.
func (c Color) doubleAdvanceRank() int {
	if c == White {
		return 4
	}
	return 3
}

func (c Color) backRank() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) promotionRank() int {
	return c.Opponent().backRank()
}
