package model

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Position is a (rank, file) coordinate. Rank 0 is Black's back rank, file 0 is the a-file.
type Position struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

// NewPosition returns the position at rank, file. It panics when either is outside [0,7].
func NewPosition(rank, file int) Position {
	p := Position{Rank: rank, File: file}
	p.mustBeValid()
	return p
}

func (p Position) Valid() bool {
	return p.Rank >= 0 && p.Rank < 8 && p.File >= 0 && p.File < 8
}

func (p Position) mustBeValid() {
	if !p.Valid() {
		panic(fmt.Sprintf("model: position out of range: rank=%d file=%d", p.Rank, p.File))
	}
}

func (p Position) index() int {
	return p.Rank*8 + p.File
}

func (p Position) add(d Position) Position {
	return Position{Rank: p.Rank + d.Rank, File: p.File + d.File}
}

// String returns the square name, e.g. "e2".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return fmt.Sprintf("%c%d", p.File+97, 8-p.Rank)
}

// PositionSet is an unordered set of board squares.
type PositionSet map[Position]struct{}

func newPositionSet(positions []Position) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the members ordered by rank, then file.
func (s PositionSet) Sorted() []Position {
	keys := maps.Keys(s)
	slices.SortFunc(keys, func(a, b Position) int {
		return a.index() - b.index()
	})
	return keys
}
