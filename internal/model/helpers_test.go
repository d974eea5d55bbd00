package model

import (
	"fmt"
	"testing"
)

// sq converts a square name such as "e2" to a Position.
func sq(t testing.TB, name string) Position {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("bad square name %q", name)
	}
	return Position{Rank: 8 - int(name[1]-'0'), File: int(name[0] - 'a')}
}

var diagramPieces = map[byte]PieceType{'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King}

// boardFromDiagram builds a board from eight rows, rank 8 first. Upper case is White,
// lower case Black and '.' an empty square.
func boardFromDiagram(t testing.TB, turn Color, rows ...string) *Board {
	t.Helper()
	placements, err := diagramPlacements(rows)
	if err != nil {
		t.Fatalf("diagram: %v", err)
	}
	b, err := NewCustomBoard(turn, placements...)
	if err != nil {
		t.Fatalf("NewCustomBoard: %v", err)
	}
	return b
}

func diagramPlacements(rows []string) ([]Placement, error) {
	if len(rows) != 8 {
		return nil, fmt.Errorf("want 8 rows, got %d", len(rows))
	}
	var placements []Placement
	for rank, row := range rows {
		if len(row) != 8 {
			return nil, fmt.Errorf("row %d has %d squares", rank, len(row))
		}
		for file := 0; file < 8; file++ {
			ch := row[file]
			if ch == '.' {
				continue
			}
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
				ch += 'a' - 'A'
			}
			typ, ok := diagramPieces[ch]
			if !ok {
				return nil, fmt.Errorf("unknown piece %q", row[file])
			}
			placements = append(placements, Placement{Type: typ, Color: color, Position: Position{Rank: rank, File: file}})
		}
	}
	return placements, nil
}

func pieceOn(t testing.TB, b *Board, name string) Piece {
	t.Helper()
	p, ok := b.PieceAt(sq(t, name))
	if !ok {
		t.Fatalf("no piece on %s", name)
	}
	return p
}

// play makes each move given as "e2e4" and fails the test on the first rejection.
func play(t testing.TB, b *Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("bad move %q", m)
		}
		p := pieceOn(t, b, m[:2])
		if _, err := b.TryMove(p, sq(t, m[2:]), ""); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
}

func squareNames(s PositionSet) []string {
	var out []string
	for _, p := range s.Sorted() {
		out = append(out, p.String())
	}
	return out
}

func assertMoves(t testing.TB, got PositionSet, want ...string) {
	t.Helper()
	wantSet := PositionSet{}
	for _, name := range want {
		wantSet[sq(t, name)] = struct{}{}
	}
	if len(got) != len(wantSet) {
		t.Fatalf("moves: got %v want %v", squareNames(got), squareNames(wantSet))
	}
	for p := range wantSet {
		if !got.Contains(p) {
			t.Fatalf("moves: got %v want %v", squareNames(got), squareNames(wantSet))
		}
	}
}

func countLegalMoves(b *Board, c Color) int {
	n := 0
	for _, p := range b.Pieces(c) {
		n += len(b.LegalMoves(p))
	}
	return n
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}
