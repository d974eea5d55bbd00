package model

import (
	"errors"
	"testing"
)

var promotionRows = []string{
	"r...k...",
	".P......",
	"........",
	"........",
	"........",
	"........",
	"........",
	"....K...",
}

func TestMovePiecePromotesToQueen(t *testing.T) {
	b := boardFromDiagram(t, White, promotionRows...)
	if !b.MovePiece(pieceOn(t, b, "b7"), sq(t, "b8")) {
		t.Fatalf("b8 rejected")
	}
	queen := pieceOn(t, b, "b8")
	if queen.Type != Queen || queen.Color != White {
		t.Fatalf("b8 holds %s", queen)
	}
	if got := b.MoveCount(queen); got != 1 {
		t.Fatalf("promoted piece move count: got %d want 1", got)
	}
	plies := b.Plies()
	if len(plies) != 1 || plies[0].Promotion != Queen || plies[0].Piece.Type != Pawn {
		t.Fatalf("ply: %+v", plies)
	}
	if !b.IsInCheck(Black) {
		t.Fatalf("queen on b8 should check the e8 king")
	}
}

func TestTryMovePromotion(t *testing.T) {
	tests := []struct {
		name      string
		to        string
		promotion PieceType
		want      PieceType
		wantErr   error
	}{
		{name: "default", to: "b8", want: Queen},
		{name: "knight", to: "b8", promotion: Knight, want: Knight},
		{name: "rook with capture", to: "a8", promotion: Rook, want: Rook},
		{name: "bishop", to: "b8", promotion: Bishop, want: Bishop},
		{name: "king", to: "b8", promotion: King, wantErr: ErrInvalidPromotion},
		{name: "pawn", to: "b8", promotion: Pawn, wantErr: ErrInvalidPromotion},
		{name: "unknown", to: "b8", promotion: "wizard", wantErr: ErrInvalidPromotion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromDiagram(t, White, promotionRows...)
			ply, err := b.TryMove(pieceOn(t, b, "b7"), sq(t, tt.to), tt.promotion)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v want %v", err, tt.wantErr)
				}
				if got := pieceOn(t, b, "b7"); got.Type != Pawn {
					t.Fatalf("b7 holds %s after rejection", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("TryMove: %v", err)
			}
			if got := pieceOn(t, b, tt.to); got.Type != tt.want || got.Color != White {
				t.Fatalf("%s holds %s", tt.to, got)
			}
			if ply.Promotion != tt.want {
				t.Fatalf("ply promotion: got %q want %q", ply.Promotion, tt.want)
			}
		})
	}
}

func TestBlackPromotion(t *testing.T) {
	b := boardFromDiagram(t, Black,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"......p.",
		"K.......",
	)
	ply, err := b.TryMove(pieceOn(t, b, "g2"), sq(t, "g1"), Rook)
	if err != nil {
		t.Fatalf("g1=R: %v", err)
	}
	if got := pieceOn(t, b, "g1"); got.Type != Rook || got.Color != Black {
		t.Fatalf("g1 holds %s", got)
	}
	if !ply.Check {
		t.Fatalf("rook on g1 should check the a1 king")
	}
}

func TestPromotionIgnoredOffTheLastRank(t *testing.T) {
	b := NewBoard()
	ply, err := b.TryMove(pieceOn(t, b, "e2"), sq(t, "e4"), Knight)
	if err != nil {
		t.Fatalf("e4: %v", err)
	}
	if ply.Promotion != "" {
		t.Fatalf("ordinary pawn move recorded promotion %q", ply.Promotion)
	}
	if got := pieceOn(t, b, "e4"); got.Type != Pawn {
		t.Fatalf("e4 holds %s", got)
	}
}
