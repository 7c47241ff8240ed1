package chessmg

import "testing"

func TestMoveEncodingRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		color     Color
		from, to  Square
		piece     Piece
		captured  Piece
		promotion Piece
		flags     MoveFlags
	}{
		{"quiet knight", White, 6, 21, Knight, NoPiece, NoPiece, FlagNone},
		{"double push", White, 12, 28, Pawn, NoPiece, NoPiece, FlagDoublePush},
		{"rook takes queen", Black, 56, 59, Rook, Queen, NoPiece, FlagNone},
		{"equal capture", White, 0, 56, Rook, Rook, NoPiece, FlagNone},
		{"en passant", Black, 27, 20, Pawn, Pawn, NoPiece, FlagEnPassant},
		{"king side castle", White, 4, 6, King, NoPiece, NoPiece, FlagKingCastle},
		{"queen side castle", Black, 60, 58, King, NoPiece, NoPiece, FlagQueenCastle},
		{"promotion", White, 52, 60, Pawn, NoPiece, Queen, FlagNone},
		{"underpromotion capture", Black, 8, 1, Pawn, Rook, Knight, FlagNone},
		{"king capture sentinel", White, 10, 18, Bishop, King, NoPiece, FlagNone},
	}
	for _, tc := range cases {
		m := NewMove(tc.color, tc.from, tc.to, tc.piece, tc.captured, tc.promotion, tc.flags)
		if m.Color() != tc.color {
			t.Errorf("%s: color got %v want %v", tc.name, m.Color(), tc.color)
		}
		if m.From() != tc.from || m.To() != tc.to {
			t.Errorf("%s: squares got %d->%d want %d->%d", tc.name, m.From(), m.To(), tc.from, tc.to)
		}
		if m.MovedPiece() != tc.piece {
			t.Errorf("%s: piece got %v want %v", tc.name, m.MovedPiece(), tc.piece)
		}
		if m.CapturedPiece() != tc.captured {
			t.Errorf("%s: captured got %v want %v", tc.name, m.CapturedPiece(), tc.captured)
		}
		if m.PromotionPiece() != tc.promotion {
			t.Errorf("%s: promotion got %v want %v", tc.name, m.PromotionPiece(), tc.promotion)
		}
		if m.IsDoublePush() != (tc.flags&FlagDoublePush != 0) {
			t.Errorf("%s: double push flag mismatch", tc.name)
		}
		if m.IsKingSideCastle() != (tc.flags&FlagKingCastle != 0) ||
			m.IsQueenSideCastle() != (tc.flags&FlagQueenCastle != 0) {
			t.Errorf("%s: castle flags mismatch", tc.name)
		}
		if m.IsEnPassant() != (tc.flags&FlagEnPassant != 0) {
			t.Errorf("%s: en passant flag mismatch", tc.name)
		}
		wantEqual := tc.captured != NoPiece && tc.captured == tc.piece
		if m.IsEqualCapture() != wantEqual {
			t.Errorf("%s: equal capture flag mismatch", tc.name)
		}
		if m.GivesCheck() {
			t.Errorf("%s: check bit must start clear", tc.name)
		}
	}
}

// The raw bit pattern is a wire format; pin a few exact words so a layout
// regression cannot hide behind a symmetric encode/decode bug.
func TestMoveEncodingExactBits(t *testing.T) {
	e2e4 := NewMove(White, 12, 28, Pawn, NoPiece, NoPiece, FlagDoublePush)
	if uint32(e2e4) != 0xa0e18 {
		t.Fatalf("e2e4 encoded as %#x, want 0xa0e18", uint32(e2e4))
	}
	axb1q := NewMove(Black, 8, 1, Pawn, Rook, Queen, FlagNone)
	if uint32(axb1q) != 0x62820091 {
		t.Fatalf("a2xb1=Q encoded as %#x, want 0x62820091", uint32(axb1q))
	}
	castle := NewMove(White, 4, 6, King, NoPiece, NoPiece, FlagKingCastle)
	if uint32(castle) != 0x210308 {
		t.Fatalf("O-O encoded as %#x, want 0x210308", uint32(castle))
	}
}

func TestMoveString(t *testing.T) {
	if s := NewMove(White, 12, 28, Pawn, NoPiece, NoPiece, FlagDoublePush).String(); s != "e2e4" {
		t.Fatalf("got %q want e2e4", s)
	}
	if s := NewMove(White, 52, 60, Pawn, NoPiece, Queen, FlagNone).String(); s != "e7e8q" {
		t.Fatalf("got %q want e7e8q", s)
	}
	if s := NewMove(Black, 8, 1, Pawn, Rook, Knight, FlagNone).String(); s != "a2b1n" {
		t.Fatalf("got %q want a2b1n", s)
	}
}
