package chessmg

import "fmt"

// Move encodes a chess move in a 32-bit value. The bit layout is a stable
// wire format: replay tooling decodes exactly these fields, and the raw
// value is the deterministic ordering key for generated move lists.
//
// Layout (bit 0 = LSB):
//
//	0      side color (0 = white, 1 = black)
//	1-6    from square index
//	7-12   to square index
//	13-15  zero
//	16-18  piece kind moved (1 king, 2 pawn, 3 bishop, 4 knight, 5 rook, 6 queen)
//	19     double pawn push
//	20     queen-side castle
//	21     king-side castle
//	22     puts the opponent in check
//	23-25  captured piece kind (0 none, otherwise same codes as above)
//	26     en passant capture
//	27     capture of the same piece kind
//	28-30  promotion piece kind
//	31     captured piece is the king
type Move uint32

const (
	moveColorBit Move = 1 << 0

	moveFromShift = 1
	moveToShift   = 7

	movePieceShift = 16

	moveDoublePushBit  Move = 1 << 19
	moveQueenCastleBit Move = 1 << 20
	moveKingCastleBit  Move = 1 << 21
	moveCheckBit       Move = 1 << 22

	moveCaptureShift = 23

	moveEnPassantBit    Move = 1 << 26
	moveEqualCaptureBit Move = 1 << 27

	movePromoteShift = 28

	moveKingCaptureBit Move = 1 << 31
)

// MoveFlags carries the special-move markers passed to NewMove.
type MoveFlags uint8

const (
	FlagNone        MoveFlags = 0
	FlagDoublePush  MoveFlags = 1 << 0
	FlagQueenCastle MoveFlags = 1 << 1
	FlagKingCastle  MoveFlags = 1 << 2
	FlagEnPassant   MoveFlags = 1 << 3
)

// NewMove constructs a move word from its components. The equal-capture and
// king-capture bits are derived from the piece kinds; the check bit starts
// clear and is filled in by the move generator.
func NewMove(color Color, from, to Square, piece, captured, promotion Piece, flags MoveFlags) Move {
	m := Move(uint32(from&0x3f)<<moveFromShift) |
		Move(uint32(to&0x3f)<<moveToShift) |
		Move(uint32(piece&0x7)<<movePieceShift) |
		Move(uint32(promotion&0x7)<<movePromoteShift)
	if color == Black {
		m |= moveColorBit
	}
	switch captured {
	case NoPiece:
	case King:
		m |= moveKingCaptureBit
	default:
		m |= Move(uint32(captured&0x7) << moveCaptureShift)
	}
	if captured != NoPiece && captured == piece {
		m |= moveEqualCaptureBit
	}
	if flags&FlagDoublePush != 0 {
		m |= moveDoublePushBit
	}
	if flags&FlagQueenCastle != 0 {
		m |= moveQueenCastleBit
	}
	if flags&FlagKingCastle != 0 {
		m |= moveKingCastleBit
	}
	if flags&FlagEnPassant != 0 {
		m |= moveEnPassantBit
	}
	return m
}

// Color returns the side making the move.
func (m Move) Color() Color {
	if m&moveColorBit != 0 {
		return Black
	}
	return White
}

// From returns the origin square.
func (m Move) From() Square { return Square((m >> moveFromShift) & 0x3f) }

// To returns the destination square.
func (m Move) To() Square { return Square((m >> moveToShift) & 0x3f) }

// MovedPiece returns the kind of the moved piece.
func (m Move) MovedPiece() Piece { return Piece((m >> movePieceShift) & 0x7) }

// CapturedPiece returns the captured kind, or NoPiece.
func (m Move) CapturedPiece() Piece {
	if m&moveKingCaptureBit != 0 {
		return King
	}
	return Piece((m >> moveCaptureShift) & 0x7)
}

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// PromotionPiece returns the promotion kind, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece((m >> movePromoteShift) & 0x7) }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// IsDoublePush reports a two-square pawn advance.
func (m Move) IsDoublePush() bool { return m&moveDoublePushBit != 0 }

// IsQueenSideCastle reports queen-side castling.
func (m Move) IsQueenSideCastle() bool { return m&moveQueenCastleBit != 0 }

// IsKingSideCastle reports king-side castling.
func (m Move) IsKingSideCastle() bool { return m&moveKingCastleBit != 0 }

// IsCastle reports castling to either side.
func (m Move) IsCastle() bool { return m&(moveQueenCastleBit|moveKingCastleBit) != 0 }

// GivesCheck reports whether the move puts the opponent in check.
func (m Move) GivesCheck() bool { return m&moveCheckBit != 0 }

// IsEnPassant reports an en passant capture.
func (m Move) IsEnPassant() bool { return m&moveEnPassantBit != 0 }

// IsEqualCapture reports a capture of the mover's own piece kind.
func (m Move) IsEqualCapture() bool { return m&moveEqualCaptureBit != 0 }

// withCheck returns the move with the check bit set.
func (m Move) withCheck() Move { return m | moveCheckBit }

func squareName(sq Square) string {
	return fmt.Sprintf("%c%c", 'a'+byte(sq%8), '1'+byte(sq/8))
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := squareName(m.From()) + squareName(m.To())
	switch m.PromotionPiece() {
	case Queen:
		s += "q"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	case Knight:
		s += "n"
	}
	return s
}
