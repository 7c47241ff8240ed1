package chessmg

import "golang.org/x/exp/slices"

// Target-set generators. Each returns the set of destination squares for the
// given piece set, before king-safety filtering.

func kingTargets(king, own Bitboard) Bitboard {
	return (king.Step(North) | king.Step(South) | king.Step(East) | king.Step(West) |
		king.Step(Northeast) | king.Step(Northwest) | king.Step(Southeast) | king.Step(Southwest)) &^ own
}

func knightTargets(knights, own Bitboard) Bitboard {
	return knightPattern(knights) &^ own
}

// rookTargets fills the four orthogonal rays. A ray square stays free while
// it is not ours and the square stepped over was not an enemy, so each ray
// includes the first enemy square and stops there. The origin squares are
// cleared at the end.
func rookTargets(rooks, own, enemy Bitboard) Bitboard {
	notOwn := ^own
	notEnemy := ^enemy
	return (fillNorth(rooks, notOwn&notEnemy.Step(North)) |
		fillSouth(rooks, notOwn&notEnemy.Step(South)) |
		fillEast(rooks, notOwn&notEnemy.Step(East)) |
		fillWest(rooks, notOwn&notEnemy.Step(West))) ^ rooks
}

func bishopTargets(bishops, own, enemy Bitboard) Bitboard {
	notOwn := ^own
	notEnemy := ^enemy
	return (fillNortheast(bishops, notOwn&notEnemy.Step(Northeast)) |
		fillNorthwest(bishops, notOwn&notEnemy.Step(Northwest)) |
		fillSoutheast(bishops, notOwn&notEnemy.Step(Southeast)) |
		fillSouthwest(bishops, notOwn&notEnemy.Step(Southwest))) ^ bishops
}

func queenTargets(queens, own, enemy Bitboard) Bitboard {
	return rookTargets(queens, own, enemy) | bishopTargets(queens, own, enemy)
}

func pawnTargets(pawns, own, enemy Bitboard, c Color) Bitboard {
	free := ^own & ^enemy
	if c == White {
		single := pawns.Step(North) & free
		double := ((pawns & rank2).Step(North) & free).Step(North) & free
		captures := (pawns.Step(Northeast) | pawns.Step(Northwest)) & enemy
		return single | double | captures
	}
	single := pawns.Step(South) & free
	double := ((pawns & rank7).Step(South) & free).Step(South) & free
	captures := (pawns.Step(Southeast) | pawns.Step(Southwest)) & enemy
	return single | double | captures
}

// attackSet is the union of every standard target set for the given side.
// It is the aggregate used for king-safety and check queries; pawn pushes
// inside it are harmless there because a push square is never occupied.
func (p *Position) attackSet(c Color) Bitboard {
	own := p.occupied[c]
	enemy := p.occupied[c.Opponent()]
	return kingTargets(p.pieces[c][King], own) |
		queenTargets(p.pieces[c][Queen], own, enemy) |
		rookTargets(p.pieces[c][Rook], own, enemy) |
		bishopTargets(p.pieces[c][Bishop], own, enemy) |
		knightTargets(p.pieces[c][Knight], own) |
		pawnTargets(p.pieces[c][Pawn], own, enemy, c)
}

// InCheck reports whether the given side's king is attacked.
func (p *Position) InCheck(c Color) bool {
	return p.attackSet(c.Opponent())&p.pieces[c][King] != 0
}

// attackedSquares extends attackSet with pawn capture squares regardless of
// occupancy. attackSet suffices for king-safety tests because the tested
// king occupies its square in the hypothetical position; the castling path
// squares are empty, so pawn coverage of them must be added explicitly.
func (p *Position) attackedSquares(c Color) Bitboard {
	pawns := p.pieces[c][Pawn]
	var diagonals Bitboard
	if c == White {
		diagonals = pawns.Step(Northeast) | pawns.Step(Northwest)
	} else {
		diagonals = pawns.Step(Southeast) | pawns.Step(Southwest)
	}
	return p.attackSet(c) | diagonals
}

// PseudoMoves generates the candidate moves for the side to move without
// the king-safety filter: piece rules, blockers and occupancy are obeyed,
// en passant needs the recorded target, and castling needs intact rights
// plus an empty path, but no attack conditions are tested. The list is
// sorted by the encoded move value.
func (p *Position) PseudoMoves() []Move {
	us := p.sideToMove
	them := us.Opponent()
	own := p.occupied[us]
	enemy := p.occupied[them]

	moves := make([]Move, 0, 48)

	for _, kind := range pieceKinds {
		for _, piece := range p.pieces[us][kind].Singles() {
			var targets Bitboard
			switch kind {
			case King:
				targets = kingTargets(piece, own)
			case Queen:
				targets = queenTargets(piece, own, enemy)
			case Rook:
				targets = rookTargets(piece, own, enemy)
			case Bishop:
				targets = bishopTargets(piece, own, enemy)
			case Knight:
				targets = knightTargets(piece, own)
			case Pawn:
				targets = pawnTargets(piece, own, enemy, us)
			}
			from := piece.first()
			for _, target := range targets.Singles() {
				to := target.first()
				var captured Piece
				if enemy&target != 0 {
					captured, _ = p.PieceAt(to)
				}
				if kind == Pawn && target&ranks1And8 != 0 {
					for _, promo := range [4]Piece{Queen, Rook, Bishop, Knight} {
						moves = append(moves, NewMove(us, from, to, Pawn, captured, promo, FlagNone))
					}
					continue
				}
				flags := FlagNone
				if kind == Pawn && piece&ranks2And7 != 0 && target&ranks4And5 != 0 {
					flags = FlagDoublePush
				}
				moves = append(moves, NewMove(us, from, to, kind, captured, NoPiece, flags))
			}
		}
	}

	// En passant: every own pawn beside the vulnerable pawn may capture it,
	// landing one step behind it.
	if p.enPassant != 0 {
		beside := p.enPassant.Step(East) | p.enPassant.Step(West)
		landing := p.enPassant.Step(North)
		if us == Black {
			landing = p.enPassant.Step(South)
		}
		for _, pawn := range (p.pieces[us][Pawn] & beside).Singles() {
			moves = append(moves, NewMove(us, pawn.first(), landing.first(), Pawn, Pawn, NoPiece, FlagEnPassant))
		}
	}

	rules := castleRules[us]
	if rights := p.castling & (rules.shortRook | rules.longRook); rights != 0 {
		occ := p.AllOccupied()
		if rights&rules.shortRook != 0 && occ&rules.shortPath == 0 {
			moves = append(moves, NewMove(us, rules.kingFrom, rules.shortTo, King, NoPiece, NoPiece, FlagKingCastle))
		}
		if rights&rules.longRook != 0 && occ&rules.longPath == 0 {
			moves = append(moves, NewMove(us, rules.kingFrom, rules.longTo, King, NoPiece, NoPiece, FlagQueenCastle))
		}
	}

	slices.Sort(moves)
	return moves
}

// LegalMoves filters PseudoMoves by own-king safety: each candidate's
// successor position is built and the mover's king must not lie in the
// opponent's aggregate attack set there. Castling additionally requires the
// king's start and crossing squares to be unattacked in the current
// position. The check bit of each surviving move is filled from the same
// successor before the list is re-sorted by encoded value.
func (p *Position) LegalMoves() []Move {
	us := p.sideToMove
	them := us.Opponent()

	pseudo := p.PseudoMoves()
	moves := pseudo[:0]

	crossChecked := false
	var enemyAttacks Bitboard
	for _, m := range pseudo {
		if m.IsCastle() {
			if !crossChecked {
				enemyAttacks = p.attackedSquares(them)
				crossChecked = true
			}
			rules := castleRules[us]
			cross := rules.shortCross
			if m.IsQueenSideCastle() {
				cross = rules.longCross
			}
			if enemyAttacks&cross != 0 {
				continue
			}
		}
		next := p.Apply(m)
		if next.attackSet(them)&next.pieces[us][King] != 0 {
			continue
		}
		if next.attackSet(us)&next.pieces[them][King] != 0 {
			m = m.withCheck()
		}
		moves = append(moves, m)
	}
	// Setting check bits can perturb the pseudo order, so restore the
	// encoded-value order before returning.
	slices.Sort(moves)
	return moves
}

// Castling geometry per side: the rook home squares carrying the rights,
// the between squares that must be empty, the squares the king starts on
// and crosses (which must be unattacked), and the king's destination.
var castleRules = [2]struct {
	kingFrom              Square
	shortRook, longRook   Bitboard
	shortPath, longPath   Bitboard
	shortCross, longCross Bitboard
	shortTo, longTo       Square
}{
	{4, SquareBB(7), SquareBB(0), SquareBB(5) | SquareBB(6), SquareBB(1) | SquareBB(2) | SquareBB(3), SquareBB(4) | SquareBB(5), SquareBB(4) | SquareBB(3), 6, 2},
	{60, SquareBB(63), SquareBB(56), SquareBB(61) | SquareBB(62), SquareBB(57) | SquareBB(58) | SquareBB(59), SquareBB(60) | SquareBB(61), SquareBB(60) | SquareBB(59), 62, 58},
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool { return len(p.LegalMoves()) > 0 }

// FindMove looks up the legal move matching the given origin, destination
// and promotion kind, returning the fully encoded move word.
func (p *Position) FindMove(from, to Square, promotion Piece) (Move, bool) {
	for _, m := range p.LegalMoves() {
		if m.From() == from && m.To() == to && m.PromotionPiece() == promotion {
			return m, true
		}
	}
	return 0, false
}
