package engine

import (
	"github.com/IllyaStarikov/artificial/chessmg"
)

// Outcome classifies a position for the side to move.
type Outcome int

const (
	Nonterminal Outcome = iota
	Checkmate           // side to move is mated
	Stalemate
	DrawByRepetition
	DrawByFiftyMoves
	DrawByMaterial
)

func (o Outcome) String() string {
	switch o {
	case Nonterminal:
		return "nonterminal"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	case DrawByFiftyMoves:
		return "draw by fifty-move rule"
	case DrawByMaterial:
		return "draw by insufficient material"
	}
	return "unknown"
}

// IsDraw reports whether the outcome is any of the draw conditions.
func (o Outcome) IsDraw() bool {
	return o == Stalemate || o == DrawByRepetition || o == DrawByFiftyMoves || o == DrawByMaterial
}

// Terminal classifies the position given the history of the line leading
// to it. A side with no legal moves is mated or stalemated; otherwise the
// draw rules are checked in turn.
func Terminal(p chessmg.Position, h History) Outcome {
	if !p.HasLegalMoves() {
		if p.InCheck(p.SideToMove()) {
			return Checkmate
		}
		return Stalemate
	}
	if isRepetition(h) {
		return DrawByRepetition
	}
	if insufficientMaterial(p) {
		return DrawByMaterial
	}
	if h.SinceCapture() >= 50 && h.SincePawn() > 50 {
		return DrawByFiftyMoves
	}
	return Nonterminal
}

// isRepetition applies the bounded repetition rule: with the ring full, the
// line has cycled with period four twice over, and neither a capture nor a
// pawn move happened inside the window. This is deliberately weaker than
// strict threefold repetition.
func isRepetition(h History) bool {
	if h.Len() < maxHistory {
		return false
	}
	for i := 0; i < 4; i++ {
		if h.At(i) != h.At(i+4) {
			return false
		}
	}
	return h.SinceCapture() >= 8 && h.SincePawn() >= 8
}

// insufficientMaterial reports a dead position: bare kings, or a single
// knight or bishop (either color) against a bare king.
func insufficientMaterial(p chessmg.Position) bool {
	var heavy, minors chessmg.Bitboard
	for c := chessmg.White; c <= chessmg.Black; c++ {
		heavy |= p.PieceBB(c, chessmg.Queen) | p.PieceBB(c, chessmg.Rook) | p.PieceBB(c, chessmg.Pawn)
		minors |= p.PieceBB(c, chessmg.Knight) | p.PieceBB(c, chessmg.Bishop)
	}
	return heavy == 0 && minors.PopCount() <= 1
}
