package engine

import (
	"golang.org/x/exp/slices"

	"github.com/IllyaStarikov/artificial/chessmg"
)

// ordered re-sorts a generated move list by the history heuristic: moves
// that recently produced a beta-cutoff or were picked as best at a node
// come first. The sort is stable, so the generator's encoded-value order
// remains the tiebreak and the search stays deterministic.
func (sc *searchContext) ordered(moves []chessmg.Move) []chessmg.Move {
	if len(sc.table) == 0 {
		return moves
	}
	slices.SortStableFunc(moves, func(a, b chessmg.Move) bool {
		return sc.table[a] > sc.table[b]
	})
	return moves
}

// addHistory credits a move that cut off or ended up best at a node.
func (sc *searchContext) addHistory(m chessmg.Move) { sc.table[m]++ }

// nonQuiescent reports a "loud" inbound move: a capture, a promotion, or a
// check as recorded on the move word.
func nonQuiescent(m chessmg.Move) bool {
	return m.IsCapture() || m.IsPromotion() || m.GivesCheck()
}
