package engine

import (
	"math"
	"time"

	"github.com/IllyaStarikov/artificial/chessmg"
)

const (
	// MaxDepth caps iterative deepening; the clock stops every practical
	// search long before this.
	MaxDepth = 64

	// quiescenceBudget is the number of extra plies granted past the
	// nominal horizon along non-quiet lines.
	quiescenceBudget = 4
)

// PickWorst inverts the evaluator's sign at the root, making the searcher
// choose the worst move it can find instead of the best.
var PickWorst = false

// SearchResult describes the move chosen by a completed search.
type SearchResult struct {
	Move  chessmg.Move
	Next  chessmg.Position
	Score float64
	Depth int
	Nodes uint64
}

// searchContext holds the state owned by one ChooseMove call: the shared
// history-heuristic table, the soft deadline, and the identity of the
// searching player.
type searchContext struct {
	start  time.Time
	limit  time.Duration
	player chessmg.Color
	sign   float64
	table  map[chessmg.Move]int
	nodes  uint64
}

func (sc *searchContext) expired() bool { return time.Since(sc.start) > sc.limit }

// heuristic is the depth-cutoff leaf value: the material balance for the
// searching player, sign-flipped in worst-move mode.
func (sc *searchContext) heuristic(pos chessmg.Position) float64 {
	return sc.sign * Material(pos, sc.player)
}

// ChooseMove searches the position under the given time budget in seconds
// and returns the chosen move together with its successor position. If the
// position is already terminal there is no move to make and the terminal
// outcome is returned instead; the caller must handle that case.
//
// The search deepens iteratively from depth 1. An iteration interrupted by
// the deadline is discarded wholesale and the best move of the last
// completed iteration is kept, so the result is always at least the
// depth-1 choice, or the first legal move in generation order if the very
// first iteration is cut short.
func ChooseMove(pos chessmg.Position, hist History, budget float64) (SearchResult, Outcome) {
	if out := Terminal(pos, hist); out != Nonterminal {
		return SearchResult{}, out
	}

	sc := &searchContext{
		start:  time.Now(),
		limit:  time.Duration(budget * float64(time.Second)),
		player: pos.SideToMove(),
		sign:   1,
		table:  make(map[chessmg.Move]int),
	}
	if PickWorst {
		sc.sign = -1
	}

	moves := pos.LegalMoves()
	result := SearchResult{Move: moves[0]}

	for depth := 1; depth <= MaxDepth; depth++ {
		iterStart := time.Now()
		m, score, ok := sc.searchRoot(pos, hist, depth)
		lastIter := time.Since(iterStart)
		if !ok {
			break
		}
		result.Move, result.Score, result.Depth = m, score, depth
		if time.Since(sc.start)+lastIter >= sc.limit {
			break
		}
		if math.IsInf(score, 1) {
			// Forced mate; deeper iterations cannot improve on it.
			break
		}
	}

	result.Nodes = sc.nodes
	result.Next = pos.Apply(result.Move)
	return result, Nonterminal
}

// searchRoot runs one full-depth iteration. It reports ok=false when the
// deadline interrupted the iteration, in which case the partial result is
// discarded by the caller.
func (sc *searchContext) searchRoot(pos chessmg.Position, hist History, depth int) (chessmg.Move, float64, bool) {
	moves := sc.ordered(pos.LegalMoves())
	alpha, beta := math.Inf(-1), math.Inf(1)
	best := moves[0]
	value := math.Inf(-1)
	for _, m := range moves {
		next := pos.Apply(m)
		line := hist
		line.Record(next, m)
		v, ok := sc.minValue(next, m, line, depth-1, quiescenceBudget, alpha, beta)
		if !ok {
			return best, 0, false
		}
		if v > value {
			value = v
			best = m
		}
		if value > alpha {
			alpha = value
		}
	}
	sc.addHistory(best)
	return best, value, true
}

// maxValue scores the position with the searching player to move. The bool
// result is false when the deadline was exceeded; the abort propagates
// in-band up the recursion.
func (sc *searchContext) maxValue(pos chessmg.Position, inbound chessmg.Move, hist History, depth, quiescence int, alpha, beta float64) (float64, bool) {
	sc.nodes++
	if out := Terminal(pos, hist); out != Nonterminal {
		return terminalUtility(out, pos.SideToMove(), sc.player), true
	}
	if sc.expired() {
		return 0, false
	}
	if depth <= 0 {
		if nonQuiescent(inbound) && quiescence > 0 {
			quiescence--
		} else {
			return sc.heuristic(pos), true
		}
	}

	moves := sc.ordered(pos.LegalMoves())
	value := math.Inf(-1)
	best := moves[0]
	for _, m := range moves {
		next := pos.Apply(m)
		line := hist
		line.Record(next, m)
		v, ok := sc.minValue(next, m, line, depth-1, quiescence, alpha, beta)
		if !ok {
			return 0, false
		}
		if v > value {
			value = v
			best = m
		}
		if value >= beta {
			sc.addHistory(m)
			return value, true
		}
		if value > alpha {
			alpha = value
		}
	}
	sc.addHistory(best)
	return value, true
}

// minValue mirrors maxValue for the opponent's turns.
func (sc *searchContext) minValue(pos chessmg.Position, inbound chessmg.Move, hist History, depth, quiescence int, alpha, beta float64) (float64, bool) {
	sc.nodes++
	if out := Terminal(pos, hist); out != Nonterminal {
		return terminalUtility(out, pos.SideToMove(), sc.player), true
	}
	if sc.expired() {
		return 0, false
	}
	if depth <= 0 {
		if nonQuiescent(inbound) && quiescence > 0 {
			quiescence--
		} else {
			return sc.heuristic(pos), true
		}
	}

	moves := sc.ordered(pos.LegalMoves())
	value := math.Inf(1)
	best := moves[0]
	for _, m := range moves {
		next := pos.Apply(m)
		line := hist
		line.Record(next, m)
		v, ok := sc.maxValue(next, m, line, depth-1, quiescence, alpha, beta)
		if !ok {
			return 0, false
		}
		if v < value {
			value = v
			best = m
		}
		if value <= alpha {
			sc.addHistory(m)
			return value, true
		}
		if value < beta {
			beta = value
		}
	}
	sc.addHistory(best)
	return value, true
}
