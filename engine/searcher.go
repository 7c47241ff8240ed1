package engine

import (
	"fmt"
	"time"

	"github.com/IllyaStarikov/artificial/chessmg"
)

// Searcher drives a game for one side: it owns the current position, the
// percept history, the remaining clock time and the half-move counter, and
// derives each move's budget from the time policy.
type Searcher struct {
	Position  chessmg.Position
	History   History
	Remaining float64 // seconds left on our clock
	HalfMove  int
}

// NewSearcher starts a searcher from a position plus the counters a FEN
// parse reports, with the given clock time in seconds.
func NewSearcher(pos chessmg.Position, halfmoveClock, fullmove int, remaining float64) *Searcher {
	return &Searcher{
		Position:  pos,
		History:   NewHistory(pos, halfmoveClock, halfmoveClock),
		Remaining: remaining,
		HalfMove:  2 * fullmove,
	}
}

// NewSearcherFromFEN parses the FEN record and starts a searcher on it.
func NewSearcherFromFEN(fen string, remaining float64) (*Searcher, error) {
	pos, halfmove, fullmove, err := chessmg.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewSearcher(pos, halfmove, fullmove, remaining), nil
}

// Move searches under the policy budget, plays the chosen move on the
// internal state and charges the elapsed time to the clock. On a terminal
// position no move is played and the outcome is returned.
func (s *Searcher) Move() (SearchResult, Outcome) {
	budget := MoveTime(s.HalfMove, s.Remaining)
	start := time.Now()
	res, out := ChooseMove(s.Position, s.History, budget)
	if out != Nonterminal {
		return res, out
	}
	s.advance(res.Next, res.Move)
	s.Remaining -= time.Since(start).Seconds()
	return res, Nonterminal
}

// Advance plays an opponent (or forced) move identified by its origin,
// destination and promotion kind.
func (s *Searcher) Advance(from, to chessmg.Square, promotion chessmg.Piece) error {
	m, ok := s.Position.FindMove(from, to, promotion)
	if !ok {
		return fmt.Errorf("no legal move from %d to %d", from, to)
	}
	s.advance(s.Position.Apply(m), m)
	return nil
}

func (s *Searcher) advance(next chessmg.Position, m chessmg.Move) {
	s.Position = next
	s.History.Record(next, m)
	s.HalfMove++
}
