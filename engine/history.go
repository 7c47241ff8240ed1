package engine

import (
	"github.com/IllyaStarikov/artificial/chessmg"
)

// maxHistory bounds the position ring; eight plies are enough for the
// repetition rule used here.
const maxHistory = 8

// History is the percept sequence threaded through the search: the last
// eight positions of the line plus the two irreversibility counters. It is
// a pure value type: an assignment copies the ring, so each recursion
// frame can extend its own copy without disturbing the caller's.
type History struct {
	ring  [maxHistory]chessmg.Position
	start int
	size  int

	sinceCapture int
	sincePawn    int
}

// NewHistory seeds a history with the given root position and counters
// (typically the half-move clock from a parsed FEN for both).
func NewHistory(p chessmg.Position, sinceCapture, sincePawn int) History {
	var h History
	h.sinceCapture = sinceCapture
	h.sincePawn = sincePawn
	h.RecordPosition(p)
	return h
}

// RecordPosition appends a position on the right, dropping the oldest
// entry once the ring is full.
func (h *History) RecordPosition(p chessmg.Position) {
	if h.size < maxHistory {
		h.ring[(h.start+h.size)%maxHistory] = p
		h.size++
		return
	}
	h.ring[h.start] = p
	h.start = (h.start + 1) % maxHistory
}

// RecordMove advances the irreversibility counters for the move that
// produced the most recently recorded position.
func (h *History) RecordMove(m chessmg.Move) {
	if m.IsCapture() {
		h.sinceCapture = 0
	} else {
		h.sinceCapture++
	}
	if m.MovedPiece() == chessmg.Pawn {
		h.sincePawn = 0
	} else {
		h.sincePawn++
	}
}

// Record appends the successor position and advances the counters in one step.
func (h *History) Record(p chessmg.Position, m chessmg.Move) {
	h.RecordPosition(p)
	h.RecordMove(m)
}

// Len returns the number of retained positions.
func (h *History) Len() int { return h.size }

// At returns the i-th retained position, oldest first.
func (h *History) At(i int) chessmg.Position { return h.ring[(h.start+i)%maxHistory] }

// SinceCapture returns the number of plies since the last capture.
func (h *History) SinceCapture() int { return h.sinceCapture }

// SincePawn returns the number of plies since the last pawn move.
func (h *History) SincePawn() int { return h.sincePawn }
