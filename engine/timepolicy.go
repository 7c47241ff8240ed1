package engine

import "math"

// MoveTime returns the per-move time budget in seconds for the given
// half-move number and remaining clock time. The bell curve peaks around
// the 40th full move, spending the most thought in the middlegame and
// tapering off toward the opening and endgame; the 0.1 floor keeps a
// minimum share of the clock in play at every stage.
func MoveTime(halfMove int, remaining float64) float64 {
	const (
		share  = 0.035
		center = 80.0
		width  = 35.0
	)
	n := float64(halfMove)
	return remaining * share * (0.1 + math.Exp(-((n-center)*(n-center))/(2*width*width)))
}
