package engine

import (
	"math"

	"github.com/IllyaStarikov/artificial/chessmg"
)

// pieceWeights holds the material values indexed by piece code. The king
// carries no material weight.
var pieceWeights = [7]float64{
	chessmg.Pawn:   1,
	chessmg.Knight: 3,
	chessmg.Bishop: 3,
	chessmg.Rook:   5,
	chessmg.Queen:  9,
}

// Material returns the material balance from the given player's
// perspective: the weighted piece-count difference over both sides.
func Material(p chessmg.Position, player chessmg.Color) float64 {
	opp := player.Opponent()
	var value float64
	for _, kind := range [5]chessmg.Piece{chessmg.Pawn, chessmg.Knight, chessmg.Bishop, chessmg.Rook, chessmg.Queen} {
		diff := p.PieceBB(player, kind).PopCount() - p.PieceBB(opp, kind).PopCount()
		value += pieceWeights[kind] * float64(diff)
	}
	return value
}

// terminalUtility scores a terminal outcome from the searching player's
// perspective: being mated is -Inf, mating is +Inf, every draw is 0.
func terminalUtility(o Outcome, sideToMove, player chessmg.Color) float64 {
	if o != Checkmate {
		return 0
	}
	if sideToMove == player {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
