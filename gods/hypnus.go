package gods

import "github.com/JPricey/santorini-ai/common"

// Hypnus forbids the opponent from moving their tallest worker, as long
// as that worker's height is uniquely the tallest (a tie leaves both
// movable) and at least one other worker remains free to act.
func hypnusRestrictOpponent(_ common.GodData, board *common.BoardState, opponentWorkers common.Bitboard) common.Bitboard {
	squares := opponentWorkers.Squares()
	if len(squares) < 2 {
		return opponentWorkers
	}

	tallest := squares[0]
	tallestHeight := board.GetHeight(tallest)
	tie := false
	for _, sq := range squares[1:] {
		h := board.GetHeight(sq)
		if h > tallestHeight {
			tallest, tallestHeight, tie = sq, h, false
		} else if h == tallestHeight {
			tie = true
		}
	}
	if tie {
		return opponentWorkers
	}
	return opponentWorkers &^ common.SquareMask(tallest)
}

func init() {
	register(GodPower{
		Name:             Hypnus,
		Generate:         mortalGenerate,
		MakeMove:         mortalMakeMove,
		Actions:          mortalActions,
		HistoryIndex:     mortalHistoryIndex,
		RestrictOpponent: hypnusRestrictOpponent,
		IsHypnus:         true,
	})
}
