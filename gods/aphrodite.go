package gods

import "github.com/JPricey/santorini-ai/common"

// Aphrodite moves like a Mortal, but if her move brings an opponent
// worker newly adjacent to one of her own (one that wasn't adjacent to
// any Aphrodite worker before the move), that opponent worker is forced
// to be the one moved on the opponent's next turn. The forced square set
// is stashed in Aphrodite's own god-data word (as a raw 25-bit mask) and
// consulted via RestrictOpponent, so it naturally applies for exactly the
// following turn and is overwritten on Aphrodite's next move.
func aphroditeMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	before := board.Workers[player]
	beforeAdjacent := common.ApplyMappingToMask(before, &common.NeighborMap)

	mortalMakeMove(board, player, m)

	if _, won := board.GetWinner(); won {
		board.SetGodData(player, 0, common.Keys)
		return
	}

	after := board.Workers[player]
	afterAdjacent := common.ApplyMappingToMask(after, &common.NeighborMap)
	newlyAdjacent := afterAdjacent &^ beforeAdjacent
	forced := newlyAdjacent & board.Workers[player.Opponent()]

	board.SetGodData(player, common.GodData(forced&common.FullBoard), common.Keys)
}

func aphroditeRestrictOpponent(godData common.GodData, _ *common.BoardState, opponentWorkers common.Bitboard) common.Bitboard {
	forced := common.Bitboard(godData) & opponentWorkers
	if forced.IsEmpty() {
		return opponentWorkers
	}
	return forced
}

func init() {
	register(GodPower{
		Name:             Aphrodite,
		Generate:         mortalGenerate,
		MakeMove:         aphroditeMakeMove,
		Actions:          mortalActions,
		HistoryIndex:     mortalHistoryIndex,
		RestrictOpponent: aphroditeRestrictOpponent,
		IsAphrodite:      true,
	})
}
