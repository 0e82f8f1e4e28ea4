package gods

import "github.com/JPricey/santorini-ai/common"

// persephoneGenerate forces a climbing move whenever one is available:
// it first tries the plain Mortal algorithm restricted to climbing moves
// (a caller passing mustClimb=true skips this pass), and only falls back
// to ordinary Mortal movement when no climb exists. Persephone additionally treats squares adjacent to a Pan
// opponent's workers as key squares, since Pan can win by descending and
// a blocking build there matters just as much as blocking a climb.
func persephoneGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	if !mustClimb {
		if climbing := genMortalStyle(state, player, keySquares, flags, true); len(climbing) > 0 {
			return climbing
		}
	}

	p := buildPrelude(state, player, keySquares, flags)
	if p.otherGod.IsPan {
		vsPanKeyBuilds := common.ApplyMappingToMask(p.oppoWorkers, &common.NeighborMap)
		keySquares |= vsPanKeyBuilds
	}
	return genMortalStyle(state, player, keySquares, flags, false)
}

func init() {
	register(GodPower{
		Name:         Persephone,
		Generate:     persephoneGenerate,
		MakeMove:     mortalMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
		IsPersephone: true,
	})
}
