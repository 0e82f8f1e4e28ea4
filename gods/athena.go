package gods

import "github.com/JPricey/santorini-ai/common"

// Athena moves like a Mortal. Whenever she climbs to a higher level, her
// opponent is forbidden from climbing on their very next turn: after
// every Athena move her god-data bit 0 is rewritten to reflect only
// whether *that* move climbed, so the restriction automatically expires
// the turn after it was triggered.
const athenaClimbedBit common.GodData = 1

func athenaClimbHeight(godData common.GodData, startHeight uint8) uint8 {
	if godData&athenaClimbedBit != 0 {
		return startHeight
	}
	return DefaultClimbHeight(godData, startHeight)
}

func athenaMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	fromHeight := board.GetHeight(m.From())
	toHeight := board.GetHeight(m.To())
	climbed := toHeight > fromHeight

	mortalMakeMove(board, player, m)

	var newData common.GodData
	if climbed {
		newData = athenaClimbedBit
	}
	board.SetGodData(player, newData, common.Keys)
}

func init() {
	register(GodPower{
		Name:         Athena,
		Generate:     mortalGenerate,
		MakeMove:     athenaMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
		ClimbHeight:  athenaClimbHeight,
		IsAthena:     true,
	})
}
