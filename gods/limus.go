package gods

import "github.com/JPricey/santorini-ai/common"

// Limus's opponents may not build on any space adjacent to a Limus
// worker; moving onto such a space is not restricted.
func limusBuildMask(limusWorkers common.Bitboard) common.Bitboard {
	return common.ApplyMappingToMask(limusWorkers, &common.NeighborMap)
}

func init() {
	register(GodPower{
		Name:         Limus,
		Generate:     mortalGenerate,
		MakeMove:     mortalMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
		BuildMask:    limusBuildMask,
		IsLimus:      true,
	})
}
