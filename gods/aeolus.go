package gods

import "github.com/JPricey/santorini-ai/common"

// Aeolus moves like a Mortal, but every move also chooses a compass
// direction: for the rest of the game (until she moves again), no
// worker of either player may move one step in that direction. The wind
// is applied wherever a generator steps through prelude.climbableFrom;
// Apollo's moves, Minotaur's pushes, Hermes's multi-square walks,
// Artemis's and Hippolyta's second steps and Prometheus's moves after a
// pre-build do not go through it and are not filtered. The
// chosen direction is packed into Move.Direction() and persisted into
// her own god-data word (bit 3 marks "a direction has been set" so an
// untouched board, where the field is all zero, is read as "no wind").
const aeolusSetBit common.GodData = 1 << 3

func aeolusWindDirection(godData common.GodData) int {
	if godData&aeolusSetBit == 0 {
		return -1
	}
	return int(godData & 0x7)
}

func aeolusGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	result := make([]common.ScoredMove, 0, len(base)*len(common.Directions))
	for _, sm := range base {
		if sm.Move.IsWinning() {
			result = append(result, sm)
			continue
		}
		for dir := range common.Directions {
			m := sm.Move.WithDirection(dir)
			result = append(result, common.ScoredMove{Move: m, Score: sm.Score})
		}
	}
	return result
}

func aeolusMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	mortalMakeMove(board, player, m)
	if _, won := board.GetWinner(); won {
		return
	}
	board.SetGodData(player, aeolusSetBit|common.GodData(m.Direction()), common.Keys)
}

func aeolusActions(m common.Move, board *common.BoardState) []common.Action {
	actions := mortalActions(m, board)
	if m.IsWinning() {
		return actions
	}
	dir := m.Direction()
	insertAt := len(actions) - 1
	windAction := common.Action{Kind: common.ActionSetWindDirection, Dir: &dir}
	actions = append(actions[:insertAt], append([]common.Action{windAction}, actions[insertAt:]...)...)
	return actions
}

func init() {
	register(GodPower{
		Name:          Aeolus,
		Generate:      aeolusGenerate,
		MakeMove:      aeolusMakeMove,
		Actions:       aeolusActions,
		HistoryIndex:  mortalHistoryIndex,
		WindDirection: aeolusWindDirection,
		IsAeolus:      true,
	})
}
