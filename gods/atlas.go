package gods

import "github.com/JPricey/santorini-ai/common"

// Atlas may build a dome at any height instead of the usual one-story
// build. Direction-field value 2 marks a move whose build is a forced
// dome rather than a normal build-up, distinguishing (for example) a
// dome placed on an empty square from an ordinary first build there.
func atlasGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	p := buildPrelude(state, player, keySquares, flags)

	result := make([]common.ScoredMove, 0, len(base)*2)
	for _, sm := range base {
		result = append(result, sm)
		if sm.Move.IsWinning() {
			continue
		}
		if p.board.GetHeight(sm.Move.Build()) == 3 {
			// Already a normal dome; no separate encoding needed.
			continue
		}
		domed := sm.Move.WithDirection(2)
		result = append(result, common.ScoredMove{Move: domed, Score: sm.Score})
	}
	return result
}

func atlasMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	board.WorkerXor(player, m.MoveMask(), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	if m.Direction() == 2 {
		board.Dome(m.Build(), common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
}

func atlasActions(m common.Move, board *common.BoardState) []common.Action {
	actions := []common.Action{
		{Kind: common.ActionSelectWorker, Sq: m.From()},
		{Kind: common.ActionMoveWorker, Sq: m.To()},
	}
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	if m.Direction() == 2 {
		actions = append(actions, common.Action{Kind: common.ActionDome, Sq: m.Build()})
	} else {
		actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	}
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Atlas,
		Generate:     atlasGenerate,
		MakeMove:     atlasMakeMove,
		Actions:      atlasActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
