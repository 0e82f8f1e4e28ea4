package gods

import "github.com/JPricey/santorini-ai/common"

// Hephaestus may optionally build a second time on the same space as the
// first build, as long as doing so wouldn't complete a dome. The payload
// reuses the direction field as a single bit: 1 means "build twice here".
func hephaestusGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	p := buildPrelude(state, player, keySquares, flags)

	result := make([]common.ScoredMove, 0, len(base)*2)
	for _, sm := range base {
		result = append(result, sm)
		if sm.Move.IsWinning() {
			continue
		}
		buildHeight := p.board.GetHeight(sm.Move.Build())
		if buildHeight+1 >= 3 {
			continue
		}
		doubled := sm.Move.WithDirection(1)
		result = append(result, common.ScoredMove{Move: doubled, Score: sm.Score})
	}
	return result
}

func hephaestusMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	board.WorkerXor(player, m.MoveMask(), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
	if m.Direction() == 1 {
		board.BuildUp(m.Build(), common.Keys)
	}
}

func hephaestusActions(m common.Move, board *common.BoardState) []common.Action {
	actions := []common.Action{
		{Kind: common.ActionSelectWorker, Sq: m.From()},
		{Kind: common.ActionMoveWorker, Sq: m.To()},
	}
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	if m.Direction() == 1 {
		actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	}
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Hephaestus,
		Generate:     hephaestusGenerate,
		MakeMove:     hephaestusMakeMove,
		Actions:      hephaestusActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
