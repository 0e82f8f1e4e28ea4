package gods

import "github.com/JPricey/santorini-ai/common"

// Demeter may build a second time after her first build, as long as the
// second build lands on a different space. The second build square is
// packed into Move.ExtraSquare(); NoSquare means only one build was made.
func demeterGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	p := buildPrelude(state, player, keySquares, flags)

	result := make([]common.ScoredMove, 0, len(base)*2)
	for _, sm := range base {
		result = append(result, sm)
		if sm.Move.IsWinning() {
			continue
		}
		to := sm.Move.To()
		firstBuild := sm.Move.Build()

		occupied := (p.allWorkers &^ common.SquareMask(sm.Move.From())) | common.SquareMask(to)
		domesAfterFirst := p.domes
		if p.board.GetHeight(firstBuild) == 3 {
			domesAfterFirst |= common.SquareMask(firstBuild)
		}
		secondBuilds := common.NeighborMap[to] &^ occupied &^ domesAfterFirst &^ common.SquareMask(firstBuild) & p.buildMask
		for sbBB := secondBuilds & common.FullBoard; sbBB != 0; {
			var second common.Square
			second, sbBB = sbBB.PopFirst()
			m := sm.Move.WithExtraSquare(second)
			result = append(result, common.ScoredMove{Move: m, Score: sm.Score})
		}
	}
	return result
}

func demeterMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	board.WorkerXor(player, m.MoveMask(), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
	if second := m.ExtraSquare(); second != common.NoSquare {
		board.BuildUp(second, common.Keys)
	}
}

func demeterActions(m common.Move, board *common.BoardState) []common.Action {
	actions := []common.Action{
		{Kind: common.ActionSelectWorker, Sq: m.From()},
		{Kind: common.ActionMoveWorker, Sq: m.To()},
	}
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	if second := m.ExtraSquare(); second != common.NoSquare {
		actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: second})
	}
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Demeter,
		Generate:     demeterGenerate,
		MakeMove:     demeterMakeMove,
		Actions:      demeterActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
