package gods

import "github.com/JPricey/santorini-ai/common"

// Selene's tagged female worker may additionally build on the square it
// just vacated, on top of its ordinary post-move build, provided that
// square is below level 3 and not domed. The extra build square is packed into
// Move.ExtraSquare() when used.
func seleneGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	p := buildPrelude(state, player, keySquares, flags)
	female := femaleWorkerSquare(p.board, player)

	result := make([]common.ScoredMove, 0, len(base)*2)
	for _, sm := range base {
		result = append(result, sm)
		if sm.Move.IsWinning() || sm.Move.From() != female {
			continue
		}
		vacated := sm.Move.From()
		if p.board.GetHeight(vacated) == 3 || p.domes.Has(vacated) {
			continue
		}
		m := sm.Move.WithExtraSquare(vacated)
		result = append(result, common.ScoredMove{Move: m, Score: sm.Score})
	}
	return result
}

func seleneMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	female := femaleWorkerSquare(board, player)
	vacated := m.From()
	mortalMakeMove(board, player, m)
	if extra := m.ExtraSquare(); extra != common.NoSquare {
		board.BuildUp(extra, common.Keys)
	}
	if vacated == female {
		setFemaleWorkerSquare(board, player, m.To())
	} else {
		setFemaleWorkerSquare(board, player, female)
	}
}

func seleneActions(m common.Move, board *common.BoardState) []common.Action {
	actions := []common.Action{
		{Kind: common.ActionSelectWorker, Sq: m.From()},
		{Kind: common.ActionMoveWorker, Sq: m.To()},
	}
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	if extra := m.ExtraSquare(); extra != common.NoSquare {
		actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: extra})
	}
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Selene,
		Generate:     seleneGenerate,
		MakeMove:     seleneMakeMove,
		Actions:      seleneActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
