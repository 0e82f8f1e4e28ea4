package gods

import "github.com/JPricey/santorini-ai/common"

// Morpheus may bank a turn instead of moving, incrementing an
// accumulated-builds counter kept in his god-data word, and later spend
// one banked build to add an extra build (on a different space, like
// Demeter) onto an otherwise ordinary move. A banked turn is represented
// as a move whose `from` field is out of range (31); Morpheus's own
// MakeMove, Actions and HistoryIndex recognise it by value.
const morpheusBankMove common.Move = 31

func morpheusCounter(board *common.BoardState, player common.Player) int {
	return int(board.GodData[player] & 0x1f)
}

func morpheusGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	base := genMortalStyle(state, player, keySquares, flags, false)
	p := buildPrelude(state, player, keySquares, flags)

	result := make([]common.ScoredMove, 0, len(base)*2+1)
	result = append(result, base...)

	if !flags.Has(common.FlagMateOnly) {
		result = append(result, common.ScoredMove{Move: morpheusBankMove, Score: 0})
	}

	if morpheusCounter(p.board, player) <= 0 {
		return result
	}
	for _, sm := range base {
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
		extraBuilds := common.NeighborMap[to] &^ occupied &^ domesAfterFirst &^ common.SquareMask(firstBuild) & p.buildMask
		for ebBB := extraBuilds & common.FullBoard; ebBB != 0; {
			var extra common.Square
			extra, ebBB = ebBB.PopFirst()
			m := sm.Move.WithExtraSquare(extra)
			result = append(result, common.ScoredMove{Move: m, Score: sm.Score})
		}
	}
	return result
}

func morpheusMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	if m == morpheusBankMove {
		count := morpheusCounter(board, player)
		if count < 31 {
			count++
		}
		board.SetGodData(player, common.GodData(count), common.Keys)
		return
	}

	usedExtra := m.ExtraSquare() != common.NoSquare
	mortalMakeMove(board, player, m)
	if usedExtra {
		board.BuildUp(m.ExtraSquare(), common.Keys)
		count := morpheusCounter(board, player)
		board.SetGodData(player, common.GodData(count-1), common.Keys)
	}
}

func morpheusActions(m common.Move, board *common.BoardState) []common.Action {
	if m == morpheusBankMove {
		return []common.Action{{Kind: common.ActionEndTurn, Sq: common.NoSquare}}
	}
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

func morpheusHistoryIndex(m common.Move, board *common.BoardState) int {
	if m == morpheusBankMove {
		return 0
	}
	return mortalHistoryIndex(m, board)
}

func init() {
	register(GodPower{
		Name:         Morpheus,
		Generate:     morpheusGenerate,
		MakeMove:     morpheusMakeMove,
		Actions:      morpheusActions,
		HistoryIndex: morpheusHistoryIndex,
	})
}
