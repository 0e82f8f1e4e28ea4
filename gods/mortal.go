package gods

import "github.com/JPricey/santorini-ai/common"

// genMortalStyle implements the common move/build algorithm (spec section
// 4.E) that Mortal and most "no special movement" gods share: move one
// worker to an adjacent open square, winning immediately by climbing onto
// level 3, otherwise building once adjacent to the worker's new position.
// requireClimb restricts the move step to squares strictly higher than
// the worker's current height, used by Persephone's forced-climb pass.
func genMortalStyle(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, requireClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		moves := p.climbableFrom(from)
		if requireClimb {
			var higher common.Bitboard
			for h := int(fromHeight) + 1; h <= 4; h++ {
				higher |= p.board.ExactlyLevel(h)
			}
			moves &= higher
		}

		winningMoves := moves & p.level3 & p.winMask
		if appendWinningMoves(&result, from, winningMoves, flags) {
			return result
		}
		moves &^= winningMoves

		if flags.Has(common.FlagMateOnly) {
			continue
		}

		for toBB := moves & common.FullBoard; toBB != 0; {
			var to common.Square
			to, toBB = toBB.PopFirst()
			toHeight := p.board.GetHeight(to)
			isImproving := toHeight > fromHeight

			unblocked := common.FullBoard &^ (p.allWorkers &^ common.SquareMask(from)) &^ common.SquareMask(to) &^ p.domes
			builds := common.NeighborMap[to] & unblocked & p.buildMask
			alreadyMatched := common.SquareMask(to)&p.keySquares != 0
			builds = narrowToKeySquares(flags, builds, alreadyMatched, p.keySquares)

			reach := reachBoard(&p, unblocked)

			for buildBB := builds & common.FullBoard; buildBB != 0; {
				var build common.Square
				build, buildBB = buildBB.PopFirst()
				m := common.NewMove(from, to, build)

				finalLevel3 := (p.level2 & common.SquareMask(build)) | (p.level3 &^ common.SquareMask(build))
				isCheck := (reach & finalLevel3).NotEmpty()

				result = append(result, common.ScoredMove{Move: m.WithCheck(isCheck), Score: scoreMove(flags, false, isCheck, isImproving)})
			}
		}
	}
	return result
}

func mortalGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	return genMortalStyle(state, player, keySquares, flags, false)
}

func mortalMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	board.WorkerXor(player, m.MoveMask(), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
}

func mortalActions(m common.Move, board *common.BoardState) []common.Action {
	if m.IsWinning() {
		return []common.Action{
			{Kind: common.ActionSelectWorker, Sq: m.From()},
			{Kind: common.ActionMoveWorker, Sq: m.To()},
			{Kind: common.ActionEndTurn, Sq: common.NoSquare},
		}
	}
	return []common.Action{
		{Kind: common.ActionSelectWorker, Sq: m.From()},
		{Kind: common.ActionMoveWorker, Sq: m.To()},
		{Kind: common.ActionBuild, Sq: m.Build()},
		{Kind: common.ActionEndTurn, Sq: common.NoSquare},
	}
}

// mortalHistoryIndex composes a compound bucket from the from/to/build
// squares and their heights, matching the reference implementation's
// history-table indexing for the Mortal move shape.
func mortalHistoryIndex(m common.Move, board *common.BoardState) int {
	from, to, build := m.From(), m.To(), m.Build()
	fh := int(board.GetHeight(from))
	th := int(board.GetHeight(to))
	bh := int(board.GetHeight(build))

	res := 4*int(from) + fh
	res = res*100 + 4*int(to) + th
	res = res*100 + 4*int(build) + bh
	return res
}

func init() {
	register(GodPower{
		Name:         Mortal,
		Generate:     mortalGenerate,
		MakeMove:     mortalMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
