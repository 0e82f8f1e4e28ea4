package gods

import "github.com/JPricey/santorini-ai/common"

// Apollo may move into a space occupied by an opponent worker, swapping
// places with it. Move encoding reuses the Mortal from/to/build layout;
// the swap is implicit whenever `to` held an opponent worker at make-move
// time, so no extra payload bits are required.
func apolloGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		climbLimit := p.otherGod.ClimbHeight(p.board.GodData[player.Opponent()], fromHeight)
		var allowedHeights common.Bitboard
		for h := 0; h <= 4; h++ {
			if uint8(h) <= climbLimit {
				allowedHeights |= p.board.ExactlyLevel(h)
			}
		}
		// Apollo may step onto an opponent-occupied square (a swap) in
		// addition to empty squares, so only domes and own workers block.
		moves := common.NeighborMap[from] &^ (p.ownWorkers &^ common.SquareMask(from)) &^ p.domes & allowedHeights

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
			isSwap := p.oppoWorkers.Has(to)

			occupied := p.allWorkers &^ common.SquareMask(from)
			if !isSwap {
				occupied |= common.SquareMask(to)
			}
			unblocked := common.FullBoard &^ occupied &^ p.domes
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

func apolloMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	from, to := m.From(), m.To()
	opponent := player.Opponent()
	if board.Workers[opponent].Has(to) {
		// Swap: the opponent worker moves to `from`, ours to `to`.
		board.WorkerXor(opponent, common.SquareMask(to)|common.SquareMask(from), common.Keys)
	}
	board.WorkerXor(player, m.MoveMask(), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
}

func init() {
	register(GodPower{
		Name:         Apollo,
		Generate:     apolloGenerate,
		MakeMove:     apolloMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
