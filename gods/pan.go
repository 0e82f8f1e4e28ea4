package gods

import "github.com/JPricey/santorini-ai/common"

// Pan wins either the usual way, by climbing onto level 3, or by moving
// down two or more levels in a single step.
func panGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		moves := p.climbableFrom(from)

		winningMoves := moves & p.level3 & p.winMask
		for h := 0; h+2 <= int(fromHeight); h++ {
			winningMoves |= moves & p.board.ExactlyLevel(h)
		}
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

			occupied := (p.allWorkers &^ common.SquareMask(from)) | common.SquareMask(to)
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

func init() {
	register(GodPower{
		Name:         Pan,
		Generate:     panGenerate,
		MakeMove:     mortalMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
		IsPan:        true,
	})
}
