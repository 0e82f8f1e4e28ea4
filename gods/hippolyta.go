package gods

import "github.com/JPricey/santorini-ai/common"

// Hippolyta's tagged female worker may move a second time in the same
// turn, exactly like Artemis, as long as it doesn't return to its
// starting square; her other worker moves normally.
func hippolytaGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	female := femaleWorkerSquare(p.board, player)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()

		if from == female {
			firstSteps := p.climbableFrom(from)
			for fsBB := firstSteps & common.FullBoard; fsBB != 0; {
				var mid common.Square
				mid, fsBB = fsBB.PopFirst()
				if artemisEmitFromDestination(&p, &result, from, mid, common.NoSquare, flags) {
					return result
				}
				secondSteps := artemisClimbableFromVacating(&p, mid, from) &^ common.SquareMask(from)
				for ssBB := secondSteps & common.FullBoard; ssBB != 0; {
					var final common.Square
					final, ssBB = ssBB.PopFirst()
					if artemisEmitFromDestination(&p, &result, from, final, mid, flags) {
						return result
					}
				}
			}
			continue
		}

		moves := p.climbableFrom(from)
		fromHeight := p.board.GetHeight(from)
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

func hippolytaMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	female := femaleWorkerSquare(board, player)
	artemisMakeMove(board, player, m)
	if female == m.From() {
		setFemaleWorkerSquare(board, player, m.To())
	} else if female.Valid() {
		setFemaleWorkerSquare(board, player, female)
	}
}

func init() {
	register(GodPower{
		Name:         Hippolyta,
		Generate:     hippolytaGenerate,
		MakeMove:     hippolytaMakeMove,
		Actions:      artemisActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
