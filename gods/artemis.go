package gods

import "github.com/JPricey/santorini-ai/common"

// Artemis may move her chosen worker a second time, as long as the second
// step doesn't return it to its starting square. A move that uses both
// steps packs the intermediate square into Move.ExtraSquare(); a
// single-step move leaves it at NoSquare.
func artemisGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()

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
	}
	return result
}

// artemisClimbableFromVacating computes climbable destinations from mid
// treating `from` as vacated (the moving worker already left it).
func artemisClimbableFromVacating(p *prelude, from common.Square, vacated common.Square) common.Bitboard {
	height := p.board.GetHeight(from)
	climbLimit := p.otherGod.ClimbHeight(p.board.GodData[p.player.Opponent()], height)
	var allowedHeights common.Bitboard
	for h := 0; h <= 4; h++ {
		if uint8(h) <= climbLimit {
			allowedHeights |= p.board.ExactlyLevel(h)
		}
	}
	blocked := (p.allWorkers &^ common.SquareMask(vacated)) | p.domes
	return common.NeighborMap[from] &^ blocked & allowedHeights
}

func artemisEmitFromDestination(p *prelude, result *[]common.ScoredMove, from, dest, mid common.Square, flags common.MoveGenFlags) bool {
	fromHeight := p.board.GetHeight(from)
	destHeight := p.board.GetHeight(dest)
	isImproving := destHeight > fromHeight

	if destHeight == 3 && p.winMask.Has(dest) {
		m := common.NewWinningMove(from, dest).WithExtraSquare(mid)
		*result = append(*result, common.ScoredMove{Move: m, Score: scoreMove(flags, true, false, false)})
		return flags.Has(common.FlagStopOnMate)
	}

	if flags.Has(common.FlagMateOnly) {
		return false
	}

	occupied := (p.allWorkers &^ common.SquareMask(from)) | common.SquareMask(dest)
	unblocked := common.FullBoard &^ occupied &^ p.domes
	builds := common.NeighborMap[dest] & unblocked & p.buildMask
	alreadyMatched := common.SquareMask(dest)&p.keySquares != 0
	builds = narrowToKeySquares(flags, builds, alreadyMatched, p.keySquares)
	reach := reachBoard(p, unblocked)

	for buildBB := builds & common.FullBoard; buildBB != 0; {
		var build common.Square
		build, buildBB = buildBB.PopFirst()
		m := common.NewMove(from, dest, build).WithExtraSquare(mid)
		finalLevel3 := (p.level2 & common.SquareMask(build)) | (p.level3 &^ common.SquareMask(build))
		isCheck := (reach & finalLevel3).NotEmpty()
		*result = append(*result, common.ScoredMove{Move: m.WithCheck(isCheck), Score: scoreMove(flags, false, isCheck, isImproving)})
	}
	return false
}

func artemisMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	board.WorkerXor(player, common.SquareMask(m.From())|common.SquareMask(m.To()), common.Keys)
	if m.IsWinning() {
		board.SetWinner(player, common.Keys)
		return
	}
	board.BuildUp(m.Build(), common.Keys)
}

func artemisActions(m common.Move, board *common.BoardState) []common.Action {
	actions := []common.Action{{Kind: common.ActionSelectWorker, Sq: m.From()}}
	if mid := m.ExtraSquare(); mid != common.NoSquare {
		actions = append(actions, common.Action{Kind: common.ActionMoveWorker, Sq: mid})
	}
	actions = append(actions, common.Action{Kind: common.ActionMoveWorker, Sq: m.To()})
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Artemis,
		Generate:     artemisGenerate,
		MakeMove:     artemisMakeMove,
		Actions:      artemisActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
