package gods

import "github.com/JPricey/santorini-ai/common"

// Prometheus may optionally build before moving. If it does, that first
// build must be adjacent to the worker's starting square, and the move
// that follows may not climb to a higher level. The pre-move build
// square, when used, is packed into Move.ExtraSquare(); Move.Build()
// always holds the (possibly only) post-move build.
func prometheusGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	// Without a pre-build, Prometheus moves exactly like Mortal.
	plain := genMortalStyle(state, player, keySquares, flags, false)
	result = append(result, plain...)
	if flags.Has(common.FlagStopOnMate) {
		for _, sm := range plain {
			if sm.Move.IsWinning() {
				return result
			}
		}
	}
	if flags.Has(common.FlagMateOnly) {
		return result
	}

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		preBuilds := common.NeighborMap[from] &^ p.allWorkers &^ p.domes & p.buildMask
		for pbBB := preBuilds & common.FullBoard; pbBB != 0; {
			var preBuild common.Square
			preBuild, pbBB = pbBB.PopFirst()

			preHeight := p.board.GetHeight(preBuild)
			domesPreBuild := preHeight == 3

			// A non-climbing move: same height or lower only.
			var nonClimb common.Bitboard
			for h := 0; h <= int(fromHeight); h++ {
				nonClimb |= p.board.ExactlyLevel(h)
			}
			// The pre-built square is one level higher after the build.
			if preHeight+1 > fromHeight {
				nonClimb &^= common.SquareMask(preBuild)
			}
			occupiedAfterPreBuild := p.allWorkers &^ common.SquareMask(from)
			domesAfterPreBuild := p.domes
			if domesPreBuild {
				domesAfterPreBuild |= common.SquareMask(preBuild)
			}
			moves := common.NeighborMap[from] &^ occupiedAfterPreBuild &^ domesAfterPreBuild & nonClimb

			for toBB := moves & common.FullBoard; toBB != 0; {
				var to common.Square
				to, toBB = toBB.PopFirst()

				occupied := occupiedAfterPreBuild | common.SquareMask(to)
				unblocked := common.FullBoard &^ occupied &^ domesAfterPreBuild
				builds := common.NeighborMap[to] & unblocked & p.buildMask
				alreadyMatched := common.SquareMask(to)&p.keySquares != 0
				builds = narrowToKeySquares(flags, builds, alreadyMatched, p.keySquares)
				reach := reachBoard(&p, unblocked)

				for buildBB := builds & common.FullBoard; buildBB != 0; {
					var build common.Square
					build, buildBB = buildBB.PopFirst()
					m := common.NewMove(from, to, build).WithExtraSquare(preBuild)
					finalLevel3 := (p.level2 & common.SquareMask(build)) | (p.level3 &^ common.SquareMask(build))
					isCheck := (reach & finalLevel3).NotEmpty()
					result = append(result, common.ScoredMove{Move: m.WithCheck(isCheck), Score: scoreMove(flags, false, isCheck, false)})
				}
			}
		}
	}
	return result
}

func prometheusMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	if pre := m.ExtraSquare(); pre != common.NoSquare {
		board.BuildUp(pre, common.Keys)
	}
	mortalMakeMove(board, player, m)
}

func prometheusActions(m common.Move, board *common.BoardState) []common.Action {
	var actions []common.Action
	if pre := m.ExtraSquare(); pre != common.NoSquare {
		actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: pre})
	}
	actions = append(actions, common.Action{Kind: common.ActionSelectWorker, Sq: m.From()})
	actions = append(actions, common.Action{Kind: common.ActionMoveWorker, Sq: m.To()})
	if m.IsWinning() {
		return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
	}
	actions = append(actions, common.Action{Kind: common.ActionBuild, Sq: m.Build()})
	return append(actions, common.Action{Kind: common.ActionEndTurn, Sq: common.NoSquare})
}

func init() {
	register(GodPower{
		Name:         Prometheus,
		Generate:     prometheusGenerate,
		MakeMove:     prometheusMakeMove,
		Actions:      prometheusActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
