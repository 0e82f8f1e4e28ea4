package gods

import "github.com/JPricey/santorini-ai/common"

// Minotaur may move into an opponent worker's square by force, shoving
// that worker straight back along the line of movement, provided the
// landing square is on the board, unoccupied, and undomed. Minotaur's own
// height is capped by the normal climb rule; the pushed worker's height
// is irrelevant to legality.
func minotaurGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		emptyMoves := p.climbableFrom(from)

		climbLimit := p.otherGod.ClimbHeight(p.board.GodData[player.Opponent()], fromHeight)
		var allowedHeights common.Bitboard
		for h := 0; h <= 4; h++ {
			if uint8(h) <= climbLimit {
				allowedHeights |= p.board.ExactlyLevel(h)
			}
		}
		pushCandidates := common.NeighborMap[from] & p.oppoWorkers & allowedHeights

		winningMoves := emptyMoves & p.level3 & p.winMask
		if appendWinningMoves(&result, from, winningMoves, flags) {
			return result
		}
		emptyMoves &^= winningMoves

		var pushWins common.Bitboard
		pushDest := map[common.Square]common.Square{}
		for pb := pushCandidates & common.FullBoard; pb != 0; {
			var to common.Square
			to, pb = pb.PopFirst()
			landing := common.PushMapping[from][to]
			if landing == common.NoSquare || p.allWorkers.Has(landing) || p.domes.Has(landing) {
				continue
			}
			pushDest[to] = landing
			if p.level3.Has(to) && p.winMask.Has(to) {
				pushWins |= common.SquareMask(to)
			}
		}
		if appendWinningMoves(&result, from, pushWins, flags) {
			return result
		}

		if flags.Has(common.FlagMateOnly) {
			continue
		}

		emitMinotaurMoves(&p, &result, from, fromHeight, emptyMoves, false, nil, flags)
		for to := range pushDest {
			if pushWins.Has(to) {
				continue
			}
			emitMinotaurMoves(&p, &result, from, fromHeight, common.SquareMask(to), true, pushDest, flags)
		}
	}
	return result
}

func emitMinotaurMoves(p *prelude, result *[]common.ScoredMove, from common.Square, fromHeight uint8, moves common.Bitboard, isPush bool, pushDest map[common.Square]common.Square, flags common.MoveGenFlags) {
	for toBB := moves & common.FullBoard; toBB != 0; {
		var to common.Square
		to, toBB = toBB.PopFirst()
		toHeight := p.board.GetHeight(to)
		isImproving := toHeight > fromHeight

		occupied := p.allWorkers &^ common.SquareMask(from)
		if isPush {
			// The pushed worker vacates `to` and lands elsewhere, so `to`
			// is free once the push resolves, but the landing square
			// becomes occupied.
			occupied &^= common.SquareMask(to)
			occupied |= common.SquareMask(pushDest[to])
		} else {
			occupied |= common.SquareMask(to)
		}
		unblocked := common.FullBoard &^ occupied &^ p.domes
		builds := common.NeighborMap[to] & unblocked & p.buildMask
		alreadyMatched := common.SquareMask(to)&p.keySquares != 0
		builds = narrowToKeySquares(flags, builds, alreadyMatched, p.keySquares)
		reach := reachBoard(p, unblocked)

		for buildBB := builds & common.FullBoard; buildBB != 0; {
			var build common.Square
			build, buildBB = buildBB.PopFirst()
			m := common.NewMove(from, to, build)
			finalLevel3 := (p.level2 & common.SquareMask(build)) | (p.level3 &^ common.SquareMask(build))
			isCheck := (reach & finalLevel3).NotEmpty()
			*result = append(*result, common.ScoredMove{Move: m.WithCheck(isCheck), Score: scoreMove(flags, false, isCheck, isImproving)})
		}
	}
}

func minotaurMakeMove(board *common.BoardState, player common.Player, m common.Move) {
	from, to := m.From(), m.To()
	opponent := player.Opponent()
	if board.Workers[opponent].Has(to) {
		landing := common.PushMapping[from][to]
		board.WorkerXor(opponent, common.SquareMask(to)|common.SquareMask(landing), common.Keys)
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
		Name:         Minotaur,
		Generate:     minotaurGenerate,
		MakeMove:     minotaurMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
