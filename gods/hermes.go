package gods

import "github.com/JPricey/santorini-ai/common"

// Hermes may walk a worker any number of steps across open ground at the
// same height in a single turn (never up, never down), in addition to the
// ordinary single-step move. Both are folded into one destination set;
// the move encoding doesn't distinguish how far the worker travelled.
func hermesGenerate(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags, mustClimb bool) []common.ScoredMove {
	p := buildPrelude(state, player, keySquares, flags)
	result := prealloc(flags)

	for bb := p.actingWorkers & common.FullBoard; bb != 0; {
		var from common.Square
		from, bb = bb.PopFirst()
		fromHeight := p.board.GetHeight(from)

		moves := p.climbableFrom(from) | hermesSameLevelReachable(&p, from, fromHeight)

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

// hermesSameLevelReachable flood-fills the open region at height,
// reachable from `from` without ever leaving that height.
func hermesSameLevelReachable(p *prelude, from common.Square, height uint8) common.Bitboard {
	levelMask := p.board.ExactlyLevel(int(height))
	blocked := p.allWorkers | p.domes
	open := levelMask &^ blocked

	visited := common.SquareMask(from)
	frontier := common.NeighborMap[from] & open
	for frontier.NotEmpty() {
		frontier &^= visited
		if frontier.IsEmpty() {
			break
		}
		visited |= frontier
		var next common.Bitboard
		for bb := frontier & common.FullBoard; bb != 0; {
			var sq common.Square
			sq, bb = bb.PopFirst()
			next |= common.NeighborMap[sq] & open
		}
		frontier = next
	}
	return visited &^ common.SquareMask(from)
}

func init() {
	register(GodPower{
		Name:         Hermes,
		Generate:     hermesGenerate,
		MakeMove:     mortalMakeMove,
		Actions:      mortalActions,
		HistoryIndex: mortalHistoryIndex,
	})
}
