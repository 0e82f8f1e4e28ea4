package gods

import "github.com/JPricey/santorini-ai/common"

// prelude gathers the per-call state every per-god generator needs, so
// each generator's first step is always "look it up" rather than
// re-deriving it; this mirrors the reference implementation's
// GeneratorPreludeState.
type prelude struct {
	board   *common.BoardState
	player  common.Player
	ownGod  *GodPower
	otherGod *GodPower

	keySquares common.Bitboard

	level0, level1, level2, level3 common.Bitboard
	domes                          common.Bitboard
	ownWorkers, oppoWorkers        common.Bitboard
	allWorkers                     common.Bitboard

	// buildMask is the set of squares that may legally be built on,
	// i.e. everything except what the opponent's god forbids (Limus).
	// Domed and occupied squares are not removed here; each generator
	// excludes them through its own unblocked mask.
	buildMask common.Bitboard
	// winMask restricts which level-3 squares count as winning
	// destinations; buildPrelude always sets it to FullBoard.
	winMask common.Bitboard

	actingWorkers common.Bitboard

	// windDir is the compass direction (see common.Directions) that
	// Aeolus's wind currently blocks for every worker's movement, or -1
	// if no Aeolus is in play or no direction has been set yet.
	windDir int
}

func buildPrelude(state *GameState, player common.Player, keySquares common.Bitboard, flags common.MoveGenFlags) prelude {
	b := &state.Board
	own := state.GodFor(player)
	other := state.OtherGod(player)

	p := prelude{
		board:      b,
		player:     player,
		ownGod:     own,
		otherGod:   other,
		keySquares: keySquares,
		level0:     b.ExactlyLevel(0),
		level1:     b.ExactlyLevel(1),
		level2:     b.ExactlyLevel(2),
		level3:     b.ExactlyLevel(3),
		domes:      b.DomeMask(),
		ownWorkers: b.Workers[player],
		oppoWorkers: b.Workers[player.Opponent()],
		winMask:    common.FullBoard,
	}
	p.allWorkers = p.ownWorkers | p.oppoWorkers
	p.buildMask = common.FullBoard &^ other.BuildMask(p.oppoWorkers)
	p.actingWorkers = own.ActingWorkerFilter(state, player, p.ownWorkers)
	p.actingWorkers = other.RestrictOpponent(b.GodData[player.Opponent()], b, p.actingWorkers)

	if flags.Has(common.FlagMateOnly) {
		p.actingWorkers &= p.level2
	}

	p.windDir = own.WindDirection(b.GodData[player])
	if p.windDir < 0 {
		p.windDir = other.WindDirection(b.GodData[player.Opponent()])
	}
	return p
}

// climbableFrom returns the squares a worker standing at from may move
// to this turn: an open, unoccupied, undomed neighbor whose height does
// not exceed the opponent-adjusted climb limit.
func (p *prelude) climbableFrom(from common.Square) common.Bitboard {
	startHeight := p.board.GetHeight(from)
	climbLimit := p.otherGod.ClimbHeight(p.board.GodData[p.player.Opponent()], startHeight)
	var allowedHeights common.Bitboard
	for h := 0; h <= 4; h++ {
		if uint8(h) <= climbLimit {
			allowedHeights |= p.board.ExactlyLevel(h)
		}
	}
	blocked := p.allWorkers | p.domes
	neighbors := common.NeighborsExcludingDirection(from, p.windDir)
	return neighbors &^ blocked & allowedHeights
}

// reachBoard computes, after a hypothetical move, the set of squares an
// opponent worker could stand on next turn from which a winning climb
// is available -- used for check detection (spec section 4.E step 4).
// unblocked is the set of squares free of other workers/domes after the
// move under consideration.
func reachBoard(p *prelude, unblocked common.Bitboard) common.Bitboard {
	var reach common.Bitboard
	for bb := p.oppoWorkers & common.FullBoard; bb != 0; {
		var sq common.Square
		sq, bb = bb.PopFirst()
		reach |= common.NeighborMap[sq] & unblocked
	}
	return reach
}

// scoreMove derives a move-ordering score when requested.
func scoreMove(flags common.MoveGenFlags, isWinning, isCheck, isImproving bool) int32 {
	if !flags.Has(common.FlagIncludeScore) {
		return 0
	}
	var score int32
	if isWinning {
		score += common.ScoreWinning
	}
	if isCheck {
		score += common.ScoreChecking
	}
	if isImproving {
		score += common.ScoreImproving
	}
	return score
}

// appendWinningMoves pushes a scored, winning move for every destination
// set in wins, returning true if generation should stop immediately
// (FlagStopOnMate and at least one winning move was found).
func appendWinningMoves(result *[]common.ScoredMove, from common.Square, wins common.Bitboard, flags common.MoveGenFlags) bool {
	for bb := wins & common.FullBoard; bb != 0; {
		var to common.Square
		to, bb = bb.PopFirst()
		m := common.NewWinningMove(from, to)
		*result = append(*result, common.ScoredMove{Move: m, Score: scoreMove(flags, true, false, false)})
		if flags.Has(common.FlagStopOnMate) {
			return true
		}
	}
	return false
}

func prealloc(flags common.MoveGenFlags) []common.ScoredMove {
	if flags.Has(common.FlagMateOnly) {
		return make([]common.ScoredMove, 0, 1)
	}
	return make([]common.ScoredMove, 0, 64)
}

// narrowToKeySquares restricts builds to squares that interact with
// key Squares, per FlagInteractWithKeySquares, unless the move already
// "matched" by moving onto a key square.
func narrowToKeySquares(flags common.MoveGenFlags, builds common.Bitboard, alreadyMatched bool, keySquares common.Bitboard) common.Bitboard {
	if !flags.Has(common.FlagInteractWithKeySquares) || alreadyMatched {
		return builds
	}
	return builds & keySquares
}
