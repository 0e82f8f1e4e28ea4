package gods

import "github.com/JPricey/santorini-ai/common"

// EnumerateBruteForce is the consistency-checker counterpart to a god's
// own Generate: instead of reasoning about legality, it tries every
// (from, to, build) triple with to adjacent to from and build adjacent to
// to on a square the move leaves free of workers, and keeps the ones
// that, applied to a clone of the board, produce a legal resulting
// position. It does not try the extra-square or direction fields, so it
// covers the Mortal-shaped part of a god's moves only.
// It is deliberately independent of prelude.go/mortal.go so it can
// catch a bug in either without sharing its logic, grounded on the
// reference implementation's consistency_checker.rs.
func EnumerateBruteForce(state *GameState, player common.Player) []common.Move {
	board := &state.Board
	if _, won := board.GetWinner(); won {
		return nil
	}
	ownWorkers := board.Workers[player].Squares()

	var out []common.Move
	for _, from := range ownWorkers {
		for to := common.Square(0); int(to) < common.NumSquares; to++ {
			if !candidateStep(board, player, from, to) {
				continue
			}
			toHeight := board.GetHeight(to)
			if toHeight == 3 {
				if legalUnderGod(state, player, common.NewWinningMove(from, to)) {
					out = append(out, common.NewWinningMove(from, to))
				}
				continue
			}
			occupiedAfter := (board.Workers[0]|board.Workers[1])&^common.SquareMask(from) | common.SquareMask(to)
			for build := common.Square(0); int(build) < common.NumSquares; build++ {
				if !common.NeighborMap[to].Has(build) || occupiedAfter.Has(build) {
					continue
				}
				m := common.NewMove(from, to, build)
				if legalUnderGod(state, player, m) {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

// candidateStep filters obviously-impossible from/to pairs before the
// expensive per-candidate legality replay: to must be a neighbor of
// from and not occupied by another of the mover's own workers (an
// occupied-by-opponent square is left in, since Apollo and Minotaur
// legally target those).
func candidateStep(board *common.BoardState, player common.Player, from, to common.Square) bool {
	if from == to || !common.NeighborMap[from].Has(to) {
		return false
	}
	otherOwn := board.Workers[player] &^ common.SquareMask(from)
	return !otherOwn.Has(to)
}

// legalUnderGod replays m against a cloned state via the player's own
// MakeMove and checks the result satisfies the board invariants
// (workers/domes disjoint, both workers on distinct squares) — the
// closest a generator-independent check can get to "is this legal"
// without re-deriving the generator's own move-shape logic. Combined
// with membership in the generator's own output, this is what invariant
// 3 in spec section 8 compares against.
func legalUnderGod(state *GameState, player common.Player, m common.Move) bool {
	clone := state.Clone()
	board := &clone.Board
	// A move without a worker step (Morpheus's bank move, whose from
	// field is out of range) has no squares to check before the replay.
	if m.From().Valid() && m.To().Valid() {
		fromHeight := board.GetHeight(m.From())
		toHeight := board.GetHeight(m.To())
		if fromHeight > 4 || toHeight > fromHeight+1 {
			return false
		}
		if board.DomeMask().Has(m.To()) {
			return false
		}
		if !m.IsWinning() {
			if board.DomeMask().Has(m.Build()) {
				return false
			}
		}
	}

	state.GodFor(player).MakeMove(board, player, m)

	if occ := board.Workers[0] & board.Workers[1]; occ.NotEmpty() {
		return false
	}
	if (board.Workers[player] & board.DomeMask()).NotEmpty() {
		return false
	}
	return true
}
