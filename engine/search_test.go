package engine

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
	"github.com/JPricey/santorini-ai/gods"
)

func neverStop() Terminator {
	var flag atomic.Bool
	return NewAtomicTerminator(&flag)
}

// TestSearchMateInOneReturnsWinningMove is scenario S1: a mortal worker
// one step from a level-3 tower must be reported as a winning move with a
// score near the mate bound, ending on trigger end_of_line.
func TestSearchMateInOneReturnsWinningMove(t *testing.T) {
	fen := "0000000300002000000000000/1/mortal:C3/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	s := NewSearcher(1, nil)
	var lastTrigger Trigger
	var lastScore common.Heuristic
	move := s.Search(state, 4, neverStop(), func(pv PVInfo) {
		lastTrigger = pv.Trigger
		lastScore = pv.Score
	})

	require.NotEqual(t, common.NullMove, move)
	assert.True(t, move.IsWinning())
	assert.Equal(t, TriggerEndOfLine, lastTrigger)
	assert.GreaterOrEqual(t, int(lastScore), 9900)
}

// TestSearchDepthOneMatchesNegatedChildEval is invariant 7: at depth 1
// with no TT reuse across calls, the root score is the negation of the
// evaluation of the resulting child position.
func TestSearchDepthOneMatchesNegatedChildEval(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal:A5,B5/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	s := NewSearcher(1, nil)
	var rootScore common.Heuristic
	move := s.Search(state, 1, neverStop(), func(pv PVInfo) {
		if pv.Depth == 1 {
			rootScore = pv.Score
		}
	})
	require.NotEqual(t, common.NullMove, move)

	child := state.Clone()
	child.MakeMove(state.Board.Current, move)

	s2 := NewSearcher(1, nil)
	childEval := s2.evaluate(&child, nil)
	assert.Equal(t, rootScore, -childEval)
}

// TestSearchCancellationReturnsPromptly is invariant 9: a terminator that
// already reports stopped must not let Search descend into any
// iteration, so it returns immediately with no move chosen.
func TestSearchCancellationReturnsPromptly(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal:C3,C4/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	var flag atomic.Bool
	flag.Store(true)
	term := NewAtomicTerminator(&flag)

	s := NewSearcher(1, nil)
	var emitted bool
	move := s.Search(state, 32, term, func(pv PVInfo) {
		emitted = true
	})
	assert.Equal(t, common.NullMove, move)
	assert.False(t, emitted)
}

// TestSearchStopsAfterDepthCompletesOnceFlagged sets the terminator from
// inside the depth-1 PV callback: the next iterative-deepening round must
// observe it before starting and return the last completed depth's move
// rather than searching deeper.
func TestSearchStopsAfterDepthCompletesOnceFlagged(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal:C3,C4/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	var flag atomic.Bool
	term := NewAtomicTerminator(&flag)

	s := NewSearcher(1, nil)
	var lastTrigger Trigger
	depthsSeen := 0
	move := s.Search(state, 32, term, func(pv PVInfo) {
		depthsSeen++
		lastTrigger = pv.Trigger
		flag.Store(true)
	})
	require.NotEqual(t, common.NullMove, move)
	assert.Equal(t, 1, depthsSeen)
	assert.Equal(t, TriggerImprovement, lastTrigger)
}

// TestIterativeDeepeningMonotoneOnMate is invariant 8's non-regression
// half: once a mate is found the reported score does not get worse on
// later PV emissions within the same search.
func TestIterativeDeepeningMonotoneOnMate(t *testing.T) {
	fen := "0000000300002000000000000/1/mortal:C3/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	s := NewSearcher(1, nil)
	var scores []common.Heuristic
	s.Search(state, 6, neverStop(), func(pv PVInfo) {
		scores = append(scores, pv.Score)
	})

	require.NotEmpty(t, scores)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i], scores[i-1])
	}
}

func TestValidateTerminalPositionReportsWinner(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal#:A5,B5/mortal:E1,D1"
	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)

	won, winner := ValidateTerminalPosition(state)
	assert.True(t, won)
	assert.Equal(t, common.PlayerOne, winner)
}
