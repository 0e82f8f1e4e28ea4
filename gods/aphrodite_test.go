package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestAphroditeForcesNewlyAdjacentWorkerNextTurn checks that moving an
// aphrodite worker next to an opponent worker that wasn't adjacent before
// forces the opponent to move exactly that worker on their next turn.
func TestAphroditeForcesNewlyAdjacentWorkerNextTurn(t *testing.T) {
	fen := flatHeights() + "/1/aphrodite:D2,E5/mortal:C4,A5"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("D2")
	require.NoError(t, err)
	to, err := common.ParseSquare("D3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var chosen common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.From() == from && sm.Move.To() == to {
			chosen = sm.Move
			found = true
			break
		}
	}
	require.True(t, found, "expected a move bringing the worker adjacent to the opponent's C4 worker")

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, chosen)

	forcedFrom, err := common.ParseSquare("C4")
	require.NoError(t, err)

	nextMoves := clone.GenerateMoves(common.PlayerTwo, common.EmptyBoard, 0, false)
	require.NotEmpty(t, nextMoves)
	for _, sm := range nextMoves {
		assert.Equal(t, forcedFrom, sm.Move.From(), "opponent should be forced to move only the newly-adjacent worker")
	}
}

// TestAphroditeDoesNotForceAlreadyAdjacentWorkers checks that an opponent
// worker already adjacent before the move is never forced, since it
// wasn't "newly" adjacent.
func TestAphroditeDoesNotForceAlreadyAdjacentWorkers(t *testing.T) {
	fen := flatHeights() + "/1/aphrodite:B3,E5/mortal:C4,A5"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("B3")
	require.NoError(t, err)
	to, err := common.ParseSquare("B4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var chosen common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.From() == from && sm.Move.To() == to {
			chosen = sm.Move
			found = true
			break
		}
	}
	require.True(t, found)

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, chosen)

	nextMoves := clone.GenerateMoves(common.PlayerTwo, common.EmptyBoard, 0, false)
	a5, err := common.ParseSquare("A5")
	require.NoError(t, err)
	var sawOther bool
	for _, sm := range nextMoves {
		if sm.Move.From() == a5 {
			sawOther = true
		}
	}
	assert.True(t, sawOther, "the untouched worker should remain free to move")
}
