package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestHermesWalksAcrossOpenGroundAtSameHeight checks that hermes can reach
// a square several steps away on an open, flat board in a single turn, as
// long as every intervening square stays at the same height.
func TestHermesWalksAcrossOpenGroundAtSameHeight(t *testing.T) {
	fen := flatHeights() + "/1/hermes:A1/mortal:E5,D5"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	far, err := common.ParseSquare("E1")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawFar bool
	for _, sm := range moves {
		if sm.Move.To() == far {
			sawFar = true
		}
	}
	assert.True(t, sawFar, "expected hermes to reach a far square on open flat ground")
}

// TestHermesLongWalkNeverClimbsOrDescends checks that any destination more
// than one step away from hermes's starting square (i.e. reached via the
// flood-filled walk rather than the ordinary single-step move) stays at
// exactly the starting height.
func TestHermesLongWalkNeverClimbsOrDescends(t *testing.T) {
	fen := flatHeights() + "/1/hermes:A1/mortal:E5,D5"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("A1")
	require.NoError(t, err)
	fromHeight := state.Board.GetHeight(from)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		if common.NeighborMap[from].Has(sm.Move.To()) {
			continue
		}
		toHeight := state.Board.GetHeight(sm.Move.To())
		assert.Equal(t, fromHeight, toHeight, "hermes's long walk must stay level")
	}
}
