package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestPersephoneMustClimbWhenAClimbExists checks that persephone offers
// only climbing moves whenever at least one is available, even though a
// same-height or descending move would otherwise be legal too.
func TestPersephoneMustClimbWhenAClimbExists(t *testing.T) {
	heights := "0000000100000000000000000"
	fen := heights + "/1/persephone:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C3")
	require.NoError(t, err)
	fromHeight := state.Board.GetHeight(from)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	require.NotEmpty(t, moves)
	for _, sm := range moves {
		toHeight := state.Board.GetHeight(sm.Move.To())
		assert.Greater(t, toHeight, fromHeight, "persephone must climb while any climb is available")
	}
}

// TestPersephoneFallsBackToOrdinaryMovementWithoutAClimb checks that on a
// flat board, with no climb available anywhere, persephone moves exactly
// like a mortal.
func TestPersephoneFallsBackToOrdinaryMovementWithoutAClimb(t *testing.T) {
	fen := flatHeights() + "/1/persephone:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	assert.NotEmpty(t, moves)
}

// TestPersephoneTreatsPanNeighborsAsKeySquares checks that, against a pan
// opponent, a build restricted to key squares only lands adjacent to one
// of pan's workers (unless the move already "matched" by moving onto a
// key square itself).
func TestPersephoneTreatsPanNeighborsAsKeySquares(t *testing.T) {
	fen := flatHeights() + "/1/persephone:B2,A5/pan:D1,E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	d1, err := common.ParseSquare("D1")
	require.NoError(t, err)
	e1, err := common.ParseSquare("E1")
	require.NoError(t, err)
	b1, err := common.ParseSquare("B1")
	require.NoError(t, err)
	panNeighbors := common.NeighborMap[d1] | common.NeighborMap[e1]
	require.False(t, panNeighbors.Has(b1), "B1 must not itself be a key square for this case to be meaningful")

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, common.FlagInteractWithKeySquares, false)
	require.NotEmpty(t, moves)

	var sawRestrictedBuild bool
	for _, sm := range moves {
		if sm.Move.To() != b1 {
			continue
		}
		sawRestrictedBuild = true
		assert.True(t, panNeighbors.Has(sm.Move.Build()), "build should interact with a key square adjacent to pan")
	}
	assert.True(t, sawRestrictedBuild, "expected the B2->B1 move to be generated")
}
