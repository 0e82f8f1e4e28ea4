package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestPrometheusPreBuildForbidsClimbing checks that once prometheus spends
// a pre-move build, the move that follows may not climb to a higher
// level, even though ordinary (no pre-build) moves from the same square
// could.
func TestPrometheusPreBuildForbidsClimbing(t *testing.T) {
	heights := "0000000100000000000000000"
	fen := heights + "/1/prometheus:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	higher, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawOrdinaryClimb bool
	for _, sm := range moves {
		if sm.Move.ExtraSquare() == common.NoSquare && sm.Move.To() == higher {
			sawOrdinaryClimb = true
		}
		if sm.Move.ExtraSquare() != common.NoSquare {
			assert.NotEqual(t, higher, sm.Move.To(), "a pre-build move must not climb")
		}
	}
	assert.True(t, sawOrdinaryClimb, "expected the plain mortal-style climb to still exist")
}

// TestPrometheusPreBuildMustBeAdjacentToStart checks that the pre-move
// build square, when used, is always a neighbor of the worker's starting
// square.
func TestPrometheusPreBuildMustBeAdjacentToStart(t *testing.T) {
	fen := flatHeights() + "/1/prometheus:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawPreBuild bool
	for _, sm := range moves {
		if pre := sm.Move.ExtraSquare(); pre != common.NoSquare {
			sawPreBuild = true
			assert.True(t, common.NeighborMap[from].Has(pre))
		}
	}
	assert.True(t, sawPreBuild, "expected at least one pre-build move")
}
