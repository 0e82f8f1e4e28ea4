package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestPanWinsByDescendingTwoLevels is scenario S2: a pan worker at level 2
// adjacent to an open ground-level square wins by stepping straight down,
// with no climb involved at all.
func TestPanWinsByDescendingTwoLevels(t *testing.T) {
	fen := heightsWithLevelThreeNeighbor + "/1/pan:C3/mortal:E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	down, err := common.ParseSquare("B3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var descend common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.To() == down && sm.Move.IsWinning() {
			descend = sm.Move
			found = true
		}
	}
	require.True(t, found, "expected a winning descent onto the ground-level neighbor")

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, descend)
	winner, won := clone.Board.GetWinner()
	require.True(t, won)
	assert.Equal(t, common.PlayerOne, winner)
}

// TestPanStillWinsByClimbing checks pan retains the ordinary climb-to-
// level-3 win alongside the descent win.
func TestPanStillWinsByClimbing(t *testing.T) {
	fen := heightsWithLevelThreeNeighbor + "/1/pan:C3/mortal:E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	up, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var found bool
	for _, sm := range moves {
		if sm.Move.To() == up && sm.Move.IsWinning() {
			found = true
		}
	}
	assert.True(t, found, "expected the ordinary level-3 climb to still be a winning move")
}
