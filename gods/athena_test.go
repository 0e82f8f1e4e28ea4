package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// heightsWithLevelThreeNeighbor places a mortal worker at C3 (height 2)
// next to C4 at height 3, the one-step winning climb scenario 4 and
// invariant 3 exercise.
const heightsWithLevelThreeNeighbor = "0000000300002000000000000"

// TestAthenaClimbedBitBlocksOpponentClimb is scenario S4: once athena's
// climbed flag is set in her own god-data, the opponent cannot climb at
// all on their next turn, including onto a winning level-3 square.
func TestAthenaClimbedBitBlocksOpponentClimb(t *testing.T) {
	fen := heightsWithLevelThreeNeighbor + "/1/mortal:C3/athena[^]:E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)
	require.NotZero(t, state.Board.GodData[common.PlayerTwo]&athenaClimbedBit)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		assert.False(t, sm.Move.IsWinning(), "climbing should be blocked while the opponent's climbed flag is set")
	}
}

// TestAthenaClimbClearsNextTurn checks that, absent the climbed flag, the
// same climb is legal again.
func TestAthenaClimbClearsNextTurn(t *testing.T) {
	fen := heightsWithLevelThreeNeighbor + "/1/mortal:C3/athena:E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)
	require.Zero(t, state.Board.GodData[common.PlayerTwo]&athenaClimbedBit)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawWinningClimb bool
	for _, sm := range moves {
		if sm.Move.IsWinning() {
			sawWinningClimb = true
		}
	}
	assert.True(t, sawWinningClimb, "expected the level-3 climb to be legal once the flag is cleared")
}

// TestAthenaMakeMoveTracksWhetherSheClimbed checks that her own god-data
// bit is set after a move that climbs.
func TestAthenaMakeMoveTracksWhetherSheClimbed(t *testing.T) {
	fen := heightsWithLevelThreeNeighbor + "/1/athena:C3/mortal:E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var climb common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.IsWinning() {
			climb = sm.Move
			found = true
			break
		}
	}
	require.True(t, found)

	state.MakeMove(common.PlayerOne, climb)
	assert.NotZero(t, state.Board.GodData[common.PlayerOne]&athenaClimbedBit)
}
