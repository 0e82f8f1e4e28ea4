package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestMinotaurPushesOpponentStraightBack checks that moving onto an
// opponent-occupied square shoves that worker one square further along
// the same line, instead of being blocked like it would for a Mortal.
func TestMinotaurPushesOpponentStraightBack(t *testing.T) {
	fen := flatHeights() + "/1/minotaur:C3,E1/mortal:C4,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	to, err := common.ParseSquare("C4")
	require.NoError(t, err)
	landing, err := common.ParseSquare("C5")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var push common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.To() == to {
			push = sm.Move
			found = true
			break
		}
	}
	require.True(t, found, "expected a move onto the opponent-occupied square")

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, push)
	assert.True(t, clone.Board.Workers[common.PlayerOne].Has(to))
	assert.True(t, clone.Board.Workers[common.PlayerTwo].Has(landing))
	assert.False(t, clone.Board.Workers[common.PlayerTwo].Has(to))
}

// TestMinotaurPushBlockedByLandingSquare checks that no move is generated
// onto an opponent-occupied square when the square behind it is occupied
// or domed, since the push has nowhere to land.
func TestMinotaurPushBlockedByLandingSquare(t *testing.T) {
	fen := flatHeights() + "/1/minotaur:C3,E1/mortal:C4,C5"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	to, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		assert.NotEqual(t, to, sm.Move.To(), "push with no landing square should not be generated")
	}
}
