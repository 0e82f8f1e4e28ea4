package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestHippolytaFemaleWorkerMayMoveTwice checks that the tagged female
// worker gets the same two-step treatment as artemis, while the other
// worker is restricted to an ordinary single step.
func TestHippolytaFemaleWorkerMayMoveTwice(t *testing.T) {
	fen := flatHeights() + "/1/hippolyta:C3,A5/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	female, err := common.ParseSquare("A5")
	require.NoError(t, err)
	other, err := common.ParseSquare("C3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawTwoStep, sawOtherWorkerMove bool
	for _, sm := range moves {
		if sm.Move.From() == female && sm.Move.ExtraSquare() != common.NoSquare {
			sawTwoStep = true
		}
		if sm.Move.From() == other {
			sawOtherWorkerMove = true
			assert.Equal(t, common.NoSquare, sm.Move.ExtraSquare(), "the non-tagged worker never gets a second step")
		}
	}
	assert.True(t, sawTwoStep, "expected the female worker to have a two-step option")
	assert.True(t, sawOtherWorkerMove, "expected the other worker to still have ordinary moves")
}

// TestHippolytaTagFollowsTheFemaleWorkerWhenItMoves checks that moving the
// tagged worker re-tags its new square, exactly like selene.
func TestHippolytaTagFollowsTheFemaleWorkerWhenItMoves(t *testing.T) {
	fen := flatHeights() + "/1/hippolyta:C3,A5/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	female, err := common.ParseSquare("A5")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var chosen common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.From() == female {
			chosen = sm.Move
			found = true
			break
		}
	}
	require.True(t, found)

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, chosen)
	assert.Equal(t, chosen.To(), femaleWorkerSquare(&clone.Board, common.PlayerOne))
}
