package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestArtemisSecondStepPacksIntermediateSquare checks that a move using
// both of artemis's steps records the intermediate square in
// Move.ExtraSquare(), while a single-step move leaves it at NoSquare.
func TestArtemisSecondStepPacksIntermediateSquare(t *testing.T) {
	fen := flatHeights() + "/1/artemis:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var sawSingleStep, sawTwoStep bool
	for _, sm := range moves {
		if sm.Move.ExtraSquare() == common.NoSquare {
			sawSingleStep = true
		} else {
			sawTwoStep = true
			assert.NotEqual(t, sm.Move.From(), sm.Move.ExtraSquare())
			assert.NotEqual(t, sm.Move.To(), sm.Move.From())
		}
	}
	assert.True(t, sawSingleStep, "expected at least one single-step move")
	assert.True(t, sawTwoStep, "expected at least one two-step move")
}

// TestArtemisSecondStepCannotReturnToStart checks the rule that the
// second step may not land back on the worker's starting square.
func TestArtemisSecondStepCannotReturnToStart(t *testing.T) {
	fen := flatHeights() + "/1/artemis:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		assert.NotEqual(t, from, sm.Move.To(), "a two-step move must not return to the starting square")
	}
}
