package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestHypnusForbidsMovingTheUniqueTallestWorker checks that the opponent's
// strictly-tallest worker may not act, as long as a shorter worker remains
// free to move.
func TestHypnusForbidsMovingTheUniqueTallestWorker(t *testing.T) {
	heights := "0000000100000000000000000"
	fen := heights + "/2/hypnus:E1/mortal:C4,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	tallest, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerTwo, common.EmptyBoard, 0, false)
	require.NotEmpty(t, moves)
	for _, sm := range moves {
		assert.NotEqual(t, tallest, sm.Move.From(), "the unique tallest worker must not be offered a move")
	}
}

// TestHypnusAllowsMovingTiedTallestWorkers checks that a tie at the
// tallest height frees both workers to move again.
func TestHypnusAllowsMovingTiedTallestWorkers(t *testing.T) {
	heights := "0000000100010000000000000"
	fen := heights + "/2/hypnus:E1/mortal:C4,B3"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	c4, err := common.ParseSquare("C4")
	require.NoError(t, err)
	b3, err := common.ParseSquare("B3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerTwo, common.EmptyBoard, 0, false)
	var sawC4, sawB3 bool
	for _, sm := range moves {
		if sm.Move.From() == c4 {
			sawC4 = true
		}
		if sm.Move.From() == b3 {
			sawB3 = true
		}
	}
	assert.True(t, sawC4, "tied tallest worker C4 should still be able to move")
	assert.True(t, sawB3, "tied tallest worker B3 should still be able to move")
}
