package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestApolloSwapMovesBothWorkers is scenario S3: an apollo worker stepping
// onto a square held by an opponent worker swaps places with it instead
// of being blocked.
func TestApolloSwapMovesBothWorkers(t *testing.T) {
	fen := flatHeights() + "/1/apollo:C3/mortal:C4,E1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	to, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var swap common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.To() == to {
			swap = sm.Move
			found = true
			break
		}
	}
	require.True(t, found, "expected a move onto the opponent-occupied square")

	from := swap.From()
	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, swap)

	assert.True(t, clone.Board.Workers[common.PlayerOne].Has(to))
	assert.True(t, clone.Board.Workers[common.PlayerTwo].Has(from))
	assert.False(t, clone.Board.Workers[common.PlayerTwo].Has(to))
}
