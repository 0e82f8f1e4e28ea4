package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestSeleneMayBuildOnTheVacatedSquare checks that the tagged female
// worker's move offers an extra option building on the square it just
// left, on top of the ordinary post-move build.
func TestSeleneMayBuildOnTheVacatedSquare(t *testing.T) {
	fen := flatHeights() + "/1/selene:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C3")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var withVacated common.Move
	var found bool
	for _, sm := range moves {
		if sm.Move.ExtraSquare() == from {
			withVacated = sm.Move
			found = true
			break
		}
	}
	require.True(t, found, "expected a move building on the vacated square")

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, withVacated)
	assert.Equal(t, uint8(1), clone.Board.GetHeight(from))
	assert.Equal(t, uint8(1), clone.Board.GetHeight(withVacated.Build()))
}

// TestSeleneCannotBuildOnAnAlreadyDomedVacatedSquare checks that the
// vacated-square build option disappears once that square is already at
// level 3, since building it would complete a fourth story.
func TestSeleneCannotBuildOnAnAlreadyDomedVacatedSquare(t *testing.T) {
	heights := "0000000300000000000000000"
	fen := heights + "/1/selene:C4/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		assert.NotEqual(t, from, sm.Move.ExtraSquare(), "a level-3 vacated square must not be offered as a second build")
	}
}

// TestSeleneTracksTaggedWorkerAcrossMoves checks that the tagged worker
// follows whichever worker last moved from its square.
func TestSeleneTracksTaggedWorkerAcrossMoves(t *testing.T) {
	fen := flatHeights() + "/1/selene:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	from, err := common.ParseSquare("C3")
	require.NoError(t, err)
	require.Equal(t, from, femaleWorkerSquare(&state.Board, common.PlayerOne))

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	require.NotEmpty(t, moves)
	chosen := moves[0].Move

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, chosen)
	assert.Equal(t, chosen.To(), femaleWorkerSquare(&clone.Board, common.PlayerOne))
}
