package gods

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/common"
)

// TestHephaestusMayBuildTwiceOnSameSpace checks that every ordinary move
// has a sibling move with direction value 1 set, and that applying it builds
// the same square twice.
func TestHephaestusMayBuildTwiceOnSameSpace(t *testing.T) {
	fen := flatHeights() + "/1/hephaestus:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	var single, doubled common.Move
	var foundSingle, foundDoubled bool
	for _, sm := range moves {
		if sm.Move.Direction() == 1 && !foundDoubled {
			doubled = sm.Move
			foundDoubled = true
		} else if !foundSingle {
			single = sm.Move
			foundSingle = true
		}
	}
	require.True(t, foundSingle)
	require.True(t, foundDoubled)
	assert.Equal(t, single.To(), doubled.To())
	assert.Equal(t, single.Build(), doubled.Build())

	clone := state.Clone()
	clone.MakeMove(common.PlayerOne, doubled)
	assert.Equal(t, uint8(2), clone.Board.GetHeight(doubled.Build()))
}

// TestHephaestusCannotDoubleBuildADome checks that a build which would
// complete a dome on the second application is never offered.
func TestHephaestusCannotDoubleBuildADome(t *testing.T) {
	heights := "0000000200000000000000000"
	fen := heights + "/1/hephaestus:C3/mortal:E1,D1"
	state, err := ParseFEN(fen)
	require.NoError(t, err)

	toDome, err := common.ParseSquare("C4")
	require.NoError(t, err)

	moves := state.GenerateMoves(common.PlayerOne, common.EmptyBoard, 0, false)
	for _, sm := range moves {
		if sm.Move.Build() == toDome && sm.Move.Direction() == 1 {
			t.Fatalf("should not double-build a square that would dome: %v", sm.Move)
		}
	}
}
