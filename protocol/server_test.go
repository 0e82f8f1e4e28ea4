package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JPricey/santorini-ai/engine"
	"github.com/JPricey/santorini-ai/gods"
)

func newTestServer(t *testing.T, out *bytes.Buffer) *Server {
	t.Helper()
	searcher := engine.NewSearcher(1, nil)
	controller := engine.NewController(searcher, 8)
	t.Cleanup(func() { controller.End() })
	return NewServer(controller, out, zerolog.Nop())
}

func decodeOutputs(t *testing.T, buf *bytes.Buffer) []Output {
	t.Helper()
	var outputs []Output
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var o Output
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &o))
		outputs = append(outputs, o)
	}
	return outputs
}

// TestNextMovesIsDeterministic is scenario S5: repeated next_moves calls
// on the same position return the same set of next_state values, and the
// count matches the brute-force enumerator's move count.
func TestNextMovesIsDeterministic(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal:C3,C4/mortal:E1,D1"

	var buf1, buf2 bytes.Buffer
	s1 := newTestServer(t, &buf1)
	require.NoError(t, s1.dispatch("next_moves "+fen))

	s2 := newTestServer(t, &buf2)
	require.NoError(t, s2.dispatch("next_moves "+fen))

	outs1 := decodeOutputs(t, &buf1)
	outs2 := decodeOutputs(t, &buf2)
	require.Len(t, outs1, 1)
	require.Len(t, outs2, 1)

	set1 := map[string]bool{}
	for _, e := range outs1[0].NextStates {
		set1[e.NextState] = true
	}
	set2 := map[string]bool{}
	for _, e := range outs2[0].NextStates {
		set2[e.NextState] = true
	}
	assert.Equal(t, set1, set2)

	state, err := gods.ParseFEN(fen)
	require.NoError(t, err)
	bruteForce := gods.EnumerateBruteForce(state, state.Board.Current)
	assert.Equal(t, len(bruteForce), len(outs1[0].NextStates))
}

func TestSetPositionOnTerminalEmitsNoMoves(t *testing.T) {
	fen := "0000000000000000000000000/1/mortal#:A5,B5/mortal:D1,E1"

	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	require.NoError(t, s.dispatch("set_position "+fen))

	outs := decodeOutputs(t, &buf)
	require.Len(t, outs, 1)
	require.NotNil(t, outs[0].Meta)
	assert.Equal(t, "no_moves", outs[0].Meta.ActionStr)
	assert.Equal(t, fen, outs[0].StartState)
}

func TestUnknownCommandReturnsError(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, &buf)
	err := s.dispatch("frobnicate")
	assert.Error(t, err)
}
