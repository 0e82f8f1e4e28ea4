package engine

import "github.com/JPricey/santorini-ai/common"

// historyTable is a two-dimensional cutoff counter keyed by player and
// the god-dependent compact move signature from GodPower.HistoryIndex,
// per spec section 4.H.
type historyTable struct {
	counters [2][]int32
}

const historyBuckets = 1 << 20

func newHistoryTable() *historyTable {
	return &historyTable{counters: [2][]int32{make([]int32, historyBuckets), make([]int32, historyBuckets)}}
}

func (h *historyTable) bucket(idx int) int { return idx & (historyBuckets - 1) }

func (h *historyTable) Score(player common.Player, idx int) int32 {
	return h.counters[player][h.bucket(idx)]
}

func (h *historyTable) Bump(player common.Player, idx int, depth int) {
	h.counters[player][h.bucket(idx)] += int32(depth * depth)
}

// killers holds two killer moves per ply, shifted (not replaced) so the
// most recent cutoff move is always killers[ply][0].
type killerTable struct {
	moves [][2]common.Move
}

func newKillerTable(maxPly int) *killerTable {
	return &killerTable{moves: make([][2]common.Move, maxPly+1)}
}

func (k *killerTable) Get(ply int) (common.Move, common.Move) {
	pair := k.moves[ply]
	return pair[0], pair[1]
}

func (k *killerTable) Record(ply int, m common.Move) {
	pair := &k.moves[ply]
	if pair[0] == m {
		return
	}
	pair[1] = pair[0]
	pair[0] = m
}
