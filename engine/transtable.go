// Package engine implements the search core (negamax, alpha-beta,
// iterative deepening, transposition table) and the background search
// controller that drives it, grounded on the reference chess engine's
// pkg/engine package.
package engine

import "github.com/JPricey/santorini-ai/common"

type NodeType uint8

const (
	NodeExact NodeType = iota
	NodeLowerBound
	NodeUpperBound
)

// ttEntry is packed loosely (not bit-packed into one word, unlike the
// teacher's chess TT) since Go's struct layout already keeps this
// compact and bit-packing would only help cache density at a
// complexity cost this engine's much smaller tree doesn't need.
type ttEntry struct {
	tag      uint32
	move     common.Move
	score    int16
	depth    int8
	nodeType NodeType
	age      uint8
}

// TransTable is a fixed-size, open-addressed, Zobrist-indexed cache of
// search results, grounded on the reference engine's transtable.go:
// entries are replaced when the incoming depth is at least as deep as
// the resident one, or the resident entry is from a stale search age.
type TransTable struct {
	entries []ttEntry
	mask    uint64
	age     uint8
}

// NewTransTable allocates a table sized to the next power of two at or
// below sizeMB of entries.
func NewTransTable(sizeMB int) *TransTable {
	const entrySize = 16
	count := sizeMB * 1024 * 1024 / entrySize
	size := 1
	for size*2 <= count {
		size *= 2
	}
	if size < 1 {
		size = 1
	}
	return &TransTable{entries: make([]ttEntry, size), mask: uint64(size - 1)}
}

func (t *TransTable) NewSearch() { t.age++ }

func (t *TransTable) index(key uint64) uint64 { return key & t.mask }

func (t *TransTable) Probe(key uint64) (move common.Move, score int16, depth int8, nodeType NodeType, ok bool) {
	e := &t.entries[t.index(key)]
	tag := uint32(key >> 32)
	if e.tag != tag {
		return 0, 0, 0, 0, false
	}
	return e.move, e.score, e.depth, e.nodeType, true
}

func (t *TransTable) Store(key uint64, move common.Move, score int16, depth int8, nodeType NodeType) {
	idx := t.index(key)
	e := &t.entries[idx]
	tag := uint32(key >> 32)
	if e.depth > depth && e.age == t.age {
		return
	}
	*e = ttEntry{tag: tag, move: move, score: score, depth: depth, nodeType: nodeType, age: t.age}
}
