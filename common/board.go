package common

// BoardState is the complete mutable game position: tower heights, worker
// locations, whose turn it is, and each god's private scratch word. It
// intentionally carries no god *identity* — that lives in the GameState
// that wraps it — so that BoardState stays a plain value type that make/
// unmake, hashing, and the transposition table can all reason about
// uniformly regardless of which gods are in play.
type BoardState struct {
	// HeightMap[h] has a bit set for every square whose tower is at
	// least h+1 stories tall, so a square's true height is the count of
	// planes it appears in. Bits 30-31 of HeightMap[0] hold the winner
	// marker (see WinnerMask); a dome is represented as level 4, so a
	// domed square that was never built up past level 2 is
	// indistinguishable, bit-for-bit, from a naturally-built level-4
	// tower. Callers that need to tell the two apart must track it
	// out of band (see DESIGN.md).
	HeightMap [4]Bitboard
	Workers   [2]Bitboard
	GodData   [2]GodData
	Current   Player
	Key       uint64

	// heights caches the true tower height (0-4) of every square for
	// O(1) lookup, kept in lockstep with HeightMap by BuildUp, Dome and
	// RecomputeHeights.
	heights [NumSquares]uint8
}

func NewBoardState() BoardState {
	b := BoardState{Current: PlayerOne}
	b.Key = ComputeKey(&b, Keys)
	return b
}

func (b *BoardState) GetHeight(s Square) uint8 { return b.heights[s] }

// GetTrueHeight recomputes a square's height from HeightMap directly,
// bypassing the cache; used by validation and FEN emission.
func (b *BoardState) GetTrueHeight(s Square) uint8 {
	var h uint8
	mask := SquareMask(s)
	for i := 0; i < 4; i++ {
		if b.HeightMap[i]&mask != 0 {
			h++
		}
	}
	return h
}

func (b *BoardState) recomputeHeights() {
	for sq := 0; sq < NumSquares; sq++ {
		b.heights[sq] = b.GetTrueHeight(Square(sq))
	}
}

// RecomputeHeights rebuilds the height cache from HeightMap; callers that
// construct a board's HeightMap directly (FEN parsing) must call this
// before relying on GetHeight.
func (b *BoardState) RecomputeHeights() { b.recomputeHeights() }

func (b *BoardState) ExactlyLevel(level int) Bitboard {
	switch level {
	case 0:
		return FullBoard &^ b.HeightMap[0]
	case 1:
		return b.HeightMap[0] &^ b.HeightMap[1]
	case 2:
		return b.HeightMap[1] &^ b.HeightMap[2]
	case 3:
		return b.HeightMap[2] &^ b.HeightMap[3]
	default:
		return b.HeightMap[3]
	}
}

func (b *BoardState) AtLeastLevel(level int) Bitboard {
	if level <= 0 {
		return FullBoard
	}
	return b.HeightMap[level-1]
}

// DomeMask returns every square built up to (or domed at) level 4.
func (b *BoardState) DomeMask() Bitboard { return b.HeightMap[3] }

// BuildUp adds one story to s, keeping HeightMap, heights and Key in sync.
func (b *BoardState) BuildUp(s Square, keys *ZobristKeys) {
	h := b.heights[s]
	if h >= 4 {
		return
	}
	b.HeightMap[h] |= SquareMask(s)
	b.heights[s] = h + 1
	b.Key ^= keys.Height[s][h]
	b.Key ^= keys.Height[s][h+1]
}

// Dome forces s straight to level 4 regardless of its current height,
// as used by Atlas.
func (b *BoardState) Dome(s Square, keys *ZobristKeys) {
	h := b.heights[s]
	for l := h; l < 4; l++ {
		b.HeightMap[l] |= SquareMask(s)
	}
	b.heights[s] = 4
	b.Key ^= keys.Height[s][h]
	b.Key ^= keys.Height[s][4]
}

// WorkerXor toggles worker occupancy for player at every square set in mask,
// e.g. moveMask = SquareMask(from) | SquareMask(to).
func (b *BoardState) WorkerXor(player Player, mask Bitboard, keys *ZobristKeys) {
	b.Workers[player] ^= mask
	for bb := mask & FullBoard; bb != 0; {
		var sq Square
		sq, bb = bb.PopFirst()
		b.Key ^= keys.Worker[player][sq]
	}
}

func (b *BoardState) SwapToMove(keys *ZobristKeys) {
	b.Current = b.Current.Opponent()
	b.Key ^= keys.SideToMove
}

func (b *BoardState) SetGodData(player Player, value GodData, keys *ZobristKeys) {
	old := b.GodData[player]
	b.Key ^= zobristGodData(keys, player, old)
	b.GodData[player] = value
	b.Key ^= zobristGodData(keys, player, value)
}

func (b *BoardState) GetWinner() (Player, bool) {
	switch b.HeightMap[0] & WinnerMask {
	case WinnerP1:
		return PlayerOne, true
	case WinnerP2:
		return PlayerTwo, true
	default:
		return 0, false
	}
}

func (b *BoardState) SetWinner(player Player, keys *ZobristKeys) {
	if _, already := b.GetWinner(); already {
		return
	}
	b.Key ^= zobristWinner(keys, b.HeightMap[0]&WinnerMask)
	b.HeightMap[0] &^= WinnerMask
	if player == PlayerOne {
		b.HeightMap[0] |= WinnerP1
	} else {
		b.HeightMap[0] |= WinnerP2
	}
	b.Key ^= zobristWinner(keys, b.HeightMap[0]&WinnerMask)
}

// Clone returns an independent deep copy suitable for make/unmake-by-copy,
// mirroring the "clone the position, mutate the clone" convention this
// engine's move application follows throughout.
func (b *BoardState) Clone() BoardState {
	c := *b
	return c
}

// GetPositionsForPlayer returns the worker squares belonging to player.
func (b *BoardState) GetPositionsForPlayer(player Player) []Square {
	return b.Workers[player].Squares()
}
