package common

import "math/rand"

// ZobristKeys holds the random per-feature keys used to maintain
// BoardState.Key incrementally. Keys are generated from a fixed seed so
// that hashes are reproducible across runs and machines, matching the
// deterministic-seed convention used for the reference chess engine this
// one is descended from.
type ZobristKeys struct {
	Height     [NumSquares][5]uint64
	Worker     [2][NumSquares]uint64
	SideToMove uint64
	Winner     [4]uint64
	// GodDataBit holds one key per (player, bit index) pair; a god's
	// data word is folded into the hash by XORing the key of every set
	// bit, so any change to the word toggles exactly the keys for the
	// bits that changed.
	GodDataBit [2][32]uint64
}

var Keys = newZobristKeys()

func newZobristKeys() *ZobristKeys {
	r := rand.New(rand.NewSource(0x53616e746f72696e))
	k := &ZobristKeys{}
	for sq := 0; sq < NumSquares; sq++ {
		for h := 0; h < 5; h++ {
			k.Height[sq][h] = r.Uint64()
		}
	}
	for p := 0; p < 2; p++ {
		for sq := 0; sq < NumSquares; sq++ {
			k.Worker[p][sq] = r.Uint64()
		}
	}
	k.SideToMove = r.Uint64()
	for i := range k.Winner {
		k.Winner[i] = r.Uint64()
	}
	for p := 0; p < 2; p++ {
		for b := 0; b < 32; b++ {
			k.GodDataBit[p][b] = r.Uint64()
		}
	}
	return k
}

func zobristGodData(keys *ZobristKeys, player Player, data GodData) uint64 {
	var h uint64
	for b := 0; b < 32; b++ {
		if data&(1<<uint(b)) != 0 {
			h ^= keys.GodDataBit[player][b]
		}
	}
	return h
}

func zobristWinner(keys *ZobristKeys, winnerBits Bitboard) uint64 {
	switch winnerBits {
	case WinnerP1:
		return keys.Winner[1]
	case WinnerP2:
		return keys.Winner[2]
	default:
		return keys.Winner[0]
	}
}

// ComputeKey rebuilds the Zobrist hash of b from scratch, for use after
// bulk state construction (e.g. FEN parsing) and for verifying incremental
// updates in tests.
func ComputeKey(b *BoardState, keys *ZobristKeys) uint64 {
	var key uint64
	for sq := 0; sq < NumSquares; sq++ {
		key ^= keys.Height[sq][b.GetTrueHeight(Square(sq))]
	}
	for p := 0; p < 2; p++ {
		for bb := b.Workers[p] & FullBoard; bb != 0; {
			var sq Square
			sq, bb = bb.PopFirst()
			key ^= keys.Worker[p][sq]
		}
		key ^= zobristGodData(keys, Player(p), b.GodData[p])
	}
	if b.Current == PlayerTwo {
		key ^= keys.SideToMove
	}
	key ^= zobristWinner(keys, b.HeightMap[0]&WinnerMask)
	return key
}
