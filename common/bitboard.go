package common

import "math/bits"

// Bitboard packs the 25 board squares into the low 25 bits of a 32-bit
// word. Bits 25-29 are scratch space used transiently by move generators;
// bits 30-31, only meaningful in the lowest height plane, encode the
// winner (00 none, 01 player one, 10 player two).
type Bitboard uint32

const (
	FullBoard     Bitboard = (1 << NumSquares) - 1
	EmptyBoard    Bitboard = 0
	WinnerMask    Bitboard = 3 << 30
	WinnerP1      Bitboard = 1 << 30
	WinnerP2      Bitboard = 2 << 30
	MiddleMask    Bitboard = 0b00000_01110_01110_01110_00000
	PerimeterMask Bitboard = FullBoard &^ MiddleMask
)

func SquareMask(s Square) Bitboard { return Bitboard(1) << uint(s) }

func (b Bitboard) Has(s Square) bool { return b&SquareMask(s) != 0 }
func (b Bitboard) IsEmpty() bool     { return b&FullBoard == 0 }
func (b Bitboard) NotEmpty() bool    { return !b.IsEmpty() }
func (b Bitboard) Count() int        { return bits.OnesCount32(uint32(b) & uint32(FullBoard)) }

// FirstSquare returns the lowest set square, and NoSquare if empty.
func (b Bitboard) FirstSquare() Square {
	if b.IsEmpty() {
		return NoSquare
	}
	return Square(bits.TrailingZeros32(uint32(b)))
}

// PopFirst clears and returns the lowest set square, for the classic
// `for bb != 0 { sq := bb.FirstSquare(); bb = bb.Clear(sq) }` iteration idiom.
func (b Bitboard) PopFirst() (Square, Bitboard) {
	sq := b.FirstSquare()
	return sq, b & (b - 1)
}

func (b Bitboard) Set(s Square) Bitboard   { return b | SquareMask(s) }
func (b Bitboard) Clear(s Square) Bitboard { return b &^ SquareMask(s) }

// Squares returns every set square as a slice, in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for bb := b & FullBoard; bb != 0; {
		var sq Square
		sq, bb = bb.PopFirst()
		out = append(out, sq)
	}
	return out
}

// NeighborMap[s] is the set of squares orthogonally/diagonally adjacent to s.
// InclusiveNeighborMap additionally includes s itself.
var NeighborMap [NumSquares]Bitboard
var InclusiveNeighborMap [NumSquares]Bitboard

// PushMapping[from][to] is the square a worker at `to` would be pushed into
// if shoved directly away from `from` (Minotaur/Apollo-style push), or
// NoSquare if that square falls off the board.
var PushMapping [NumSquares][NumSquares]Square

// Directions is the fixed compass ordering (NW, N, NE, W, E, SW, S, SE)
// used to index DirectionMap and by Aeolus to record her blocked wind
// direction in a 3-bit god-data field.
var Directions = [8]struct{ DF, DR int }{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// DirectionMap[dir][s] is the square one step from s in direction dir, or
// NoSquare if that step falls off the board.
var DirectionMap [8][NumSquares]Square

func init() {
	for sq := 0; sq < NumSquares; sq++ {
		s := Square(sq)
		f, r := s.File(), s.Rank()
		var neighbors Bitboard
		for d, delta := range Directions {
			nf, nr := f+delta.DF, r+delta.DR
			if nf < 0 || nf >= BoardWidth || nr < 0 || nr >= BoardWidth {
				DirectionMap[d][sq] = NoSquare
				continue
			}
			target := MakeSquare(nf, nr)
			DirectionMap[d][sq] = target
			neighbors = neighbors.Set(target)
		}
		NeighborMap[sq] = neighbors
		InclusiveNeighborMap[sq] = neighbors.Set(s)
	}

	for from := 0; from < NumSquares; from++ {
		ff, fr := Square(from).File(), Square(from).Rank()
		for to := 0; to < NumSquares; to++ {
			if NeighborMap[from]&SquareMask(Square(to)) == 0 {
				PushMapping[from][to] = NoSquare
				continue
			}
			tf, tr := Square(to).File(), Square(to).Rank()
			df, dr := tf-ff, tr-fr
			nf, nr := tf+df, tr+dr
			if nf < 0 || nf >= BoardWidth || nr < 0 || nr >= BoardWidth {
				PushMapping[from][to] = NoSquare
				continue
			}
			PushMapping[from][to] = MakeSquare(nf, nr)
		}
	}
}

// NeighborsExcludingDirection returns s's neighbor set with the square in
// compass direction dir removed (a no-op if dir is out of range or that
// step falls off the board), for Aeolus's wind restriction.
func NeighborsExcludingDirection(s Square, dir int) Bitboard {
	if dir < 0 || dir >= len(Directions) {
		return NeighborMap[s]
	}
	blocked := DirectionMap[dir][s]
	if blocked == NoSquare {
		return NeighborMap[s]
	}
	return NeighborMap[s].Clear(blocked)
}

// ApplyMappingToMask maps every square set in mask through table and unions
// the results, e.g. computing all neighbors of a worker set.
func ApplyMappingToMask(mask Bitboard, table *[NumSquares]Bitboard) Bitboard {
	var out Bitboard
	for bb := mask & FullBoard; bb != 0; {
		var sq Square
		sq, bb = bb.PopFirst()
		out |= table[sq]
	}
	return out
}
