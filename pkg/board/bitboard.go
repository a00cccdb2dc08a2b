package board

import "math/bits"

// Bitboard is a 64-bit set of squares, bit i for Square i
type Bitboard uint64

func BB(sq Square) Bitboard { return 1 << sq }

func (b Bitboard) Empty() bool { return b == 0 }

func (b Bitboard) Has(sq Square) bool { return b&(1<<sq) != 0 }

func (b Bitboard) Add(sq Square) Bitboard { return b | (1 << sq) }

func (b Bitboard) Remove(sq Square) Bitboard { return b &^ (1 << sq) }

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// PopLSB returns the lowest set square and the board without it
func (b Bitboard) PopLSB() (Square, Bitboard) {
	if b == 0 {
		return 0, 0
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1)
}

func (b Bitboard) Iter(fn func(Square)) {
	for bb := b; bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		fn(sq)
	}
}

// RankMask returns the bits of one rank
func RankMask(rank int) Bitboard {
	return Bitboard(0xff) << (uint(rank) * Files)
}
