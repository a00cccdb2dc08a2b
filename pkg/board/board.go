package board

import (
	"fmt"
	"strings"
)

// The packed layout stores one byte per file in a 64-bit rank word, which
// fixes the board at 8x8.
const (
	Files = 8
	Ranks = 8
)

// Board packs every rank into one machine word so whole ranks can be shifted,
// masked and counted with bitwise arithmetic. The occupancy masks are the
// source of truth for whether a square holds a piece.
type Board struct {
	ranks     [Ranks]uint64
	occupancy [2]Bitboard
}

// backRank lists the back rank kinds from file 0 to file 7
var backRank = [Files]Kind{Tower, Horse, Bishop, King, Queen, Bishop, Horse, Tower}

// packRank builds a rank word from eight piece codes, file 0 in the low byte
func packRank(pieces [Files]Piece) uint64 {
	var w uint64
	for f, p := range pieces {
		w |= uint64(p) << (uint(f) * 8)
	}
	return w
}

func fillRank(k Kind, c Color) [Files]Piece {
	var pieces [Files]Piece
	for f := range pieces {
		pieces[f] = NewPiece(k, c)
	}
	return pieces
}

func homeRank(c Color) [Files]Piece {
	var pieces [Files]Piece
	for f, k := range backRank {
		pieces[f] = NewPiece(k, c)
	}
	return pieces
}

// InitialLayout returns the fixed starting position. White holds ranks 0 and 1,
// Black ranks 6 and 7, ranks 2 to 5 are zero and unoccupied.
func InitialLayout() *Board {
	b := &Board{}
	b.ranks[0] = packRank(homeRank(White))
	b.ranks[1] = packRank(fillRank(Pawn, White))
	b.ranks[6] = packRank(fillRank(Pawn, Black))
	b.ranks[7] = packRank(homeRank(Black))
	b.occupancy[White] = RankMask(0) | RankMask(1)
	b.occupancy[Black] = RankMask(6) | RankMask(7)
	return b
}

// NewBoard builds a board from a set of placed pieces
func NewBoard(pieces map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range pieces {
		b.ranks[sq.Rank()] |= uint64(p) << (uint(sq.File()) * 8)
		b.occupancy[p.Color()] = b.occupancy[p.Color()].Add(sq)
	}
	return b
}

func checkBounds(file, rank int) {
	if !Standard.Contains(file, rank) {
		panic(fmt.Sprintf("board: square (%d, %d) out of bounds", file, rank))
	}
}

func checkColor(c Color) {
	if c != White && c != Black {
		panic(fmt.Sprintf("board: invalid color %d", c))
	}
}

// PieceAt decodes the code stored at file, rank. The code of an unoccupied
// square is meaningless, use Occupant to tell them apart.
func (b *Board) PieceAt(file, rank int) Piece {
	checkBounds(file, rank)
	return Piece(b.ranks[rank] >> (uint(file) * 8))
}

func (b *Board) PieceAtSquare(sq Square) Piece {
	return b.PieceAt(sq.File(), sq.Rank())
}

// IsOccupiedBy reports whether c has a piece on file, rank
func (b *Board) IsOccupiedBy(c Color, file, rank int) bool {
	checkColor(c)
	return b.occupancy[c].Has(NewSquare(file, rank))
}

// Occupant returns the piece on file, rank and whether the square is occupied
func (b *Board) Occupant(file, rank int) (Piece, bool) {
	sq := NewSquare(file, rank)
	if !b.Occupied().Has(sq) {
		return 0, false
	}
	return b.PieceAtSquare(sq), true
}

func (b *Board) OccupiedBy(c Color) Bitboard {
	checkColor(c)
	return b.occupancy[c]
}

func (b *Board) Occupied() Bitboard {
	return b.occupancy[White] | b.occupancy[Black]
}

// RankWord returns the packed codes of one rank
func (b *Board) RankWord(rank int) uint64 {
	checkBounds(0, rank)
	return b.ranks[rank]
}

// Material counts the pieces of each kind owned by c
func (b *Board) Material(c Color) map[Kind]int {
	counts := make(map[Kind]int)
	b.OccupiedBy(c).Iter(func(sq Square) {
		counts[b.PieceAtSquare(sq).Kind()]++
	})
	return counts
}

// Validate checks that the occupancy masks are disjoint and agree with the
// color bit and kind of every occupied square.
func (b *Board) Validate() error {
	if overlap := b.occupancy[White] & b.occupancy[Black]; !overlap.Empty() {
		sq, _ := overlap.PopLSB()
		return fmt.Errorf("%w at %s", ErrMaskOverlap, sq)
	}
	var err error
	b.Occupied().Iter(func(sq Square) {
		if err != nil {
			return
		}
		p := b.PieceAtSquare(sq)
		if !p.Kind().Valid() {
			err = fmt.Errorf("%w %#x at %s", ErrUnknownKind, uint8(p), sq)
			return
		}
		if !b.occupancy[p.Color()].Has(sq) {
			err = fmt.Errorf("%w at %s: code %#x", ErrColorMismatch, sq, uint8(p))
		}
	})
	return err
}

// String draws the board with rank 7 on top, '.' for unoccupied squares
func (b *Board) String() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < Files; f++ {
			if p, ok := b.Occupant(f, r); ok {
				sb.WriteString(p.String())
			} else {
				sb.WriteByte('.')
			}
			if f < Files-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
