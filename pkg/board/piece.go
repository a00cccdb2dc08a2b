package board

import (
	"fmt"
	"strings"
)

// Color is the side owning a piece
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Level groups piece kinds by strength
type Level uint8

const (
	LevelI Level = iota + 1
	LevelII
	LevelIII
)

func (l Level) String() string {
	switch l {
	case LevelI:
		return "I"
	case LevelII:
		return "II"
	case LevelIII:
		return "III"
	default:
		return "?"
	}
}

// Kind is the type code of a piece, stored in the low bits of a Piece
type Kind uint8

const (
	// Level I
	Pawn     Kind = 0x0
	Warrior  Kind = 0x1
	General  Kind = 0x2
	King     Kind = 0x3 // Level II, kept in the Level I code block
	Horse    Kind = 0x4
	Elephant Kind = 0x5
	Camel    Kind = 0x6
	Monkey   Kind = 0x7

	// Level II
	Bishop   Kind = 0x8
	Cardinal Kind = 0x9
	Hawk     Kind = 0xa
	Tower    Kind = 0xb
	Castle   Kind = 0xc
	Bull     Kind = 0xd
	Pegasus  Kind = 0xe

	// Level III
	Queen  Kind = 0xf
	Dragon Kind = 0x10

	NumKinds = 17
)

// Kinds lists every piece kind in code order
var Kinds = [NumKinds]Kind{
	Pawn, Warrior, General, King, Horse, Elephant, Camel, Monkey,
	Bishop, Cardinal, Hawk, Tower, Castle, Bull, Pegasus,
	Queen, Dragon,
}

var kindNames = [NumKinds]string{
	"pawn", "warrior", "general", "king", "horse", "elephant", "camel", "monkey",
	"bishop", "cardinal", "hawk", "tower", "castle", "bull", "pegasus",
	"queen", "dragon",
}

var kindSymbols = [NumKinds]rune{
	'P', 'W', 'G', 'K', 'N', 'E', 'C', 'M',
	'B', 'A', 'H', 'R', 'S', 'U', 'F',
	'Q', 'D',
}

func (k Kind) Valid() bool {
	return k < NumKinds
}

// Level returns the power level the kind belongs to
func (k Kind) Level() Level {
	switch {
	case k == King:
		return LevelII
	case k <= Monkey:
		return LevelI
	case k <= Pegasus:
		return LevelII
	case k <= Dragon:
		return LevelIII
	default:
		return 0
	}
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%#x)", uint8(k))
	}
	return kindNames[k]
}

// Symbol returns the single letter used in diagrams, '?' for unknown kinds
func (k Kind) Symbol() rune {
	if !k.Valid() {
		return '?'
	}
	return kindSymbols[k]
}

// Piece is the 8-bit code stored in a rank word: kind in bits 0-4, color in bit 7.
// Piece(0) is the white Pawn; emptiness is only known from the occupancy masks.
type Piece uint8

const (
	KindMask Piece = 0x1f
	ColorBit Piece = 0x80
)

func NewPiece(k Kind, c Color) Piece {
	p := Piece(k) & KindMask
	if c == Black {
		p |= ColorBit
	}
	return p
}

func (p Piece) Kind() Kind {
	return Kind(p & KindMask)
}

func (p Piece) Color() Color {
	if p&ColorBit != 0 {
		return Black
	}
	return White
}

// String returns the kind symbol, upper case for White and lower case for Black
func (p Piece) String() string {
	s := string(p.Kind().Symbol())
	if p.Color() == Black {
		return strings.ToLower(s)
	}
	return s
}

// Name returns a readable name such as "black tower"
func (p Piece) Name() string {
	return p.Color().String() + " " + p.Kind().String()
}
