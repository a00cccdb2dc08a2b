package board

import "fmt"

// Square is a linear index on the 8x8 board, rank*8 + file
type Square uint8

const NumSquares = Files * Ranks

func NewSquare(file, rank int) Square {
	checkBounds(file, rank)
	return Square(rank*Files + file)
}

func (sq Square) File() int { return int(sq) % Files }
func (sq Square) Rank() int { return int(sq) / Files }

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.File(), sq.Rank()+1)
}

// Grid is a row-major board of arbitrary dimensions. Coordinates are derived
// from the configured width, never from bit masks.
type Grid struct {
	Files int
	Ranks int
}

// Standard is the grid of the packed board
var Standard = Grid{Files: Files, Ranks: Ranks}

func (g Grid) Len() int {
	return g.Files * g.Ranks
}

func (g Grid) Index(file, rank int) int {
	return rank*g.Files + file
}

func (g Grid) Coords(i int) (file, rank int) {
	return i % g.Files, i / g.Files
}

func (g Grid) Contains(file, rank int) bool {
	return file >= 0 && file < g.Files && rank >= 0 && rank < g.Ranks
}

// Parity returns 0 or 1 for the checkerboard colour of square i
func (g Grid) Parity(i int) int {
	file, rank := g.Coords(i)
	return (file % 2) ^ (rank % 2)
}
