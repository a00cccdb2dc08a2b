package board

import (
	"errors"
	"strings"
	"testing"
)

func TestInitialLayoutColors(t *testing.T) {
	b := InitialLayout()
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			p := b.PieceAt(f, r)
			switch {
			case r <= 1:
				if p.Color() != White {
					t.Errorf("(%d, %d): wanted white got %s", f, r, p.Name())
				}
			case r >= 6:
				if p.Color() != Black {
					t.Errorf("(%d, %d): wanted black got %s", f, r, p.Name())
				}
			default:
				if p != 0 {
					t.Errorf("(%d, %d): wanted zero code on empty rank got %#x", f, r, uint8(p))
				}
			}
		}
	}
}

func TestInitialLayoutBackRanks(t *testing.T) {
	b := InitialLayout()
	want := []Kind{Tower, Horse, Bishop, King, Queen, Bishop, Horse, Tower}
	for f, k := range want {
		if got := b.PieceAt(f, 0); got != NewPiece(k, White) {
			t.Errorf("rank 0 file %d: wanted white %s got %s", f, k, got.Name())
		}
		if got := b.PieceAt(f, 7); got != NewPiece(k, Black) {
			t.Errorf("rank 7 file %d: wanted black %s got %s", f, k, got.Name())
		}
		if b.PieceAt(f, 1) != NewPiece(Pawn, White) || b.PieceAt(f, 6) != NewPiece(Pawn, Black) {
			t.Errorf("file %d: pawn ranks not filled", f)
		}
	}

	// Everything but the royal pair mirrors left to right
	for f := 0; f < Files; f++ {
		if f == 3 || f == 4 {
			continue
		}
		if b.PieceAt(f, 0).Kind() != b.PieceAt(Files-1-f, 0).Kind() {
			t.Errorf("file %d does not mirror file %d", f, Files-1-f)
		}
	}

	if b.RankWord(7) != b.RankWord(0)|0x8080808080808080 {
		t.Errorf("black back rank is not the white back rank with the color bit: %#x", b.RankWord(7))
	}
	if b.RankWord(6) != 0x8080808080808080 || b.RankWord(1) != 0 {
		t.Errorf("unexpected pawn rank words %#x %#x", b.RankWord(1), b.RankWord(6))
	}
}

func TestInitialLayoutOccupancy(t *testing.T) {
	b := InitialLayout()
	if b.OccupiedBy(White) != 0x000000000000ffff {
		t.Errorf("unexpected white mask %#x", uint64(b.OccupiedBy(White)))
	}
	if b.OccupiedBy(Black) != 0xffff000000000000 {
		t.Errorf("unexpected black mask %#x", uint64(b.OccupiedBy(Black)))
	}

	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			p, ok := b.Occupant(f, r)
			if !ok {
				if b.IsOccupiedBy(White, f, r) || b.IsOccupiedBy(Black, f, r) {
					t.Errorf("(%d, %d): occupant missing but mask set", f, r)
				}
				continue
			}
			c := p.Color()
			if !b.IsOccupiedBy(c, f, r) || b.IsOccupiedBy(c.Opposite(), f, r) {
				t.Errorf("(%d, %d): mask disagrees with %s", f, r, p.Name())
			}
		}
	}

	if err := b.Validate(); err != nil {
		t.Errorf("initial layout failed validation: %s", err)
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	b := InitialLayout()
	for _, d := range []struct{ file, rank int }{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("(%d, %d): wanted panic", d.file, d.rank)
				}
			}()
			b.PieceAt(d.file, d.rank)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("(%d, %d): wanted panic from IsOccupiedBy", d.file, d.rank)
				}
			}()
			b.IsOccupiedBy(White, d.file, d.rank)
		}()
	}
}

func TestMaterial(t *testing.T) {
	b := InitialLayout()
	for _, c := range []Color{White, Black} {
		m := b.Material(c)
		want := map[Kind]int{Pawn: 8, Tower: 2, Horse: 2, Bishop: 2, King: 1, Queen: 1}
		if len(m) != len(want) {
			t.Errorf("%s: unexpected material %v", c, m)
		}
		for k, n := range want {
			if m[k] != n {
				t.Errorf("%s %s: wanted %d got %d", c, k, n, m[k])
			}
		}
		if b.OccupiedBy(c).Count() != 16 {
			t.Errorf("%s: wanted 16 pieces got %d", c, b.OccupiedBy(c).Count())
		}
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(map[Square]Piece{
		NewSquare(0, 0): NewPiece(Pawn, White),
		NewSquare(4, 4): NewPiece(Dragon, Black),
	})
	if p, ok := b.Occupant(0, 0); !ok || p != NewPiece(Pawn, White) {
		t.Errorf("wanted white pawn on a1 got %s (%v)", p.Name(), ok)
	}
	if p, ok := b.Occupant(4, 4); !ok || p.Kind() != Dragon || p.Color() != Black {
		t.Errorf("wanted black dragon on e5 got %s (%v)", p.Name(), ok)
	}
	if _, ok := b.Occupant(1, 0); ok {
		t.Error("b1 should be empty")
	}
	if err := b.Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidate(t *testing.T) {
	b := InitialLayout()
	b.occupancy[Black] = b.occupancy[Black].Add(NewSquare(0, 0))
	if err := b.Validate(); !errors.Is(err, ErrMaskOverlap) {
		t.Errorf("wanted overlap error got %v", err)
	}

	b = InitialLayout()
	b.occupancy[White] = b.occupancy[White].Add(NewSquare(0, 6))
	b.occupancy[Black] = b.occupancy[Black].Remove(NewSquare(0, 6))
	if err := b.Validate(); !errors.Is(err, ErrColorMismatch) {
		t.Errorf("wanted color mismatch got %v", err)
	}

	b = NewBoard(map[Square]Piece{NewSquare(2, 2): Piece(0x1e)})
	if err := b.Validate(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("wanted unknown kind got %v", err)
	}
}

func TestString(t *testing.T) {
	lines := strings.Split(InitialLayout().String(), "\n")
	want := []string{
		"8 r n b k q b n r",
		"7 p p p p p p p p",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P P P P P",
		"1 R N B K Q B N R",
		"  a b c d e f g h",
	}
	if len(lines) != len(want) {
		t.Fatalf("wanted %d lines got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: wanted %q got %q", i, want[i], lines[i])
		}
	}
}
