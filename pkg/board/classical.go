package board

import (
	"fmt"

	"github.com/notnil/chess"
)

var classicalPieces = map[Piece]chess.Piece{
	NewPiece(King, White):   chess.WhiteKing,
	NewPiece(Queen, White):  chess.WhiteQueen,
	NewPiece(Tower, White):  chess.WhiteRook,
	NewPiece(Bishop, White): chess.WhiteBishop,
	NewPiece(Horse, White):  chess.WhiteKnight,
	NewPiece(Pawn, White):   chess.WhitePawn,
	NewPiece(King, Black):   chess.BlackKing,
	NewPiece(Queen, Black):  chess.BlackQueen,
	NewPiece(Tower, Black):  chess.BlackRook,
	NewPiece(Bishop, Black): chess.BlackBishop,
	NewPiece(Horse, Black):  chess.BlackKnight,
	NewPiece(Pawn, Black):   chess.BlackPawn,
}

// Classical converts a board that only holds pieces with a classical chess
// counterpart. Rank 0 maps to rank 1, file 0 to file a.
func Classical(b *Board) (*chess.Board, error) {
	m := make(map[chess.Square]chess.Piece)
	var err error
	b.Occupied().Iter(func(sq Square) {
		if err != nil {
			return
		}
		p := b.PieceAtSquare(sq)
		cp, ok := classicalPieces[p]
		if !ok {
			err = fmt.Errorf("%w: %s at %s", ErrNotClassical, p.Name(), sq)
			return
		}
		m[chess.Square(int(sq))] = cp
	})
	if err != nil {
		return nil, err
	}
	return chess.NewBoard(m), nil
}
