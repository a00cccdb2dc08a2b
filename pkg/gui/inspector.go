package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/xchess/pkg/board"
	"github.com/rivo/tview"
)

// Inspector is a read-only table view of a board. Moving the selection shows
// the code stored under it; Escape or q quits.
type Inspector struct {
	App    *tview.Application
	Table  *tview.Table
	Detail *tview.TextView

	board *board.Board
	theme Theme
}

func NewInspector(b *board.Board, t Theme) *Inspector {
	ins := &Inspector{
		App:    tview.NewApplication(),
		Table:  tview.NewTable(),
		Detail: tview.NewTextView(),
		board:  b,
		theme:  t,
	}
	ins.renderTable()

	ins.Table.SetSelectable(true, true)
	ins.Table.SetSelectionChangedFunc(func(row, col int) {
		ins.Detail.SetText(ins.describe(row, col))
	})
	ins.Table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			ins.App.Stop()
		}
	})
	ins.Table.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			ins.App.Stop()
			return nil
		}
		return ev
	})
	ins.Table.Select(0, 1)

	layout := tview.NewFlex().
		AddItem(ins.Table, 2*board.Files+4, 0, true).
		AddItem(ins.Detail, 0, 1, false)
	ins.App.SetRoot(layout, true)
	return ins
}

func (ins *Inspector) Run() error {
	return ins.App.Run()
}

// posToSquare maps a table cell to a square, rank 7 on the top row
func posToSquare(row, col int) (board.Square, bool) {
	if row < 0 || row >= board.Ranks || col < 1 || col > board.Files {
		return 0, false
	}
	return board.NewSquare(col-1, board.Ranks-row-1), true
}

// renderTable fills the table: a rank label column, the squares, and a row
// of file labels at the bottom
func (ins *Inspector) renderTable() {
	for row := 0; row <= board.Ranks; row++ {
		for col := 0; col <= board.Files; col++ {
			if row == board.Ranks {
				text := ""
				if col > 0 {
					text = fmt.Sprintf(" %c", 'a'+col-1)
				}
				ins.Table.SetCell(row, col, tview.NewTableCell(text).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}
			if col == 0 {
				ins.Table.SetCell(row, col, tview.NewTableCell(fmt.Sprint(board.Ranks-row)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}

			sq, _ := posToSquare(row, col)
			text := "  "
			if p, ok := ins.board.Occupant(sq.File(), sq.Rank()); ok {
				text = " " + p.String()
			}
			bg := squareColor(board.Standard, int(sq), ins.theme)
			fg := ins.theme.SquareLight
			if board.Standard.Parity(int(sq)) == 1 {
				fg = ins.theme.SquareDark
			}
			ins.Table.SetCell(row, col, tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(bg.Color()).
				SetTextColor(fg.Color()))
		}
	}
}

// describe returns the detail text for a table cell
func (ins *Inspector) describe(row, col int) string {
	sq, ok := posToSquare(row, col)
	if !ok {
		return ""
	}
	code := ins.board.PieceAtSquare(sq)
	p, occupied := ins.board.Occupant(sq.File(), sq.Rank())
	if !occupied {
		return fmt.Sprintf("%s (index %d)\nempty\ncode 0x%02x", sq, sq, uint8(code))
	}
	return fmt.Sprintf("%s (index %d)\n%s\nlevel %s\ncode 0x%02x",
		sq, sq, p.Name(), p.Kind().Level(), uint8(p))
}
