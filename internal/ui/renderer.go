package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dropfour/internal/game"
)

// Board geometry on screen. Each cell is two characters wide so pieces
// have breathing room; the cursor row sits above the grid and the status
// line below it.
const (
	originX = 2
	originY = 2

	cellWidth = 2

	pieceRune  = '●'
	emptyRune  = '·'
	cursorRune = '▼'

	frameDelay = 35 * time.Millisecond
)

// Renderer draws the game to the screen.
type Renderer struct {
	screen *Screen
	styles map[game.Player]tcell.Style
}

// NewRenderer creates a renderer drawing each player's pieces in the given
// color.
func NewRenderer(screen *Screen, p1Color, p2Color tcell.Color) *Renderer {
	return &Renderer{
		screen: screen,
		styles: map[game.Player]tcell.Style{
			game.Player1: tcell.StyleDefault.Foreground(p1Color).Bold(true),
			game.Player2: tcell.StyleDefault.Foreground(p2Color).Bold(true),
		},
	}
}

// Render draws the full frame: cursor marker, board, and status line.
func (r *Renderer) Render(board *game.Board, current game.Player, cursor int, status string) {
	r.screen.Clear()

	r.screen.SetContent(originX+cursor*cellWidth, originY-1, cursorRune, r.styles[current])
	r.drawBoard(board, -1, -1)
	r.screen.SetText(originX, originY+board.Height+1, status, tcell.StyleDefault)

	r.screen.Show()
}

// AnimateDrop plays the falling-piece animation for a piece that has
// already landed at (row, column) on the board. The landed cell is hidden
// while a transient piece steps down toward it, one row per frame. The
// call blocks until the piece is visually at rest.
func (r *Renderer) AnimateDrop(board *game.Board, player game.Player, row, column int) {
	style := r.styles[player]

	for step := 0; step <= row; step++ {
		r.screen.Clear()
		r.drawBoard(board, row, column)
		r.screen.SetContent(originX+column*cellWidth, originY+step, pieceRune, style)
		r.screen.Show()

		if step < row {
			time.Sleep(frameDelay)
		}
	}
}

// ColumnAt maps a screen position to a board column, or -1 when the
// position is outside the board's columns.
func (r *Renderer) ColumnAt(board *game.Board, x, y int) int {
	column := (x - originX) / cellWidth
	if x < originX || column >= board.Width {
		return -1
	}
	return column
}

// drawBoard renders every cell of the grid. The cell at (skipRow, skipCol)
// is drawn as empty; the animation uses that to hide a landed piece while
// its transient twin is still falling.
func (r *Renderer) drawBoard(board *game.Board, skipRow, skipCol int) {
	for row := 0; row < board.Height; row++ {
		for column := 0; column < board.Width; column++ {
			x := originX + column*cellWidth
			y := originY + row

			cell := board.Cell(row, column)
			if cell == game.Empty || (row == skipRow && column == skipCol) {
				r.screen.SetContent(x, y, emptyRune, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
				continue
			}

			r.screen.SetContent(x, y, pieceRune, r.styles[game.Player(cell)])
		}
	}
}
