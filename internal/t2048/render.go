package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	// MinScreenW and MinScreenH are the smallest screen the board fits on.
	MinScreenW = boardW + 4
	MinScreenH = hudHeight + 1 + boardH + 2
)

// tileColors maps the known tile values to colors. Larger values use
// defaultTileColor.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorBrightWhite,
	8:    core.ColorOrange,
	16:   core.ColorBrightRed,
	32:   core.ColorRed,
	64:   core.ColorMagenta,
	128:  core.ColorBrightYellow,
	256:  core.ColorYellow,
	512:  core.ColorBrightGreen,
	1024: core.ColorGreen,
	2048: core.ColorBrightCyan,
}

const defaultTileColor = core.ColorBrightMagenta

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return defaultTileColor
}

// RenderOptions carries host information shown next to the board.
type RenderOptions struct {
	WinTile int    // Target shown in the win overlay
	Moves   int    // Accepted moves this game
	Footer  string // Control hints drawn below the board
}

// Render draws the game state to the screen. It only reads st.
func Render(dst *core.Screen, st State, opts RenderOptions) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	if opts.WinTile <= 0 {
		opts.WinTile = DefaultWinTile
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	renderHUD(dst, st, opts, boardX)
	renderBoard(dst, st.Board, boardX, boardY)

	if opts.Footer != "" {
		dst.DrawTextCentered(boardY+boardH+1, opts.Footer)
	}

	renderOverlays(dst, st, opts, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score, best score and move counter.
func renderHUD(dst *core.Screen, st State, opts RenderOptions, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", st.Score))

	bestStr := fmt.Sprintf("Best: %d", st.BestScore)
	dst.DrawText(boardX+boardW-len(bestStr), 1, bestStr)

	info := fmt.Sprintf("Moves: %d  Max: %d", opts.Moves, MaxTile(st.Board))
	dst.DrawTextColored(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func renderBoard(dst *core.Screen, board Board, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}

			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for r := range BoardSize {
		for c := range BoardSize {
			tile, ok := board[r][c].Tile()
			if !ok {
				continue
			}

			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1

			valStr := strconv.Itoa(tile.Value)
			padLeft := core.Clamp((cellWidth-1-len(valStr))/2, 0, cellWidth-1)

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(tile.Value))
		}
	}
}

// renderOverlays draws the win and game over boxes.
func renderOverlays(dst *core.Screen, st State, opts RenderOptions, board core.Rect) {
	switch {
	case st.Won:
		drawOverlay(dst, board, core.ColorBrightCyan,
			"YOU WIN!",
			fmt.Sprintf("Reached %d", opts.WinTile),
			"Press N for a new game",
		)
	case st.GameOver:
		drawOverlay(dst, board, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", MaxTile(st.Board)),
			"Press N for a new game",
		)
	}
}

// drawOverlay draws a text box centered on area. The first line uses the
// title color.
func drawOverlay(dst *core.Screen, area core.Rect, titleColor core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)

	dst.FillRect(box)
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = titleColor
		}
		dst.DrawTextColored(box.X+(box.W-len(line))/2, box.Y+1+i, line, c)
	}
}
