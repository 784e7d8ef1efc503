package t2048

// Line is one row or column of the board, ordered so that index 0 is the
// edge the tiles slide toward.
type Line [BoardSize]Cell

// SlideResult describes the outcome of sliding a whole board.
type SlideResult struct {
	Board   Board
	Score   int  // Sum of the values created by merges
	Merges  int  // Number of merges performed
	Changed bool // Whether any line differs from the original
}

// slideLine compacts a line toward index 0 and merges equal neighbours.
// A tile produced by a merge never merges again in the same pass.
// Returns the new line, the score gained and the number of merges.
func slideLine(line Line) (result Line, score, merges int) {
	var tiles [BoardSize]Tile
	n := 0
	for _, c := range line {
		if t, ok := c.Tile(); ok {
			tiles[n] = t
			n++
		}
	}

	out := 0
	for i := 0; i < n; {
		if i+1 < n && tiles[i].Value == tiles[i+1].Value {
			// Merge into the tile nearer the edge; it keeps its ID
			merged := tiles[i]
			merged.Value *= 2
			score += merged.Value
			merges++
			result[out] = Occupied(merged)
			out++
			i += 2
			continue
		}
		result[out] = Occupied(tiles[i])
		out++
		i++
	}

	return result, score, merges
}

// reverseLine reverses a line.
func reverseLine(line Line) Line {
	var result Line
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

// sameLine compares two lines by tile presence and value.
func sameLine(a, b Line) bool {
	for i := range BoardSize {
		if !a[i].sameContent(b[i]) {
			return false
		}
	}
	return true
}

// getLine extracts line i for a direction: rows for left/right, columns for
// up/down, reversed for right/down so index 0 is always the target edge.
func getLine(board Board, dir Direction, i int) Line {
	var line Line
	for k := range BoardSize {
		switch dir {
		case DirLeft, DirRight:
			line[k] = board[i][k]
		case DirUp, DirDown:
			line[k] = board[k][i]
		}
	}
	if dir == DirRight || dir == DirDown {
		line = reverseLine(line)
	}
	return line
}

// setLine writes a line produced by getLine back into the board.
func setLine(board *Board, dir Direction, i int, line Line) {
	if dir == DirRight || dir == DirDown {
		line = reverseLine(line)
	}
	for k := range BoardSize {
		switch dir {
		case DirLeft, DirRight:
			board[i][k] = line[k]
		case DirUp, DirDown:
			board[k][i] = line[k]
		}
	}
}

// Slide performs a move in the given direction on a copy of the board.
// An invalid direction yields an unchanged result.
func Slide(board Board, dir Direction) SlideResult {
	res := SlideResult{Board: board}
	if !dir.Valid() {
		return res
	}

	for i := range BoardSize {
		line := getLine(board, dir, i)
		newLine, score, merges := slideLine(line)
		setLine(&res.Board, dir, i, newLine)
		res.Score += score
		res.Merges += merges

		if !sameLine(line, newLine) {
			res.Changed = true
		}
	}

	return res
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Pos {
	var cells []Pos
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c].Empty() {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if board[r][c].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two horizontally or vertically adjacent
// tiles share a value. Each cell is checked against its right and bottom
// neighbours only, which covers every adjacency once.
func HasPossibleMerge(board Board) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			cell := board[r][c]
			if cell.Empty() {
				continue
			}
			if c < BoardSize-1 && !board[r][c+1].Empty() && board[r][c+1].Value() == cell.Value() {
				return true
			}
			if r < BoardSize-1 && !board[r+1][c].Empty() && board[r+1][c].Value() == cell.Value() {
				return true
			}
		}
	}
	return false
}

// IsGameOver returns true if the board is full and no adjacent pair can merge.
func IsGameOver(board Board) bool {
	return !HasEmptyCell(board) && !HasPossibleMerge(board)
}

// HasWon returns true if any tile equals the winning value.
func HasWon(board Board, winTile int) bool {
	for r := range BoardSize {
		for c := range BoardSize {
			if t, ok := board[r][c].Tile(); ok && t.Value == winTile {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board, 0 if empty.
func MaxTile(board Board) int {
	maxVal := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if v := board[r][c].Value(); v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func TileCount(board Board) int {
	n := 0
	for r := range BoardSize {
		for c := range BoardSize {
			if !board[r][c].Empty() {
				n++
			}
		}
	}
	return n
}
