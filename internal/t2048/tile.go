// Package t2048 implements the 2048 sliding-tile puzzle: the board model,
// the move/merge algorithm, random tile spawning and win/loss detection.
package t2048

// BoardSize is the board dimension.
const BoardSize = 4

// DefaultWinTile is the tile value that wins the game.
const DefaultWinTile = 2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Tile is a numbered tile. ID only keys the tile for rendering and
// has no gameplay meaning.
type Tile struct {
	Value int
	ID    uint64
}

// Cell is a board position holding at most one tile.
// The zero Cell is empty.
type Cell struct {
	tile     Tile
	occupied bool
}

// Occupied returns a cell holding t.
func Occupied(t Tile) Cell {
	return Cell{tile: t, occupied: true}
}

// Tile returns the tile in the cell and whether there is one.
func (c Cell) Tile() (Tile, bool) {
	return c.tile, c.occupied
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return !c.occupied
}

// Value returns the tile value, or 0 for an empty cell.
func (c Cell) Value() int {
	if !c.occupied {
		return 0
	}
	return c.tile.Value
}

// sameContent compares presence and value, ignoring IDs.
func (c Cell) sameContent(o Cell) bool {
	return c.occupied == o.occupied && c.Value() == o.Value()
}

// Board is the 4x4 grid indexed [row][col]; row 0 is the top, column 0 the left.
// Board is a value type, so assigning it copies every cell.
type Board [BoardSize][BoardSize]Cell

// Pos is a board coordinate.
type Pos struct {
	Row, Col int
}

// BoardFromValues builds a board from raw values, 0 meaning empty.
// Tiles get sequential IDs starting at 1 in row-major order.
func BoardFromValues(values [BoardSize][BoardSize]int) Board {
	var b Board
	var id uint64
	for r := range BoardSize {
		for c := range BoardSize {
			if values[r][c] == 0 {
				continue
			}
			id++
			b[r][c] = Occupied(Tile{Value: values[r][c], ID: id})
		}
	}
	return b
}

// Values returns the board as raw values, 0 meaning empty.
func (b Board) Values() [BoardSize][BoardSize]int {
	var v [BoardSize][BoardSize]int
	for r := range BoardSize {
		for c := range BoardSize {
			v[r][c] = b[r][c].Value()
		}
	}
	return v
}
