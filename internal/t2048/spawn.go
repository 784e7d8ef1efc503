package t2048

import "math/rand"

// spawnTile places a new tile (2, or 4 with probability spawn4Prob) in a
// uniformly chosen empty cell. Only the chosen cell is written. Returns the
// position used and false if the board was full.
func spawnTile(board *Board, rng *rand.Rand, spawn4Prob float64, id uint64) (Pos, bool) {
	emptyCells := EmptyCells(*board)
	if len(emptyCells) == 0 {
		return Pos{}, false
	}

	pos := emptyCells[rng.Intn(len(emptyCells))]

	value := 2
	if rng.Float64() < spawn4Prob {
		value = 4
	}

	board[pos.Row][pos.Col] = Occupied(Tile{Value: value, ID: id})
	return pos, true
}
