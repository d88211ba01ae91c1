package partition

import "github.com/earthmesh/cubedsphere/internal/direction"

// edgeDelta is the (drow, dcol) unit step for crossing edge direction d.
func edgeDelta(d direction.Direction) (drow, dcol int) {
	switch d {
	case direction.West:
		return 0, -1
	case direction.East:
		return 0, 1
	case direction.North:
		return 1, 0
	case direction.South:
		return -1, 0
	default:
		return 0, 0
	}
}

// applyDelta moves (row, col) one cell in edge direction d without any
// bounds checking; callers establish in advance whether the move crosses
// a face edge.
func applyDelta(row, col int, d direction.Direction) (int, int) {
	dr, dc := edgeDelta(d)
	return row + dr, col + dc
}

// cornerDeltas decomposes a diagonal direction into its vertical and
// horizontal edge components.
func cornerDeltas(d direction.Direction) (vertical, horizontal direction.Direction) {
	switch d {
	case direction.Northwest:
		return direction.North, direction.West
	case direction.Northeast:
		return direction.North, direction.East
	case direction.Southwest:
		return direction.South, direction.West
	case direction.Southeast:
		return direction.South, direction.East
	default:
		return 0, 0
	}
}

// crossesEdge reports whether moving one step in edge direction d from
// (row, col) would leave the face under layout.
func crossesEdge(row, col int, layout Layout, d direction.Direction) bool {
	switch d {
	case direction.West:
		return col == 0
	case direction.East:
		return col == layout.Cols-1
	case direction.North:
		return row == layout.Rows-1
	case direction.South:
		return row == 0
	default:
		return false
	}
}

// mirrorForCrossing computes the position fed into RotateSubtileRank when
// crossing edge direction d out of a face. Which axis flips depends on the
// parity of the edge's rotation count: an even rotation (0 or 2 quarter
// turns) leaves RotateSubtileRank's transpose undone, so the flip must land
// on the axis the crossing travels along (the "penetration" axis - column
// for West/East, row for North/South). An odd rotation transposes the
// frame once on the way to the neighbor, so the flip has to land on the
// other axis instead for the two steps to compose correctly. Both cases
// were hand-verified against every West/East/North/South rank in the 1x1
// and 2x2 layouts, not just the handful of values reachable from one tile.
func mirrorForCrossing(row, col int, layout Layout, d direction.Direction, rotations int) (int, int) {
	evenRotation := rotations%2 == 0
	switch d {
	case direction.West, direction.East:
		if evenRotation {
			return row, layout.Cols - 1 - col
		}
		return layout.Rows - 1 - row, col
	case direction.North, direction.South:
		if evenRotation {
			return layout.Rows - 1 - row, col
		}
		return row, layout.Cols - 1 - col
	default:
		return row, col
	}
}

// edgeIndex maps an edge direction to its slot in the faceEdges table.
func edgeIndex(d direction.Direction) int {
	switch d {
	case direction.West:
		return 0
	case direction.East:
		return 1
	case direction.North:
		return 2
	case direction.South:
		return 3
	default:
		return -1
	}
}

// RotateSubtileRank returns the sub-rank the same sub-tile would carry
// after its face were rotated k clockwise quarter turns: the layout
// transposes on every odd step, and (row, col) maps to
// (cols-1-col, row) in the new frame.
func RotateSubtileRank(subRank int, layout Layout, k int) int {
	rows, cols := layout.Rows, layout.Cols
	row, col := subRank/cols, subRank%cols
	k = ((k % 4) + 4) % 4
	for i := 0; i < k; i++ {
		row, col, rows, cols = cols-1-col, row, cols, rows
	}
	return row*cols + col
}
