package partition

import (
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// edgeNeighbor names which tile lies across a face edge and how many
// clockwise quarter turns separate the two faces' local frames.
type edgeNeighbor struct {
	tile      int
	rotations int
}

// faceEdges is the static cube connectivity graph, keyed by
// faceEdges[tile][edgeIndex(direction)]. It is populated once in init and
// never mutated: every entry has a matching reverse entry elsewhere in the
// table such that the two rotations sum to 0 mod 4, which is what the
// reversibility property test (see cubedsphere_test.go) verifies. Every
// one of these 24 entries is read directly off a layout=(1,1) boundary
// query, where tile and rank coincide and the adjacency graph is exactly
// the six-rank table below with no sub-tile arithmetic involved.
var faceEdges [6][4]edgeNeighbor

func setEdge(tile int, d direction.Direction, neighbor, rotations int) {
	faceEdges[tile][edgeIndex(d)] = edgeNeighbor{tile: neighbor, rotations: rotations}
}

func init() {
	setEdge(0, direction.West, 4, 1)
	setEdge(0, direction.East, 1, 0)
	setEdge(0, direction.North, 2, 3)
	setEdge(0, direction.South, 5, 0)

	setEdge(1, direction.West, 0, 0)
	setEdge(1, direction.East, 3, 1)
	setEdge(1, direction.North, 2, 0)
	setEdge(1, direction.South, 5, 3)

	setEdge(2, direction.West, 0, 1)
	setEdge(2, direction.East, 3, 0)
	setEdge(2, direction.North, 4, 3)
	setEdge(2, direction.South, 1, 0)

	setEdge(3, direction.West, 2, 0)
	setEdge(3, direction.East, 5, 1)
	setEdge(3, direction.North, 4, 0)
	setEdge(3, direction.South, 1, 3)

	setEdge(4, direction.West, 2, 1)
	setEdge(4, direction.East, 5, 0)
	setEdge(4, direction.North, 0, 3)
	setEdge(4, direction.South, 3, 0)

	setEdge(5, direction.West, 4, 0)
	setEdge(5, direction.East, 1, 1)
	setEdge(5, direction.North, 0, 0)
	setEdge(5, direction.South, 3, 3)
}

// CubedSpherePartitioner composes six TilePartitioners, one per cube face,
// into a global rank space of 6*layout.TotalRanks() ranks and answers
// cross-face neighbor queries using the static face adjacency graph plus
// the rotation algebra in RotateSubtileRank.
type CubedSpherePartitioner struct {
	tile TilePartitioner
}

// NewCubedSpherePartitioner composes tile into a six-face partitioner.
func NewCubedSpherePartitioner(tile TilePartitioner) CubedSpherePartitioner {
	return CubedSpherePartitioner{tile: tile}
}

// Layout returns the per-face sub-tile grid.
func (c CubedSpherePartitioner) Layout() Layout {
	return c.tile.layout
}

// TotalRanks is six times the per-face sub-tile count.
func (c CubedSpherePartitioner) TotalRanks() int {
	return 6 * c.tile.TotalRanks()
}

func (c CubedSpherePartitioner) decompose(rank int) (tileIdx, subRank int) {
	n := c.tile.TotalRanks()
	return rank / n, rank % n
}

func (c CubedSpherePartitioner) compose(tileIdx, subRank int) int {
	return tileIdx*c.tile.TotalRanks() + subRank
}

// Boundary answers a topology query. The returned bool is false, with a
// zero BoundaryRecord, exactly when direction is a corner sitting at one
// of the cube's three-face vertices; that is a first-class absent result,
// never an error and never a sentinel rank.
func (c CubedSpherePartitioner) Boundary(d direction.Direction, rank int) (BoundaryRecord, bool, error) {
	if !d.Valid() {
		return BoundaryRecord{}, false, fmt.Errorf("%w: %v", direction.ErrInvalidDirection, d)
	}
	if rank < 0 || rank >= c.TotalRanks() {
		return BoundaryRecord{}, false, fmt.Errorf("%w: %d", ErrOutOfRangeRank, rank)
	}

	tileIdx, subRank := c.decompose(rank)
	layout := c.tile.layout
	row, col := layout.RowCol(subRank)

	if d.IsEdge() {
		if !crossesEdge(row, col, layout, d) {
			toSub := layout.SubRank(applyDelta(row, col, d))
			return BoundaryRecord{BoundaryType: d, FromRank: rank, ToRank: c.compose(tileIdx, toSub)}, true, nil
		}
		toTile, toSub, rot := c.crossEdge(tileIdx, row, col, layout, d)
		return BoundaryRecord{
			BoundaryType:        d,
			FromRank:            rank,
			ToRank:              c.compose(toTile, toSub),
			NClockwiseRotations: rot,
		}, true, nil
	}

	return c.cornerBoundary(d, rank, tileIdx, row, col, layout)
}

func (c CubedSpherePartitioner) cornerBoundary(d direction.Direction, rank, tileIdx, row, col int, layout Layout) (BoundaryRecord, bool, error) {
	vertical, horizontal := cornerDeltas(d)
	crossesV := crossesEdge(row, col, layout, vertical)
	crossesH := crossesEdge(row, col, layout, horizontal)

	switch {
	case !crossesV && !crossesH:
		nRow, nCol := applyDelta(row, col, vertical)
		nRow, nCol = applyDelta(nRow, nCol, horizontal)
		return BoundaryRecord{
			BoundaryType: d,
			FromRank:     rank,
			ToRank:       c.compose(tileIdx, layout.SubRank(nRow, nCol)),
		}, true, nil

	case crossesV && crossesH:
		// A true three-face cube vertex: both components leave the face at
		// once, and no single neighbor owns that corner.
		return BoundaryRecord{}, false, nil

	default:
		crossingDir, nonCrossingDir := horizontal, vertical
		if crossesV {
			crossingDir, nonCrossingDir = vertical, horizontal
		}
		toTile, toSub, rot := c.crossEdge(tileIdx, row, col, layout, crossingDir)
		destRow, destCol := layout.RowCol(toSub)
		stepDir, err := direction.RotateClockwise(nonCrossingDir, -rot)
		if err != nil {
			return BoundaryRecord{}, false, err
		}
		destRow, destCol = applyDelta(destRow, destCol, stepDir)
		return BoundaryRecord{
			BoundaryType:        d,
			FromRank:            rank,
			ToRank:              c.compose(toTile, layout.SubRank(destRow, destCol)),
			NClockwiseRotations: rot,
		}, true, nil
	}
}

// crossEdge mirrors (row, col) across the crossing direction, then rotates
// it into the neighbor face's frame per the adjacency table entry.
func (c CubedSpherePartitioner) crossEdge(tileIdx, row, col int, layout Layout, d direction.Direction) (toTile, toSub, rotations int) {
	n := faceEdges[tileIdx][edgeIndex(d)]
	mRow, mCol := mirrorForCrossing(row, col, layout, d, n.rotations)
	preRank := layout.SubRank(mRow, mCol)
	toSub = RotateSubtileRank(preRank, layout, n.rotations)
	return n.tile, toSub, n.rotations
}
