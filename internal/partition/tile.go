package partition

import (
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// TilePartitioner decomposes a single cube face into a Layout of sub-tiles
// and answers intra-face neighbor queries. Boundary refuses a query whose
// sub-tile sits on the relevant face edge; TileBoundary always succeeds by
// wrapping around within the same face. CubedSpherePartitioner intercepts
// the wrapping case and substitutes cross-face traversal.
type TilePartitioner struct {
	layout Layout
}

// NewTilePartitioner constructs a TilePartitioner over layout.
func NewTilePartitioner(layout Layout) TilePartitioner {
	return TilePartitioner{layout: layout}
}

// Layout returns the partitioner's sub-tile grid.
func (t TilePartitioner) Layout() Layout {
	return t.layout
}

// TotalRanks is the number of sub-tiles on the face.
func (t TilePartitioner) TotalRanks() int {
	return t.layout.TotalRanks()
}

func (t TilePartitioner) validate(d direction.Direction, subRank int) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %v", direction.ErrInvalidDirection, d)
	}
	if subRank < 0 || subRank >= t.TotalRanks() {
		return fmt.Errorf("%w: %d", ErrOutOfRangeRank, subRank)
	}
	return nil
}

// Boundary answers the non-wrapping intra-face neighbor query. It fails
// with ErrOnFaceEdge when subRank sits on the face edge named by d; such
// sub-tiles only have an answer once composed into a CubedSpherePartitioner.
func (t TilePartitioner) Boundary(d direction.Direction, subRank int) (BoundaryRecord, error) {
	if err := t.validate(d, subRank); err != nil {
		return BoundaryRecord{}, err
	}
	row, col := t.layout.RowCol(subRank)

	if d.IsEdge() {
		if crossesEdge(row, col, t.layout, d) {
			return BoundaryRecord{}, fmt.Errorf("%w: direction %v at sub-rank %d", ErrOnFaceEdge, d, subRank)
		}
		nRow, nCol := applyDelta(row, col, d)
		return BoundaryRecord{
			BoundaryType: d,
			FromRank:     subRank,
			ToRank:       t.layout.SubRank(nRow, nCol),
		}, nil
	}

	vertical, horizontal := cornerDeltas(d)
	if crossesEdge(row, col, t.layout, vertical) || crossesEdge(row, col, t.layout, horizontal) {
		return BoundaryRecord{}, fmt.Errorf("%w: direction %v at sub-rank %d", ErrOnFaceEdge, d, subRank)
	}
	nRow, nCol := applyDelta(row, col, vertical)
	nRow, nCol = applyDelta(nRow, nCol, horizontal)
	return BoundaryRecord{
		BoundaryType: d,
		FromRank:     subRank,
		ToRank:       t.layout.SubRank(nRow, nCol),
	}, nil
}

// TileBoundary is the wrapping variant used when composing faces into a
// CubedSpherePartitioner: it always succeeds and never leaves the face.
// Rotations are always zero; the cubed-sphere layer is responsible for
// overriding the wrap with the real cross-face rotation where relevant.
func (t TilePartitioner) TileBoundary(d direction.Direction, subRank int) (BoundaryRecord, error) {
	if err := t.validate(d, subRank); err != nil {
		return BoundaryRecord{}, err
	}
	row, col := t.layout.RowCol(subRank)

	if d.IsEdge() {
		nRow, nCol := wrapDelta(row, col, t.layout, d)
		return BoundaryRecord{
			BoundaryType: d,
			FromRank:     subRank,
			ToRank:       t.layout.SubRank(nRow, nCol),
		}, nil
	}

	vertical, horizontal := cornerDeltas(d)
	nRow, nCol := wrapDelta(row, col, t.layout, vertical)
	nRow, nCol = wrapDelta(nRow, nCol, t.layout, horizontal)
	return BoundaryRecord{
		BoundaryType: d,
		FromRank:     subRank,
		ToRank:       t.layout.SubRank(nRow, nCol),
	}, nil
}

// wrapDelta moves one step in edge direction d, wrapping to the opposite
// edge of the same face when the step would otherwise leave it.
func wrapDelta(row, col int, layout Layout, d direction.Direction) (int, int) {
	switch d {
	case direction.West:
		if col == 0 {
			return row, layout.Cols - 1
		}
		return row, col - 1
	case direction.East:
		if col == layout.Cols-1 {
			return row, 0
		}
		return row, col + 1
	case direction.North:
		if row == layout.Rows-1 {
			return 0, col
		}
		return row + 1, col
	case direction.South:
		if row == 0 {
			return layout.Rows - 1, col
		}
		return row - 1, col
	default:
		return row, col
	}
}
