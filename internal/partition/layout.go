// Package partition implements the cubed-sphere rank space: a single-face
// TilePartitioner, the six-face CubedSpherePartitioner that composes it,
// and the rotation algebra gluing adjacent faces together.
package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout is returned when a Layout has fewer than one row or
// column.
var ErrInvalidLayout = errors.New("invalid layout")

// ErrOutOfRangeRank is returned when a rank falls outside a partitioner's
// valid range.
var ErrOutOfRangeRank = errors.New("rank out of range")

// ErrOnFaceEdge is returned by TilePartitioner.Boundary when the queried
// sub-tile sits on the face edge relevant to the requested direction;
// such queries belong to CubedSpherePartitioner or TileBoundary instead.
var ErrOnFaceEdge = errors.New("sub-tile is on the face edge")

// Layout describes a rows-by-columns grid of sub-tiles covering one face.
// Sub-rank 0 sits at the southwest corner; row increases northward, column
// increases eastward.
type Layout struct {
	Rows int
	Cols int
}

// NewLayout validates rows and cols before constructing a Layout.
func NewLayout(rows, cols int) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidLayout, rows, cols)
	}
	return Layout{Rows: rows, Cols: cols}, nil
}

// TotalRanks is the number of sub-tiles in the face.
func (l Layout) TotalRanks() int {
	return l.Rows * l.Cols
}

// RowCol decomposes a sub-rank into its (row, col) position.
func (l Layout) RowCol(subRank int) (row, col int) {
	return subRank / l.Cols, subRank % l.Cols
}

// SubRank composes a (row, col) position into its sub-rank.
func (l Layout) SubRank(row, col int) int {
	return row*l.Cols + col
}

// Transposed is the layout of a face rotated by an odd number of quarter
// turns, where rows and columns swap.
func (l Layout) Transposed() Layout {
	return Layout{Rows: l.Cols, Cols: l.Rows}
}
