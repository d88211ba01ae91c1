package partition

import (
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// BoundaryRecord is the result of a topology query: crossing BoundaryType
// from FromRank lands on ToRank, whose local frame is rotated
// NClockwiseRotations quarter turns clockwise relative to FromRank's frame.
type BoundaryRecord struct {
	BoundaryType        direction.Direction
	FromRank            int
	ToRank              int
	NClockwiseRotations int
}

// String renders a BoundaryRecord the way a debug log or a failed test
// assertion would want to see it.
func (b BoundaryRecord) String() string {
	return fmt.Sprintf("%s: rank %d -> rank %d (rotate %d)",
		b.BoundaryType, b.FromRank, b.ToRank, b.NClockwiseRotations)
}
