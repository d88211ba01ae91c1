package quantity

import (
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// Interval is a closed-open per-axis index range [Lo, Hi).
type Interval struct {
	Lo int
	Hi int
}

// Region is the per-axis slice BoundarySlice returns, ordered to match
// Descriptor.Dims.
type Region []Interval

// BoundarySlice computes the rectangular index region corresponding to a
// halo layer of nPoints along direction, either on the interior side of
// the compute region (interior=true) or the exterior halo side
// (interior=false). Axes perpendicular to direction keep the full compute
// region; the axis (or, for a corner direction, the two axes) parallel to
// direction is narrowed to the requested halo layer. An interface axis's
// extra trailing point is already absorbed into Extent, so no special
// case is needed here.
func BoundarySlice(d Descriptor, dir direction.Direction, nPoints int, interior bool) (Region, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %v", direction.ErrInvalidDirection, dir)
	}
	if nPoints < 1 {
		return nil, fmt.Errorf("%w: n_points=%d", ErrInvalidHalo, nPoints)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	region := make(Region, len(d.Dims))
	for axis := range d.Dims {
		region[axis] = Interval{Lo: d.Origin[axis], Hi: d.Origin[axis] + d.Extent[axis]}
	}

	narrowAxis := func(edgeDir direction.Direction) error {
		axis := d.axisForEdge(edgeDir)
		if axis < 0 {
			return nil
		}
		lo, hi := narrowInterval(d.Origin[axis], d.Extent[axis], edgeDir, nPoints, interior)
		if lo < 0 || hi > d.Shape[axis] || lo >= hi {
			return fmt.Errorf("%w: axis %d [%d,%d) shape=%d", ErrOutOfBounds, axis, lo, hi, d.Shape[axis])
		}
		region[axis] = Interval{Lo: lo, Hi: hi}
		return nil
	}

	if dir.IsEdge() {
		if err := narrowAxis(dir); err != nil {
			return nil, err
		}
		return region, nil
	}

	vertical, horizontal := cornerComponents(dir)
	if err := narrowAxis(vertical); err != nil {
		return nil, err
	}
	if err := narrowAxis(horizontal); err != nil {
		return nil, err
	}
	return region, nil
}

// narrowInterval applies the per-direction halo rule to a single axis.
func narrowInterval(origin, extent int, edgeDir direction.Direction, nPoints int, interior bool) (lo, hi int) {
	switch edgeDir {
	case direction.West, direction.South:
		if interior {
			return origin, origin + nPoints
		}
		return origin - nPoints, origin
	case direction.North, direction.East:
		if interior {
			return origin + extent - nPoints, origin + extent
		}
		return origin + extent, origin + extent + nPoints
	default:
		return origin, origin + extent
	}
}

// cornerComponents decomposes a diagonal direction into its north/south
// and east/west edge components.
func cornerComponents(d direction.Direction) (vertical, horizontal direction.Direction) {
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

// axisForEdge finds which of d's axes runs parallel to edgeDir, or -1 if
// no such axis is declared (e.g. a descriptor with only a Z axis).
func (d Descriptor) axisForEdge(edgeDir direction.Direction) int {
	var want direction.Axis
	switch edgeDir {
	case direction.West, direction.East:
		want = direction.AxisEastWest
	case direction.North, direction.South:
		want = direction.AxisNorthSouth
	default:
		return -1
	}
	for axis, label := range d.Dims {
		if ax, ok := label.AxisOf(); ok && ax == want {
			return axis
		}
	}
	return -1
}
