// Package quantity implements the boundary slicer: given an array
// descriptor (dimension labels, origin, extent, buffer shape) it computes
// the rectangular index region corresponding to a halo layer along a
// given direction.
package quantity

import (
	"errors"
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
)

// ErrDimensionMismatch is returned when Dims, Origin, Extent, and Shape
// disagree in length.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrInvalidHalo is returned when n_points < 1 or a descriptor axis has
// origin+extent greater than its buffer shape. A computed slice that
// leaves the buffer is reported with ErrOutOfBounds instead.
var ErrInvalidHalo = errors.New("invalid halo")

// ErrOutOfBounds is returned when a computed interval falls outside
// [0, shape[axis]).
var ErrOutOfBounds = errors.New("slice out of bounds")

// Descriptor is the external collaborator the slicer consumes: the
// declared dimension names, origin, extent, and buffer shape of a
// sub-tile array. Quantity never owns or mutates the underlying buffer.
type Descriptor struct {
	Dims   []direction.DimLabel
	Origin []int
	Extent []int
	Shape  []int
}

// NewDescriptor validates that Dims/Origin/Extent/Shape agree in length
// and that every axis satisfies origin+extent <= shape.
func NewDescriptor(dims []direction.DimLabel, origin, extent, shape []int) (Descriptor, error) {
	d := Descriptor{Dims: dims, Origin: origin, Extent: extent, Shape: shape}
	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func (d Descriptor) validate() error {
	n := len(d.Dims)
	if len(d.Origin) != n || len(d.Extent) != n || len(d.Shape) != n {
		return fmt.Errorf("%w: dims=%d origin=%d extent=%d shape=%d",
			ErrDimensionMismatch, len(d.Dims), len(d.Origin), len(d.Extent), len(d.Shape))
	}
	for axis := range d.Dims {
		if d.Origin[axis]+d.Extent[axis] > d.Shape[axis] {
			return fmt.Errorf("%w: axis %d origin=%d extent=%d shape=%d",
				ErrInvalidHalo, axis, d.Origin[axis], d.Extent[axis], d.Shape[axis])
		}
	}
	return nil
}
