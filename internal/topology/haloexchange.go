// Package topology glues internal/partition and internal/quantity together
// for the common consumer question: "what is my neighbor across direction
// d, and which buffer regions do I send and receive to exchange a halo of
// n points with it?"
package topology

import (
	"fmt"

	"github.com/earthmesh/cubedsphere/internal/direction"
	"github.com/earthmesh/cubedsphere/internal/partition"
	"github.com/earthmesh/cubedsphere/internal/quantity"
)

// Exchange bundles a topology query with the two regions a real halo
// exchange would need: SendRegion is the interior-side data this rank
// hands to its neighbor, RecvRegion is the halo-side buffer slot that
// receives the neighbor's reciprocal send.
type Exchange struct {
	Boundary   partition.BoundaryRecord
	SendRegion quantity.Region
	RecvRegion quantity.Region
}

// HaloExchange composes a CubedSpherePartitioner and a quantity.Descriptor
// to answer Exchange queries in one call.
type HaloExchange struct {
	partitioner partition.CubedSpherePartitioner
	descriptor  quantity.Descriptor
}

// NewHaloExchange binds a partitioner to the descriptor of the array whose
// halos are being exchanged.
func NewHaloExchange(p partition.CubedSpherePartitioner, d quantity.Descriptor) HaloExchange {
	return HaloExchange{partitioner: p, descriptor: d}
}

// Plan returns the boundary record and the send/receive regions for
// exchanging nPoints along direction d from rank. ok is false, with a
// zero Exchange, when d names an absent three-face corner.
func (h HaloExchange) Plan(d direction.Direction, rank, nPoints int) (plan Exchange, ok bool, err error) {
	rec, ok, err := h.partitioner.Boundary(d, rank)
	if err != nil {
		return Exchange{}, false, fmt.Errorf("halo exchange: %w", err)
	}
	if !ok {
		return Exchange{}, false, nil
	}

	send, err := quantity.BoundarySlice(h.descriptor, d, nPoints, true)
	if err != nil {
		return Exchange{}, false, fmt.Errorf("halo exchange send region: %w", err)
	}
	recv, err := quantity.BoundarySlice(h.descriptor, d, nPoints, false)
	if err != nil {
		return Exchange{}, false, fmt.Errorf("halo exchange receive region: %w", err)
	}

	return Exchange{Boundary: rec, SendRegion: send, RecvRegion: recv}, true, nil
}
