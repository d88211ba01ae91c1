package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/earthmesh/cubedsphere/internal/direction"
	"github.com/earthmesh/cubedsphere/internal/quantity"
)

// NeighborResponse mirrors a partition.BoundaryRecord, plus an Absent flag
// for the first-class no-neighbor result.
type NeighborResponse struct {
	Absent    bool   `json:"absent"`
	ToRank    int    `json:"to_rank,omitempty"`
	Rotations int    `json:"rotations,omitempty"`
	Direction string `json:"direction"`
}

// SliceResponse is a Region flattened to JSON-friendly [lo, hi) pairs.
type SliceResponse struct {
	Region [][2]int `json:"region"`
}

// ErrorResponse is the envelope returned for any 4xx from this package.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleNeighbor(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dir, err := direction.Parse(q.Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rank, err := strconv.Atoi(q.Get("rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, ok, err := s.partitioner.Boundary(dir, rank)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, NeighborResponse{Absent: true, Direction: dir.String()})
		return
	}
	writeJSON(w, http.StatusOK, NeighborResponse{
		ToRank:    rec.ToRank,
		Rotations: rec.NClockwiseRotations,
		Direction: dir.String(),
	})
}

func (s *Server) handleSlice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dir, err := direction.Parse(q.Get("direction"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	nPoints, err := strconv.Atoi(q.Get("points"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	interior := q.Get("interior") == "true"

	dims, origin, extent, shape, err := parseDescriptorParams(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	desc, err := quantity.NewDescriptor(dims, origin, extent, shape)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	region, err := quantity.BoundarySlice(desc, dir, nPoints, interior)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := SliceResponse{Region: make([][2]int, len(region))}
	for i, interval := range region {
		resp.Region[i] = [2]int{interval.Lo, interval.Hi}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
