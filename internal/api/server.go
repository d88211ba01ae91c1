// Package api exposes the partition and quantity queries over HTTP: a
// gorilla/mux router reading query parameters, JSON response structs, and
// a thin handler per endpoint.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/earthmesh/cubedsphere/internal/partition"
)

// Server answers neighbor and slice queries against a fixed
// CubedSpherePartitioner over HTTP.
type Server struct {
	router      *mux.Router
	partitioner partition.CubedSpherePartitioner
	log         zerolog.Logger
}

// NewServer builds a Server backed by the given partitioner.
func NewServer(p partition.CubedSpherePartitioner, log zerolog.Logger) *Server {
	s := &Server{
		router:      mux.NewRouter(),
		partitioner: p,
		log:         log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/neighbor", s.handleNeighbor).Methods(http.MethodGet)
	api.HandleFunc("/slice", s.handleSlice).Methods(http.MethodGet)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("starting api server")
	return http.ListenAndServe(addr, s.router)
}
