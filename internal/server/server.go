// Package server embeds the placement engine behind an HTTP API.
//
// The core engine is single-actor by design, so this embedding owns the
// concurrency policy: every mutating request for a room runs under that
// room's lock (see registry.go), and read-only queries serve consistent
// snapshots taken under the same lock. Placement rejections map to 4xx
// responses with machine-readable error codes; nothing the user can do
// through the API is a server fault.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/rackroom/pkg/store"
)

// Server is the HTTP embedding of the placement engine.
type Server struct {
	logger   *log.Logger
	store    store.Store
	registry *registry
}

// New creates a server backed by the given plan store.
// The logger must not be nil; pass log.Default() for quick setups.
func New(logger *log.Logger, st store.Store) *Server {
	return &Server{
		logger:   logger,
		store:    st,
		registry: newRegistry(),
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", s.handleCreateRoom)
		r.Get("/", s.handleListRooms)
		r.Post("/import", s.handleImportPlan)

		r.Route("/{roomID}", func(r chi.Router) {
			r.Get("/", s.handleGetRoom)
			r.Delete("/", s.handleDeleteRoom)
			r.Post("/save", s.handleSavePlan)
			r.Get("/svg", s.handleRenderSVG)

			r.Post("/racks", s.handleAddRack)
			r.Post("/obstacles", s.handleAddObstacle)
			r.Post("/footprints/{footprintID}/position", s.handleReposition)
			r.Delete("/footprints/{footprintID}", s.handleRemoveFootprint)

			r.Get("/tiles/occupied", s.handleOccupiedTiles)
			r.Get("/tiles/free", s.handleFreeTiles)
			r.Get("/tiles/probe", s.handleProbeTile)

			r.Post("/ladders", s.handleCreateLadder)
			r.Delete("/ladders/{ladderID}", s.handleDeleteLadder)
			r.Post("/ladders/{ladderID}/sections", s.handleAddSection)
			r.Delete("/ladders/{ladderID}/sections/last", s.handleRemoveLastSection)
			r.Delete("/ladders/{ladderID}/sections/{sectionID}", s.handleRemoveSection)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
