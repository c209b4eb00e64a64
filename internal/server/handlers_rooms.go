package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/matzehuels/rackroom/pkg/errors"
	planio "github.com/matzehuels/rackroom/pkg/io"
	"github.com/matzehuels/rackroom/pkg/observability"
	"github.com/matzehuels/rackroom/pkg/plan"
	"github.com/matzehuels/rackroom/pkg/render"
	"github.com/matzehuels/rackroom/pkg/store"
)

type createRoomRequest struct {
	RoomID    string  `json:"room_id"`
	NumTilesX int     `json:"num_tiles_x"`
	NumTilesY int     `json:"num_tiles_y"`
	HeightM   float64 `json:"height_m"`
	TileSizeM float64 `json:"tile_size_m"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if req.RoomID == "" {
		req.RoomID = uuid.NewString()
	}
	if err := apperrors.ValidateObjectID(req.RoomID); err != nil {
		writeError(w, err)
		return
	}

	opts := []plan.RoomOption{}
	if req.TileSizeM > 0 {
		opts = append(opts, plan.WithTileSize(req.TileSizeM))
	}
	room, err := plan.NewRoom(req.RoomID, req.NumTilesX, req.NumTilesY, req.HeightM, opts...)
	if err != nil {
		writeError(w, apperrors.FromPlacement(err))
		return
	}

	if !s.registry.put(req.RoomID, &planState{room: room}) {
		writeError(w, apperrors.New(apperrors.ErrCodeDuplicateID, "room %s already exists", req.RoomID))
		return
	}

	s.logger.Info("room created", "room", req.RoomID, "tiles", req.NumTilesX*req.NumTilesY)
	writeJSON(w, http.StatusCreated, planio.Snapshot(room, nil))
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"rooms": s.registry.ids()})
}

// withRoom resolves the room from the URL and runs fn under the room
// lock, giving each request an exclusive, atomic view of the plan.
func (s *Server) withRoom(w http.ResponseWriter, r *http.Request, fn func(p *planState) error) {
	roomID := chi.URLParam(r, "roomID")
	p, ok := s.registry.get(roomID)
	if !ok {
		writeError(w, apperrors.New(apperrors.ErrCodeRoomNotFound, "room %s not found", roomID))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := fn(p); err != nil {
		writeError(w, err)
	}
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	s.withRoom(w, r, func(p *planState) error {
		writeJSON(w, http.StatusOK, planio.Snapshot(p.room, p.ladders))
		return nil
	})
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if !s.registry.remove(roomID) {
		writeError(w, apperrors.New(apperrors.ErrCodeRoomNotFound, "room %s not found", roomID))
		return
	}
	s.logger.Info("room deleted", "room", roomID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSavePlan(w http.ResponseWriter, r *http.Request) {
	s.withRoom(w, r, func(p *planState) error {
		doc := planio.Snapshot(p.room, p.ladders)

		start := time.Now()
		err := s.store.Save(r.Context(), doc)
		observability.Store().OnSave(r.Context(), doc.Room.RoomID, time.Since(start), err)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to save plan %s", doc.Room.RoomID)
		}

		s.logger.Info("plan saved", "room", doc.Room.RoomID)
		writeJSON(w, http.StatusOK, map[string]string{"room_id": doc.Room.RoomID})
		return nil
	})
}

func (s *Server) handleImportPlan(w http.ResponseWriter, r *http.Request) {
	var doc planio.Document
	if err := decodeBody(r, &doc); err != nil {
		writeError(w, err)
		return
	}

	// Fall back to the store when the body carries only a room id.
	if len(doc.Racks) == 0 && len(doc.Obstacles) == 0 && len(doc.Ladders) == 0 && doc.Room.NumTilesX == 0 {
		start := time.Now()
		loaded, err := s.store.Load(r.Context(), doc.Room.RoomID)
		observability.Store().OnLoad(r.Context(), doc.Room.RoomID, time.Since(start), err)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				writeError(w, apperrors.Wrap(apperrors.ErrCodeRoomNotFound, err, "no stored plan for %s", doc.Room.RoomID))
				return
			}
			writeError(w, apperrors.Wrap(apperrors.ErrCodeStore, err, "failed to load plan %s", doc.Room.RoomID))
			return
		}
		doc = loaded
	}

	room, ladders, err := planio.Restore(doc)
	if err != nil {
		writeError(w, apperrors.FromPlacement(err))
		return
	}

	s.registry.replace(room.RoomID(), &planState{room: room, ladders: ladders})
	s.logger.Info("plan imported", "room", room.RoomID())
	writeJSON(w, http.StatusOK, planio.Snapshot(room, ladders))
}

func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	s.withRoom(w, r, func(p *planState) error {
		svg := render.RenderSVG(p.room, render.WithLadders(p.ladders))
		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
		return nil
	})
}
