package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/matzehuels/rackroom/pkg/errors"
	"github.com/matzehuels/rackroom/pkg/observability"
	"github.com/matzehuels/rackroom/pkg/plan"
)

type addRackRequest struct {
	ID         string `json:"id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	WidthTiles int    `json:"width_tiles"`
	DepthTiles int    `json:"depth_tiles"`
	RackUnits  int    `json:"rack_units"`
}

type addObstacleRequest struct {
	ID         string  `json:"id"`
	X          int     `json:"x"`
	Y          int     `json:"y"`
	WidthTiles int     `json:"width_tiles"`
	DepthTiles int     `json:"depth_tiles"`
	HeightM    float64 `json:"height_m"`
}

type positionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// footprintResponse reports a committed placement.
type footprintResponse struct {
	ID    string      `json:"id"`
	Tiles []plan.Tile `json:"tiles"`
}

func (s *Server) handleAddRack(w http.ResponseWriter, r *http.Request) {
	var req addRackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := apperrors.ValidateObjectID(req.ID); err != nil {
		writeError(w, err)
		return
	}

	s.withRoom(w, r, func(p *planState) error {
		rack, err := plan.NewDataRack(req.ID, plan.Tile{X: req.X, Y: req.Y}, req.WidthTiles, req.DepthTiles, req.RackUnits)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		err = p.room.AddFootprint(rack)
		observability.Placement().OnPlace(r.Context(), p.room.RoomID(), req.ID, err)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("rack placed", "room", p.room.RoomID(), "rack", req.ID, "units", req.RackUnits)
		writeJSON(w, http.StatusCreated, footprintResponse{ID: rack.ID(), Tiles: rack.Tiles()})
		return nil
	})
}

func (s *Server) handleAddObstacle(w http.ResponseWriter, r *http.Request) {
	var req addObstacleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if err := apperrors.ValidateObjectID(req.ID); err != nil {
		writeError(w, err)
		return
	}

	s.withRoom(w, r, func(p *planState) error {
		obstacle, err := plan.NewObstacle(req.ID, plan.Tile{X: req.X, Y: req.Y}, req.WidthTiles, req.DepthTiles, req.HeightM)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		err = p.room.AddFootprint(obstacle)
		observability.Placement().OnPlace(r.Context(), p.room.RoomID(), req.ID, err)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("obstacle placed", "room", p.room.RoomID(), "obstacle", req.ID)
		writeJSON(w, http.StatusCreated, footprintResponse{ID: obstacle.ID(), Tiles: obstacle.Tiles()})
		return nil
	})
}

func (s *Server) handleReposition(w http.ResponseWriter, r *http.Request) {
	footprintID := chi.URLParam(r, "footprintID")

	var req positionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	s.withRoom(w, r, func(p *planState) error {
		err := p.room.RepositionFootprint(footprintID, plan.Tile{X: req.X, Y: req.Y})
		observability.Placement().OnReposition(r.Context(), p.room.RoomID(), footprintID, err)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		f, _ := p.room.Footprint(footprintID)
		s.logger.Info("footprint moved", "room", p.room.RoomID(), "footprint", footprintID, "to", f.Origin())
		writeJSON(w, http.StatusOK, footprintResponse{ID: footprintID, Tiles: f.Tiles()})
		return nil
	})
}

func (s *Server) handleRemoveFootprint(w http.ResponseWriter, r *http.Request) {
	footprintID := chi.URLParam(r, "footprintID")

	s.withRoom(w, r, func(p *planState) error {
		err := p.room.RemoveFootprint(footprintID)
		observability.Placement().OnRemove(r.Context(), p.room.RoomID(), footprintID, err)
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("footprint removed", "room", p.room.RoomID(), "footprint", footprintID)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) handleOccupiedTiles(w http.ResponseWriter, r *http.Request) {
	s.withRoom(w, r, func(p *planState) error {
		writeJSON(w, http.StatusOK, map[string][]plan.Tile{"tiles": p.room.OccupiedTiles()})
		return nil
	})
}

func (s *Server) handleFreeTiles(w http.ResponseWriter, r *http.Request) {
	s.withRoom(w, r, func(p *planState) error {
		writeJSON(w, http.StatusOK, map[string][]plan.Tile{"tiles": p.room.FreeTiles()})
		return nil
	})
}

// handleProbeTile answers the hover query: is this tile free?
// Out-of-bounds coordinates report free=false rather than an error,
// matching the engine semantics.
func (s *Server) handleProbeTile(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "x and y query parameters must be integers"))
		return
	}

	s.withRoom(w, r, func(p *planState) error {
		tile := plan.Tile{X: x, Y: y}
		writeJSON(w, http.StatusOK, map[string]any{
			"tile": tile,
			"free": p.room.IsTileFree(tile),
		})
		return nil
	})
}
