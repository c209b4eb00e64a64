package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "github.com/matzehuels/rackroom/pkg/errors"
	"github.com/matzehuels/rackroom/pkg/ladder"
)

type createLadderRequest struct {
	ID string `json:"id"`
}

type addSectionRequest struct {
	ID          string  `json:"id"`
	X           float64 `json:"x_m"`
	Y           float64 `json:"y_m"`
	Length      float64 `json:"length_m"`
	Orientation string  `json:"orientation"`
	BendDegree  float64 `json:"bend_degree"`
	WidthCm     float64 `json:"width_cm"`
	Material    string  `json:"material"`
}

// ladderResponse reports a ladder mutation with the new total length,
// which clients display live while drafting.
type ladderResponse struct {
	ID          string  `json:"id"`
	Sections    int     `json:"sections"`
	TotalLength float64 `json:"total_length_m"`
}

func ladderStatus(l *ladder.Ladder) ladderResponse {
	return ladderResponse{
		ID:          l.ID(),
		Sections:    l.Len(),
		TotalLength: l.TotalLength(),
	}
}

func (s *Server) handleCreateLadder(w http.ResponseWriter, r *http.Request) {
	var req createLadderRequest
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
		if p.findLadder(req.ID) != nil {
			return apperrors.New(apperrors.ErrCodeDuplicateID, "ladder %s already exists", req.ID)
		}

		l, err := ladder.NewLadder(req.ID)
		if err != nil {
			return apperrors.FromPlacement(err)
		}
		p.ladders = append(p.ladders, l)

		s.logger.Info("ladder created", "room", p.room.RoomID(), "ladder", req.ID)
		writeJSON(w, http.StatusCreated, ladderStatus(l))
		return nil
	})
}

func (s *Server) handleDeleteLadder(w http.ResponseWriter, r *http.Request) {
	ladderID := chi.URLParam(r, "ladderID")

	s.withRoom(w, r, func(p *planState) error {
		if !p.removeLadder(ladderID) {
			return apperrors.New(apperrors.ErrCodeLadderNotFound, "ladder %s not found", ladderID)
		}
		s.logger.Info("ladder deleted", "room", p.room.RoomID(), "ladder", ladderID)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	ladderID := chi.URLParam(r, "ladderID")

	var req addSectionRequest
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
		l := p.findLadder(ladderID)
		if l == nil {
			return apperrors.New(apperrors.ErrCodeLadderNotFound, "ladder %s not found", ladderID)
		}

		opts := []ladder.SectionOption{}
		if req.BendDegree != 0 {
			opts = append(opts, ladder.WithBend(req.BendDegree))
		}
		if req.WidthCm > 0 {
			opts = append(opts, ladder.WithWidth(req.WidthCm))
		}
		if req.Material != "" {
			opts = append(opts, ladder.WithMaterial(req.Material))
		}

		sec, err := ladder.NewSection(req.ID, req.X, req.Y, req.Length, ladder.Orientation(req.Orientation), opts...)
		if err != nil {
			return apperrors.FromPlacement(err)
		}
		if err := l.AddSection(sec); err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("section added", "room", p.room.RoomID(), "ladder", ladderID, "section", req.ID, "length", req.Length)
		writeJSON(w, http.StatusCreated, ladderStatus(l))
		return nil
	})
}

func (s *Server) handleRemoveLastSection(w http.ResponseWriter, r *http.Request) {
	ladderID := chi.URLParam(r, "ladderID")

	s.withRoom(w, r, func(p *planState) error {
		l := p.findLadder(ladderID)
		if l == nil {
			return apperrors.New(apperrors.ErrCodeLadderNotFound, "ladder %s not found", ladderID)
		}

		sec, err := l.RemoveLastSection()
		if err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("section removed", "room", p.room.RoomID(), "ladder", ladderID, "section", sec.ID())
		writeJSON(w, http.StatusOK, ladderStatus(l))
		return nil
	})
}

func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	ladderID := chi.URLParam(r, "ladderID")
	sectionID := chi.URLParam(r, "sectionID")

	s.withRoom(w, r, func(p *planState) error {
		l := p.findLadder(ladderID)
		if l == nil {
			return apperrors.New(apperrors.ErrCodeLadderNotFound, "ladder %s not found", ladderID)
		}

		if err := l.RemoveSection(sectionID); err != nil {
			return apperrors.FromPlacement(err)
		}

		s.logger.Info("section removed", "room", p.room.RoomID(), "ladder", ladderID, "section", sectionID)
		writeJSON(w, http.StatusOK, ladderStatus(l))
		return nil
	})
}
