package server

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/matzehuels/rackroom/pkg/errors"
	"github.com/matzehuels/rackroom/pkg/observability"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a coded error to its HTTP status and writes the
// error envelope. Uncoded errors become 500 INTERNAL_ERROR.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, statusForCode(code), errorResponse{
		Error: errorBody{
			Code:    string(code),
			Message: apperrors.UserMessage(err),
		},
	})
}

// statusForCode maps error codes to HTTP status codes. Placement
// rejections are client errors: conflicts for occupancy, 422 for
// geometry the room cannot hold.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidConfig, apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case apperrors.ErrCodeOutOfBounds:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeOverlap, apperrors.ErrCodeDuplicateID:
		return http.StatusConflict
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeRoomNotFound, apperrors.ErrCodeFootprintNotFound,
		apperrors.ErrCodeSectionNotFound, apperrors.ErrCodeLadderNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeStore:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body into v, rejecting unknown
// fields so client typos surface as 400s instead of silent defaults.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs each request with its status and duration, and
// feeds the HTTP observability hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, rec.status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", elapsed.Round(time.Microsecond),
		)
	})
}
