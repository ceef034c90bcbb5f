package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matzehuels/crossnames/pkg/buildinfo"
	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	"github.com/matzehuels/crossnames/pkg/layout"
)

type generateRequest struct {
	Names []string `json:"names"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// POST /generate
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "request body must be JSON like {\"names\": [...]}"))
		return
	}

	words := cerrors.NormalizeWords(req.Names)
	s.logger.Info("received names", "names", words, "id", RequestIDFrom(r.Context()))

	result, err := s.runner.Generate(r.Context(), words, s.opts.Generate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info("generated layouts",
		"layouts", len(result.Layouts),
		"cached", result.CacheHit,
		"id", RequestIDFrom(r.Context()))

	layouts := result.Layouts
	if layouts == nil {
		layouts = []layout.Layout{}
	}
	writeJSON(w, http.StatusOK, layouts)
}

// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var rl *cerrors.RateLimitedError
	switch {
	case errors.As(err, &rl):
		return http.StatusTooManyRequests
	case cerrors.IsInputError(err):
		return http.StatusBadRequest
	case cerrors.Is(err, cerrors.ErrCodeRateLimited):
		return http.StatusTooManyRequests
	case cerrors.Is(err, cerrors.ErrCodeTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := cerrors.UserMessage(err)

	switch status {
	case http.StatusTooManyRequests:
		msg = "Too many requests, try again later."
	case http.StatusInternalServerError:
		s.logger.Error("generate failed", "error", err, "id", RequestIDFrom(r.Context()))
		msg = "Internal server error."
	default:
		s.logger.Debug("request rejected", "code", cerrors.GetCode(err), "error", err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
