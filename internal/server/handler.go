// Package server exposes a Solver over HTTP.
package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kedare/wordsmith/internal/api"
	"github.com/kedare/wordsmith/internal/logger"
	"github.com/kedare/wordsmith/internal/solver"
)

// maxBody bounds a solve request body.
const maxBody = 64 << 10

// Handler serves the solve and option endpoints.
type Handler struct {
	solver *solver.Solver
}

// New returns a handler backed by s.
func New(s *solver.Solver) *Handler {
	return &Handler{solver: s}
}

// Register mounts every endpoint on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/solve", h.handleSolve)
	mux.HandleFunc("/api/groups", h.handleGroups)
	mux.HandleFunc("/api/sorting", h.handleSorting)
	mux.HandleFunc("/api/score/", h.handleScore)
}

// Routes returns a mux with every endpoint mounted, wrapped in request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)

	return logRequests(mux)
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	codec := api.CodecForContentType(r.Header.Get("Content-Type"))

	if r.Method != http.MethodPost {
		writeError(w, codec, http.StatusMethodNotAllowed, "Method not allowed", nil)

		return
	}

	var req api.SolveRequest
	if err := codec.Decode(http.MaxBytesReader(w, r.Body, maxBody), &req); err != nil {
		logger.Log.Debugf("Rejecting undecodable solve body: %v", err)
		writeError(w, codec, http.StatusBadRequest, "Invalid request body", nil)

		return
	}

	resp, err := h.solver.Solve(r.Context(), req)
	if err != nil {
		writeFailure(w, codec, err)

		return
	}

	write(w, codec, http.StatusOK, resp)
}

func (h *Handler) handleGroups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, api.CodecJSON, http.StatusMethodNotAllowed, "Method not allowed", nil)

		return
	}

	write(w, negotiate(r), http.StatusOK, solver.GroupingOptions())
}

func (h *Handler) handleSorting(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, api.CodecJSON, http.StatusMethodNotAllowed, "Method not allowed", nil)

		return
	}

	write(w, negotiate(r), http.StatusOK, solver.SortingOptions())
}

func (h *Handler) handleScore(w http.ResponseWriter, r *http.Request) {
	codec := negotiate(r)

	if r.Method != http.MethodGet {
		writeError(w, codec, http.StatusMethodNotAllowed, "Method not allowed", nil)

		return
	}

	word := strings.TrimPrefix(r.URL.Path, "/api/score/")

	result, err := h.solver.WordScore(word)
	if err != nil {
		writeFailure(w, codec, err)

		return
	}

	write(w, codec, http.StatusOK, result)
}

// negotiate answers GET requests in msgpack only when the client asks for it.
func negotiate(r *http.Request) api.Codec {
	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		if api.CodecForContentType(strings.TrimSpace(accept)) == api.CodecMsgpack {
			return api.CodecMsgpack
		}
	}

	return api.CodecJSON
}

func writeFailure(w http.ResponseWriter, codec api.Codec, err error) {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		writeError(w, codec, apiErr.Status, apiErr.Message, apiErr.Details)

		return
	}

	logger.Log.Errorf("Solve failed: %v", err)
	writeError(w, codec, http.StatusInternalServerError, err.Error(), nil)
}

func writeError(w http.ResponseWriter, codec api.Codec, status int, msg string, details map[string]string) {
	write(w, codec, status, api.ErrorResponse{Error: msg, Details: details})
}

func write(w http.ResponseWriter, codec api.Codec, status int, v any) {
	w.Header().Set("Content-Type", codec.ContentType())
	w.WriteHeader(status)

	if err := codec.Encode(w, v); err != nil {
		logger.Log.Debugf("Failed to write response: %v", err)
	}
}
