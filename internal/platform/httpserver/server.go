package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	scoreregistry "tally/contexts/scoring/score-registry"
	registryerrors "tally/contexts/scoring/score-registry/domain/errors"
	"tally/contexts/scoring/score-registry/domain/identity"
	registryhttp "tally/contexts/scoring/score-registry/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "tally/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	registry scoreregistry.Module
}

func New(registry scoreregistry.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		registry: registry,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing table, for tests driving the server in-process.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/registry/instantiate", s.handleInstantiate)
	s.mux.HandleFunc("POST /v1/registry/scores", s.handleUpdateScore)
	s.mux.HandleFunc("GET /v1/registry/owner", s.handleGetOwner)
	s.mux.HandleFunc("GET /v1/registry/scores/{user}", s.handleGetScore)
	s.mux.HandleFunc("GET /v1/registry/scores", s.handleListScores)
	s.mux.HandleFunc("GET /v1/registry/info", s.handleGetInfo)
}

func (s *Server) handleInstantiate(w http.ResponseWriter, r *http.Request) {
	caller, ok := resolveCaller(w, r)
	if !ok {
		return
	}

	// The instantiate payload has no recognized fields; an empty body and an
	// empty object are both accepted.
	var req registryhttp.InstantiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.InstantiateHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateScore(w http.ResponseWriter, r *http.Request) {
	caller, ok := resolveCaller(w, r)
	if !ok {
		return
	}

	var req registryhttp.UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRegistryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.registry.Handler.UpdateScoreHandler(r.Context(), caller, req)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOwner(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetOwnerHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	resp, err := s.registry.Handler.GetScoreHandler(r.Context(), user)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeRegistryError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}
	offset := 0
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeRegistryError(w, http.StatusBadRequest, "invalid_offset", "offset must be an integer")
			return
		}
		offset = parsed
	}

	resp, err := s.registry.Handler.ListScoresHandler(r.Context(), limit, offset)
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetInfo(w http.ResponseWriter, r *http.Request) {
	resp, err := s.registry.Handler.GetInfoHandler(r.Context())
	if err != nil {
		writeRegistryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolveCaller extracts the host-authenticated identity. Host verification
// already happened upstream; an absent header means there is no caller to
// authorize against.
func resolveCaller(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	caller := identity.New(strings.TrimSpace(r.Header.Get("X-User-Id")))
	if caller.IsZero() {
		writeRegistryError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return identity.Identity{}, false
	}
	return caller, true
}

func writeRegistryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registryerrors.ErrUnauthorized):
		writeRegistryError(w, http.StatusForbidden, "unauthorized", err.Error())
	case errors.Is(err, registryerrors.ErrUninitialized):
		writeRegistryError(w, http.StatusConflict, "uninitialized", err.Error())
	case errors.Is(err, registryerrors.ErrAlreadyInitialized):
		writeRegistryError(w, http.StatusConflict, "already_initialized", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidIdentity):
		writeRegistryError(w, http.StatusBadRequest, "invalid_identity", err.Error())
	case errors.Is(err, registryerrors.ErrInvalidListQuery):
		writeRegistryError(w, http.StatusBadRequest, "invalid_list_query", err.Error())
	default:
		writeRegistryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRegistryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, registryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
