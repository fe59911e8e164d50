package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/kasuboski/dvrdispatch/pkg/dispatch"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// Server exposes the manager over http
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.Manager
}

// New creates a new dispatch server
func New(logger *zap.SugaredLogger, manager *manager.Manager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Router builds the routes served by the api
func (s Server) Router() http.Handler {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/dispatch", s.Dispatch()).Methods(http.MethodPost)

	v1.HandleFunc("/faults", s.ListFaults()).Methods(http.MethodGet)
	v1.HandleFunc("/faults/stats", s.FaultStats()).Methods(http.MethodGet)
	v1.HandleFunc("/faults/retry", s.RetryFaults()).Methods(http.MethodPost)
	v1.HandleFunc("/faults/{requestID}/retry", s.RetryFault()).Methods(http.MethodPost)

	v1.HandleFunc("/users/{user}/profile", s.GetUserProfile()).Methods(http.MethodGet)
	v1.HandleFunc("/users/{user}/profile", s.SetUserProfile()).Methods(http.MethodPut)

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(rtr)
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Infow("serving...", "port", port)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Dispatch sends an approved request to the DVRs.
// Failures are part of the result and are already in the fault queue when it is returned.
func (s Server) Dispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		b, err := io.ReadAll(r.Body)
		if err != nil {
			log.Debug("invalid request body", zap.Error(err))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var request dispatch.ShowRequest
		err = json.Unmarshal(b, &request)
		if err != nil {
			log.Debug("invalid request body", zap.ByteString("body", b))
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		result := s.manager.Dispatch(r.Context(), request)
		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ListFaults pages through fault queue entries, optionally filtered by ?state=
func (s Server) ListFaults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		state := storage.FaultState(r.URL.Query().Get("state"))

		params, err := parsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		page, err := s.manager.ListFaults(r.Context(), state, params)
		if errors.Is(err, manager.ErrInvalidState) {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		if err != nil {
			log.Error("failed to list faults", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: page})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// FaultStats counts fault queue entries per state
func (s Server) FaultStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		stats, err := s.manager.FaultStats(r.Context())
		if err != nil {
			log.Error("failed to get fault stats", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: stats})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) RetryFaults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		summary, err := s.manager.RetryFaults(r.Context())
		if errors.Is(err, manager.ErrRetryInProgress) {
			writeErrorResponse(w, http.StatusConflict, err)
			return
		}
		if err != nil {
			log.Error("failed to retry faults", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: summary})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) RetryFault() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		requestID, err := strconv.ParseInt(mux.Vars(r)["requestID"], 10, 64)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request id: %w", err))
			return
		}

		result, err := s.manager.RetryFault(r.Context(), requestID)
		switch {
		case manager.IsNotFound(err):
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		case errors.Is(err, manager.ErrFaultCompleted):
			writeErrorResponse(w, http.StatusConflict, err)
			return
		case err != nil:
			log.Error("failed to retry fault", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: result})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) GetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		profile, err := s.manager.GetUserProfile(r.Context(), mux.Vars(r)["user"])
		if manager.IsNotFound(err) {
			writeErrorResponse(w, http.StatusNotFound, err)
			return
		}
		if err != nil {
			log.Error("failed to get user profile", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: profile})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// SetUserProfile stores the overrides for the user in the path
func (s Server) SetUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var profile manager.UserProfile
		err := json.NewDecoder(r.Body).Decode(&profile)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
		profile.UserID = mux.Vars(r)["user"]

		profile, err = s.manager.SetUserProfile(r.Context(), profile)
		if err != nil {
			log.Debug("failed to set user profile", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: profile})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
