package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-Id"

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogMiddleware puts a logger tagged with the request id on the request context.
// A caller supplied id is kept when it is a uuid so a dispatch can be traced from the requesting app.
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(requestIDHeader))
			if err != nil {
				id = uuid.New()
			}

			log := s.baseLogger.With(zap.String("request_path", r.URL.Path), zap.String("id", id.String()))
			w.Header().Set(requestIDHeader, id.String())

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			h.ServeHTTP(rec, r.WithContext(logger.WithCtx(r.Context(), log)))

			log.Debugw("handled request", "method", r.Method, "status", rec.status, "duration", time.Since(start))
		})
	}
}
