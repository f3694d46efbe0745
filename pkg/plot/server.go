package plot

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/raykavin/launchboard/pkg/logger"
)

// HTTPServer defines the routing surface the Dashboard registers itself on
type HTTPServer interface {
	// Handle registers a handler for method and pattern
	Handle(method, pattern string, handler http.HandlerFunc)

	// HandleStatic serves files below prefix
	HandleStatic(prefix string, fs http.FileSystem)

	// Handler returns the composed http.Handler
	Handler() http.Handler
}

// ChiServer implements HTTPServer on a chi router
type ChiServer struct {
	router *chi.Mux
}

// NewChiServer creates a router with request id, panic recovery and request logging
func NewChiServer(log logger.Logger) *ChiServer {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(log))

	return &ChiServer{router: router}
}

// Handle registers a handler for method and pattern
func (s *ChiServer) Handle(method, pattern string, handler http.HandlerFunc) {
	s.router.Method(method, pattern, handler)
}

// HandleStatic serves files below prefix
func (s *ChiServer) HandleStatic(prefix string, fs http.FileSystem) {
	s.router.Handle(prefix+"*", http.FileServer(fs))
}

// Handler returns the composed http.Handler
func (s *ChiServer) Handler() http.Handler {
	return s.router
}

// requestLogger logs every request at debug level with its status and latency
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.WithFields(map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"bytes":      ww.BytesWritten(),
				"latency":    time.Since(start).String(),
				"request_id": middleware.GetReqID(r.Context()),
			}).Debug("request")
		})
	}
}
