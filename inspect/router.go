package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Router serves r read-only. Write errors are logged on log; a nil log
// discards them.
func Router(r Report, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Warn("write error", zap.Error(err))
		}
	})
	mux.Get("/report", serveJSON(log, r))
	mux.Get("/bindings", serveJSON(log, r.Bindings))
	mux.Get("/multibindings", serveJSON(log, r.Multibindings))
	mux.Get("/compressions", serveJSON(log, r.Compressions))
	mux.Get("/allocator", serveJSON(log, r.Allocator))
	mux.Get("/order", serveJSON(log, r.Order))

	return mux
}

func serveJSON(log *zap.Logger, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Warn("write error", zap.String("path", req.URL.Path), zap.Error(err))
		}
	}
}
