package api

import (
	"CorpSite/internal/config"
	"CorpSite/internal/http-server/handlers/contact"
	"CorpSite/internal/http-server/handlers/errors"
	"CorpSite/internal/http-server/handlers/faq"
	"CorpSite/internal/http-server/handlers/forms"
	"CorpSite/internal/http-server/handlers/session"
	"CorpSite/internal/http-server/handlers/site"
	"CorpSite/internal/http-server/middleware/requestlog"
	"CorpSite/internal/http-server/middleware/timeout"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/ws"
	"context"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net"
	"net/http"
	"time"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	contact.Core
	session.Core
	forms.Core
	faq.Core
	site.Core
}

// NewRouter builds the routes. hub and metrics may be nil, then /ws and
// /metrics are not served.
func NewRouter(log *slog.Logger, handler Handler, hub *ws.Hub, metrics http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestlog.New(log))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	if hub != nil {
		// no content type or timeout for the upgraded connection
		router.Get("/ws", ws.ServeWs(hub, log))
	}
	if metrics != nil {
		router.Method(http.MethodGet, "/metrics", metrics)
	}

	router.Group(func(r chi.Router) {
		r.Use(timeout.Timeout(30))
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Post("/api/contact", contact.Submit(log, handler))

		r.Route("/api/v1", func(v1 chi.Router) {
			v1.Route("/forms", func(r chi.Router) {
				r.Get("/", forms.List(log, handler))
				r.Get("/{form}", forms.Get(log, handler))
				r.Post("/{form}/sessions", session.Start(log, handler))
			})
			v1.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", session.Get(log, handler))
				r.Delete("/", session.Discard(log, handler))
				r.Put("/fields", session.SetField(log, handler))
				r.Post("/next", session.Next(log, handler))
				r.Post("/back", session.Back(log, handler))
				r.Post("/submit", session.Submit(log, handler))
				r.Post("/reset", session.Reset(log, handler))
			})
			v1.Route("/faq", func(r chi.Router) {
				r.Get("/", faq.Search(log, handler))
				r.Get("/categories", faq.Categories(log, handler))
			})
			v1.Get("/bootcamp/countdown", site.Countdown(log, handler))
			v1.Get("/hero", site.Hero(log, handler))
		})
	})

	return router
}

// New serves until ctx ends or the listener fails.
func New(ctx context.Context, conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub, metrics http.Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(log, handler, hub, metrics),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.httpServer.Shutdown(shutdownCtx)
	}()

	err = server.httpServer.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
