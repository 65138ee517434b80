package session

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func requestLogger(log *slog.Logger, r *http.Request) *slog.Logger {
	return log.With(
		sl.Module("http.handlers.session"),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// Start opens a wizard session for the form named in the path.
func Start(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formID := chi.URLParam(r, "form")
		logger := requestLogger(log, r).With(slog.String("form_id", formID))

		view, err := handler.StartSession(r.Context(), formID)
		if err != nil {
			renderError(w, r, logger, nil, err)
			return
		}
		logger.With(slog.String("session_id", view.ID)).Debug("session started")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(view))
	}
}

func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := requestLogger(log, r).With(slog.String("session_id", id))

		view, err := handler.SessionState(r.Context(), id)
		if err != nil {
			renderError(w, r, logger, nil, err)
			return
		}
		render.JSON(w, r, response.Ok(view))
	}
}

// Discard abandons a session.
func Discard(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := requestLogger(log, r).With(slog.String("session_id", id))

		if err := handler.DiscardSession(r.Context(), id); err != nil {
			renderError(w, r, logger, nil, err)
			return
		}
		render.JSON(w, r, response.Message("Session discarded"))
	}
}
