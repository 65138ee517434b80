package session

import (
	"CorpSite/entity"
	"CorpSite/internal/lib/api/response"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type action func(ctx context.Context, id string) (*entity.SessionView, error)

func run(log *slog.Logger, name string, do action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := requestLogger(log, r).With(
			slog.String("session_id", id),
			slog.String("action", name),
		)

		view, err := do(r.Context(), id)
		if err != nil {
			renderError(w, r, logger, view, err)
			return
		}
		render.JSON(w, r, response.Ok(view))
	}
}

// Next advances the wizard; a failed advance is still 200 with
// "advanced": false and the field errors in the state.
func Next(log *slog.Logger, handler Core) http.HandlerFunc {
	return run(log, "next", handler.NextStep)
}

func Back(log *slog.Logger, handler Core) http.HandlerFunc {
	return run(log, "back", handler.PreviousStep)
}

func Submit(log *slog.Logger, handler Core) http.HandlerFunc {
	return run(log, "submit", handler.SubmitSession)
}

func Reset(log *slog.Logger, handler Core) http.HandlerFunc {
	return run(log, "reset", handler.ResetSession)
}
