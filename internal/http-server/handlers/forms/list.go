package forms

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/wizard"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Summary is a form listed without its fields.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Steps int    `json:"steps"`
}

func List(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		forms := handler.Forms()
		list := make([]Summary, 0, len(forms))
		for _, f := range forms {
			list = append(list, Summary{ID: f.ID, Title: f.Title, Steps: f.StepCount()})
		}
		render.JSON(w, r, response.Ok(list))
	}
}

// Get returns the full definition the browser renders the wizard from.
func Get(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "form")
		logger := log.With(
			sl.Module("http.handlers.forms"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("form_id", id),
		)

		form, err := handler.Form(id)
		if err != nil {
			if errors.Is(err, wizard.ErrFormNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Form not found"))
				return
			}
			logger.Error("get form", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Forms not available"))
			return
		}
		render.JSON(w, r, response.Ok(form))
	}
}
