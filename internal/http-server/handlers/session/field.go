package session

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/lib/validate"
	"CorpSite/internal/wizard"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const maxBodyBytes = 64 << 10

type FieldRequest struct {
	Name  string       `json:"name" validate:"required"`
	Value wizard.Value `json:"value"`
}

// SetField stores one field value.
func SetField(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		logger := requestLogger(log, r).With(slog.String("session_id", id))

		var req FieldRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			logger.Debug("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			logger.Debug("invalid field request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Field name is required"))
			return
		}

		view, err := handler.SetField(r.Context(), id, req.Name, req.Value)
		if err != nil {
			renderError(w, r, logger.With(slog.String("field", req.Name)), view, err)
			return
		}
		render.JSON(w, r, response.Ok(view))
	}
}
