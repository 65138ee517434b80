package contact

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const maxBodyBytes = 64 << 10

// Submit accepts any JSON object, hands it to the inbox and answers with a
// canned acknowledgement.
func Submit(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.contact")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var payload map[string]any
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&payload)
		if err != nil || payload == nil {
			if err != nil {
				logger = logger.With(sl.Err(err))
			}
			logger.Debug("invalid contact body")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		id, err := handler.ReceiveContact(r.Context(), payload)
		if err != nil {
			logger.Error("receive contact", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("Submission failed"))
			return
		}
		logger.With(slog.String("id", id)).Debug("contact received")

		render.JSON(w, r, response.Message("Form submitted successfully"))
	}
}
