package site

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func Countdown(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := handler.Countdown()
		if err != nil {
			log.With(sl.Module("http.handlers.site")).Debug("countdown", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("No upcoming bootcamp"))
			return
		}
		render.JSON(w, r, response.Ok(parts))
	}
}
