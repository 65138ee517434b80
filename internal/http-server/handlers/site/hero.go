package site

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Hero reports which clip is on screen so a page loaded mid-cycle can join
// the cross-fade in step.
func Hero(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := handler.HeroState()
		if err != nil {
			log.With(sl.Module("http.handlers.site")).Warn("hero state", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("Hero schedule not available"))
			return
		}
		render.JSON(w, r, response.Ok(st))
	}
}
