package faq

import (
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const maxPerPage = 50

// Search answers ?q=&category=&page=&per_page=. Bad numbers fall back to
// the defaults instead of failing.
func Search(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.faq")
		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := r.URL.Query()
		page := intParam(query.Get("page"), 1)
		perPage := intParam(query.Get("per_page"), 10)
		if perPage > maxPerPage {
			perPage = maxPerPage
		}

		result, err := handler.SearchFaq(query.Get("q"), query.Get("category"), page, perPage)
		if err != nil {
			logger.Error("faq search", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("FAQ not available"))
			return
		}
		logger.With(
			slog.String("q", query.Get("q")),
			slog.Int("found", result.Pagination.TotalItems),
		).Debug("faq search")

		render.JSON(w, r, response.Ok(result))
	}
}

func Categories(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := handler.FaqCategories()
		if err != nil {
			log.With(sl.Module("http.handlers.faq")).Error("faq categories", sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("FAQ not available"))
			return
		}
		render.JSON(w, r, response.Ok(categories))
	}
}

func intParam(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
