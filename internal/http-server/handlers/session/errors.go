package session

import (
	"CorpSite/entity"
	"CorpSite/internal/lib/api/response"
	"CorpSite/internal/lib/sl"
	"CorpSite/internal/wizard"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// renderError maps wizard errors to HTTP statuses. The view, when present,
// goes out with the error so the page can show field messages.
func renderError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, view *entity.SessionView, err error) {
	var validation *wizard.ValidationError
	var submission *wizard.SubmissionError

	status := http.StatusInternalServerError
	message := "Internal error"

	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		status, message = http.StatusNotFound, "Session not found"
	case errors.Is(err, wizard.ErrFormNotFound):
		status, message = http.StatusNotFound, "Form not found"
	case errors.Is(err, wizard.ErrUnknownField):
		status, message = http.StatusBadRequest, "Unknown field"
	case errors.As(err, &validation):
		status, message = http.StatusUnprocessableEntity, "Please correct the highlighted fields"
	case errors.Is(err, wizard.ErrSubmitInFlight):
		status, message = http.StatusConflict, "Submission already in progress"
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		status, message = http.StatusConflict, "Form already submitted"
	case errors.Is(err, wizard.ErrNotFinalStep):
		status, message = http.StatusConflict, "Form is not on its final step"
	case errors.As(err, &submission):
		status, message = http.StatusBadGateway, "Submission failed, please try again"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, sl.Err(err))
	} else {
		logger.Debug(message, sl.Err(err))
	}

	render.Status(r, status)
	if view != nil {
		render.JSON(w, r, response.Fail(message, view))
		return
	}
	render.JSON(w, r, response.Error(message))
}
