package http

import (
	"errors"
	"net/http"

	"decoflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error to the response status. Errors of no known kind
// get fallback.
func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	}
	return fallback
}

// badRequest answers a request that could not be turned into a command.
func (s *Server) badRequest(c echo.Context, err error) error {
	return s.fail(c, err, http.StatusBadRequest)
}

// failed answers a use case error.
func (s *Server) failed(c echo.Context, err error) error {
	return s.fail(c, err, http.StatusInternalServerError)
}

func (s *Server) fail(c echo.Context, err error, fallback int) error {
	code := statusOf(err, fallback)
	body := Error{Code: code, Message: err.Error()}

	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		body.Details = validationErr.Errors
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		body.Message = http.StatusText(code)
	}
	return c.JSON(code, body)
}
