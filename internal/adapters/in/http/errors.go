package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ordermanagement/internal/generated/servers"
	"ordermanagement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor is the single place where domain errors become HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidReference),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Joined validation errors are listed in
// details one per line; InvalidReference lists the missing ids.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	body := servers.Error{Code: code, Message: err.Error()}

	if lines := strings.Split(err.Error(), "\n"); len(lines) > 1 {
		body.Message = "request is invalid"
		body.Details = &lines
	}

	var ref *errs.InvalidReferenceError
	if errors.As(err, &ref) {
		ids := append([]string(nil), ref.IDs...)
		body.Details = &ids
	}

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = http.StatusText(code)
		body.Details = nil
	}

	return ctx.JSON(code, body)
}

func (s *Server) invalidBody(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("invalid request body: %v", err),
	})
}

// ErrorHandler renders errors that escape handlers (unknown routes, rate
// limiting, parameter binding) with the same Error body as handled failures.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			message = fmt.Sprint(he.Message)
		} else {
			logger.ErrorContext(c.Request().Context(), "unhandled error",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}
