package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
)

var statusNames = map[int]string{
	http.StatusBadRequest:           "Bad request",
	http.StatusUnauthorized:         "Unauthorized",
	http.StatusForbidden:            "Forbidden",
	http.StatusNotFound:             "Not found",
	http.StatusMethodNotAllowed:     "Method not allowed",
	http.StatusNotAcceptable:        "Not acceptable",
	http.StatusConflict:             "Conflict",
	http.StatusUnsupportedMediaType: "Unsupported media type",
}

// ErrorHandler is the terminal error responder: the single place where any
// failure becomes the uniform JSON envelope. An AppError passes through
// unchanged; an echo.HTTPError (router-level failures) is translated; any
// other error renders a generic 500 without leaking internals.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeEnvelope(c, appErr)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		name, ok := statusNames[httpErr.Code]
		if !ok {
			name = http.StatusText(httpErr.Code)
		}
		writeEnvelope(c, apperrors.New(name, httpErr.Code, fmt.Sprintf("%v", httpErr.Message)))
		return
	}

	c.Logger().Error(err)
	writeEnvelope(c, apperrors.Internal("An unexpected error occurred"))
}

func writeEnvelope(c echo.Context, appErr *apperrors.AppError) {
	for k, v := range appErr.Headers {
		c.Response().Header().Set(k, v)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(appErr.StatusCode)
		return
	}
	_ = c.JSON(appErr.StatusCode, appErr.Response())
}
