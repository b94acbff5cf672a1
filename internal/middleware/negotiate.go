package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "taskdeck/internal/errors"
)

// MIMEMergePatchJSON is accepted on PATCH alongside the standard body types.
const MIMEMergePatchJSON = "application/merge-patch+json"

var supportedContentTypes = []string{
	echo.MIMEApplicationJSON,
	echo.MIMEApplicationForm,
	MIMEMergePatchJSON,
}

// ContentType rejects request bodies with an unsupported Content-Type header
// with 415. Methods without bodies, and empty bodies, skip the check.
func ContentType() echo.MiddlewareFunc {
	supported := "Supported Content-Types: " + strings.Join(supportedContentTypes, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				return next(c)
			}
			if req.ContentLength == 0 {
				return next(c)
			}

			header := req.Header.Get(echo.HeaderContentType)
			if header == "" {
				return apperrors.UnsupportedMediaType(supported)
			}

			mediaType, _, err := mime.ParseMediaType(header)
			if err != nil {
				return apperrors.UnsupportedMediaType(supported)
			}
			for _, allowed := range supportedContentTypes {
				if mediaType == allowed {
					return next(c)
				}
			}
			return apperrors.UnsupportedMediaType(supported)
		}
	}
}

// Accept rejects requests that cannot accept a JSON response with 406. An
// absent Accept header means the client takes anything.
func Accept() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAccept)
			if header == "" {
				return next(c)
			}
			for _, part := range strings.Split(header, ",") {
				mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
				if err != nil {
					continue
				}
				switch mediaType {
				case echo.MIMEApplicationJSON, "application/*", "*/*":
					return next(c)
				}
			}
			return apperrors.NotAcceptable("Supported MIME types: " + echo.MIMEApplicationJSON)
		}
	}
}
