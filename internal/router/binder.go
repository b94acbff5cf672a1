package router

import (
	"mime"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/middleware"
)

// binder extends echo's default binding to decode merge-patch bodies, which
// the default binder refuses because the media type is not application/json.
type binder struct {
	echo.DefaultBinder
}

func (b *binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err == nil && mediaType == middleware.MIMEMergePatchJSON {
		// A merge-patch document is plain JSON; rewrite the header so the
		// default binder decodes it.
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return b.DefaultBinder.Bind(i, c)
}
