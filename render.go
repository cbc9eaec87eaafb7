package diary

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// page renders body inside the document shell.
func (a *App) page(c echo.Context, code int, meta views.PageMeta, body templ.Component) error {
	if meta.URL == "" {
		meta.URL = a.Site.AbsoluteURL(c.Request().URL.Path)
	}
	doc := a.Shell.Document(views.DocumentProps{
		Site:        a.Site,
		Meta:        meta,
		Body:        body,
		Stylesheets: a.stylesheets,
	})
	return RenderStatus(c, code, doc)
}
