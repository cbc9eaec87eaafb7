package diary

import (
	"crypto/subtle"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/zenshop/diary/views"
)

var adminMeta = views.PageMeta{Title: "Admin"}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return a.page(c, http.StatusOK, adminMeta, a.Views.AdminLogin(a.Site, false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		a.loginLimiter.Reset(ip)
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Warnf("failed admin login from %s", ip)
	return a.page(c, http.StatusUnauthorized, adminMeta, a.Views.AdminLogin(a.Site, true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminReindex(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	msg := "Reindexed."
	if err := a.Indexer.Reindex(c.Request().Context()); err != nil {
		msg = "Reindex failed, previous index kept."
	}
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListPosts("")
	if err != nil {
		return err
	}
	st := a.Indexer.Status()
	status := views.AdminStatus{
		Posts:       st.Posts,
		Tags:        st.Tags,
		LastIndexed: st.At,
	}
	if st.Err != nil {
		status.LastError = st.Err.Error()
	}
	return a.page(c, http.StatusOK, adminMeta, a.Views.AdminDashboard(a.Site, posts, status, msg, CsrfToken(c)))
}
