package api

import (
	"net/http"

	"github.com/Ahalya06/Eng-Scholar/middleware"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// UserLogout destroys the caller's session. Always ends up at the
// login page, even when the session was already gone.
func (a *API) UserLogout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil && token != "" {
		if err := a.Sessions.Delete(c.Request.Context(), token); err != nil {
			// Best effort, the cookie is cleared either way
			zap.L().Error("Failed to delete session", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", viper.GetBool("host.ssl.enabled"), true)
	c.Redirect(http.StatusSeeOther, "/login?notice=You+have+been+logged+out")
}
