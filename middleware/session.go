package middleware

import (
	"net/http"

	"github.com/Ahalya06/Eng-Scholar/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie is the name of the cookie carrying the opaque session
// token.
const SessionCookie = "session_token"

const loginRedirect = "/login?notice=Please+log+in+to+continue"

// NewSessionMiddleware returns the access gate applied to every
// protected route. Requests without a currently-valid session are sent
// back to the login page and the wrapped handler never runs. Valid
// requests get the session identity placed into the gin context as
// userEmail and displayName.
//
// This is the only authorization check in the system. Every
// authenticated identity has the same privileges.
func NewSessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, loginRedirect)
			c.Abort()
			return
		}

		s, ok, err := store.Get(c.Request.Context(), token)
		if err != nil {
			requestID := c.GetString("requestID")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up session", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !ok {
			// Unknown or expired token, make the client drop it
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, loginRedirect)
			c.Abort()
			return
		}

		c.Set("userEmail", s.Email)
		c.Set("displayName", s.DisplayName)
		c.Next()
	}
}
