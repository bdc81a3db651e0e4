package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Ahalya06/Eng-Scholar/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter(t *testing.T) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/protected", NewSessionMiddleware(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("userEmail"),
			"name":  c.GetString("displayName"),
		})
	})

	return r, store
}

func TestGateRedirectsWithoutCookie(t *testing.T) {
	r, _ := newGatedRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}

func TestGateRedirectsOnUnknownToken(t *testing.T) {
	r, _ := newGatedRouter(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
}

func TestGatePassesIdentityThrough(t *testing.T) {
	r, store := newGatedRouter(t)

	err := store.Create(context.Background(), "tok1", session.Session{
		Email:       "alice@college.edu",
		DisplayName: "Alice",
	}, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@college.edu")
	assert.Contains(t, w.Body.String(), "Alice")
}

func TestGateRedirectsOnExpiredSession(t *testing.T) {
	r, store := newGatedRouter(t)

	err := store.Create(context.Background(), "tok1", session.Session{
		Email: "alice@college.edu",
	}, 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
}
