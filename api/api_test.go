package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Ahalya06/Eng-Scholar/internal/session"
	"github.com/Ahalya06/Eng-Scholar/internal/storage"
	"github.com/Ahalya06/Eng-Scholar/middleware"
	"github.com/Ahalya06/Eng-Scholar/model"
	"github.com/Ahalya06/Eng-Scholar/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestAPI builds an API over a throwaway sqlite database, a
// temp-dir blob store and an in-memory session store, with the same
// routes mounted as in production.
func newTestAPI(t *testing.T) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(model.User{}, model.Note{}, model.Comment{}))

	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	sessions := session.NewMemoryStore()
	t.Cleanup(func() { _ = sessions.Close() })

	a := &API{
		DB:       database,
		Router:   gin.New(),
		Argon:    security.New(),
		Sessions: sessions,
		Blobs:    blobs,
	}

	a.Router.Use(middleware.NewRequestIDMiddleware())
	a.mountRoutes()

	return a
}

func doJSON(t *testing.T, a *API, method, path string, body map[string]string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func doGET(t *testing.T, a *API, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, a *API, name, email, password string) {
	t.Helper()

	w := doJSON(t, a, "POST", "/register", map[string]string{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "register failed: %s", w.Body.String())
}

func login(t *testing.T, a *API, email, password string) *http.Cookie {
	t.Helper()

	w := doJSON(t, a, "POST", "/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return c
		}
	}

	t.Fatal("no session cookie in login response")
	return nil
}

func uploadNote(t *testing.T, a *API, cookie *http.Cookie, branch, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	require.NoError(t, mw.WriteField("branch", branch))

	fw, err := mw.CreateFormFile("note_file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/notes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func errorField(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
