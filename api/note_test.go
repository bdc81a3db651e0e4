package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Ahalya06/Eng-Scholar/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteCount(t *testing.T, a *API) int64 {
	t.Helper()

	var count int64
	require.NoError(t, a.DB.Model(model.Note{}).Count(&count).Error)
	return count
}

func listBranches(t *testing.T, a *API, cookie *http.Cookie) map[string][]noteEntry {
	t.Helper()

	w := doGET(t, a, "/view-notes", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Branches map[string][]noteEntry `json:"branches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Branches
}

func TestNoteUploadListDownload(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	w := uploadNote(t, a, cookie, "CSE", "notes1.pdf", "pipelining lecture")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	branches := listBranches(t, a, cookie)
	require.Contains(t, branches, "CSE")
	require.Len(t, branches["CSE"], 1)
	assert.Equal(t, "notes1.pdf", branches["CSE"][0].Filename)
	assert.Equal(t, "alice@college.edu", branches["CSE"][0].UploaderEmail)

	w = doGET(t, a, "/uploads/CSE/notes1.pdf", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pipelining lecture", w.Body.String())
}

func TestNoteBranchIsolation(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	require.Equal(t, http.StatusOK, uploadNote(t, a, cookie, "CSE", "cse.pdf", "cse bytes").Code)
	require.Equal(t, http.StatusOK, uploadNote(t, a, cookie, "ECE", "ece.pdf", "ece bytes").Code)

	branches := listBranches(t, a, cookie)
	require.Len(t, branches, 2)

	require.Len(t, branches["CSE"], 1)
	assert.Equal(t, "cse.pdf", branches["CSE"][0].Filename)

	require.Len(t, branches["ECE"], 1)
	assert.Equal(t, "ece.pdf", branches["ECE"][0].Filename)
}

func TestNoteReuploadOverwritesBlobKeepsRows(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	require.Equal(t, http.StatusOK, uploadNote(t, a, cookie, "CSE", "notes1.pdf", "first version").Code)
	require.Equal(t, http.StatusOK, uploadNote(t, a, cookie, "CSE", "notes1.pdf", "second version").Code)

	// Last writer wins at the blob
	w := doGET(t, a, "/uploads/CSE/notes1.pdf", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "second version", w.Body.String())

	// Metadata is append-only, both rows remain
	assert.EqualValues(t, 2, noteCount(t, a))
	assert.Len(t, listBranches(t, a, cookie)["CSE"], 2)
}

func TestNoteUploadValidation(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	tests := []struct {
		name     string
		branch   string
		filename string
	}{
		{"empty branch", "", "notes1.pdf"},
		{"traversal branch", "../outside", "notes1.pdf"},
		{"traversal filename", "CSE", "../../etc/passwd"},
		{"dotdot filename", "CSE", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := uploadNote(t, a, cookie, tt.branch, tt.filename, "payload")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	assert.Zero(t, noteCount(t, a), "rejected uploads must not create note records")
}

func TestNoteUploadRequiresSession(t *testing.T) {
	a := newTestAPI(t)

	w := uploadNote(t, a, nil, "CSE", "notes1.pdf", "payload")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login")
	assert.Zero(t, noteCount(t, a), "gated upload must have no side effects")
}

func TestNoteDownloadMissingBlob(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	w := doGET(t, a, "/uploads/CSE/missing.pdf", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteDownloadRejectsTraversal(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	w := doGET(t, a, "/uploads/%2e%2e/database.db", cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteListEmpty(t *testing.T) {
	a := newTestAPI(t)

	register(t, a, "Alice", "alice@college.edu", "password123")
	cookie := login(t, a, "alice@college.edu", "password123")

	assert.Empty(t, listBranches(t, a, cookie))
}
