package api

import (
	"net/http"
	"time"

	"github.com/Ahalya06/Eng-Scholar/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type noteEntry struct {
	Filename      string    `json:"filename"`
	UploaderEmail string    `json:"uploader_email"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// NoteForm serves the upload page payload together with the caller's
// most recent uploads.
func (a *API) NoteForm(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userEmail := c.MustGet("userEmail").(string)

	var recent []model.Note

	err := a.DB.
		Where("uploader_email = ?", userEmail).
		Order("uploaded_at DESC, id DESC").
		Limit(20).
		Find(&recent).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up recent uploads", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":        "Notes",
		"upload_field": "note_file",
		"your_uploads": recent,
	})
}

// NoteList returns every note record grouped by branch, newest first
// within each group. Computed fresh on every call, note volume is
// expected to stay small.
func (a *API) NoteList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var notes []model.Note

	err := a.DB.
		Order("uploaded_at DESC, id DESC").
		Find(&notes).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	grouped := make(map[string][]noteEntry, len(notes))
	for _, n := range notes {
		grouped[n.Branch] = append(grouped[n.Branch], noteEntry{
			Filename:      n.Filename,
			UploaderEmail: n.UploaderEmail,
			UploadedAt:    n.UploadedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"branches": grouped,
	})
}
