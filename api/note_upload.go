package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ahalya06/Eng-Scholar/model"
	"github.com/Ahalya06/Eng-Scholar/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) NoteUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userEmail := c.MustGet("userEmail").(string)

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request",
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("note_file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	branch := c.PostForm("branch")

	// Both values end up as path segments in the blob store, anything
	// that could break out of the branch directory is rejected here
	if err := validators.PathSegmentValidator(branch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid branch: " + err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PathSegmentValidator(fh.Filename); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid filename: " + err.Error(),
			"requestID": requestID,
		})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open uploaded file", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	// Blob first, metadata second. A crash in between leaves an orphan
	// blob that the next upload of the same (branch, filename) pair
	// overwrites, so re-uploading always recovers consistency.
	err = a.Blobs.Save(c.Request.Context(), branch, fh.Filename, f)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store blob", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model.Note{
			Filename:      fh.Filename,
			Branch:        branch,
			UploaderEmail: userEmail,
			UploadedAt:    time.Now(),
		}).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save note record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":   branch,
		"filename": fh.Filename,
	})
}
