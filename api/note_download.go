package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Ahalya06/Eng-Scholar/internal/storage"
	"github.com/Ahalya06/Eng-Scholar/validators"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Enough for every signature mimetype knows about
const sniffLen = 3072

// NoteDownload streams the blob at uploads/{branch}/{filename}. There
// is no cross-check against the notes table, any authenticated caller
// who knows a valid address can fetch the bytes.
func (a *API) NoteDownload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	branch := c.Param("branch")
	filename := c.Param("filename")

	// Route params are decoded, so traversal sequences have to be
	// caught here as well
	if validators.PathSegmentValidator(branch) != nil || validators.PathSegmentValidator(filename) != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid path",
			"requestID": requestID,
		})
		return
	}

	rc, size, err := a.Blobs.Open(c.Request.Context(), branch, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "File not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to open blob", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer rc.Close()

	// Sniff the content type from the head of the stream, the stored
	// filename came from a client and its extension proves nothing
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read blob", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	mime := mimetype.Detect(head[:n])

	c.DataFromReader(http.StatusOK, size, mime.String(),
		io.MultiReader(bytes.NewReader(head[:n]), rc),
		map[string]string{
			"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
		})
}
