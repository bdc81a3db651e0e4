package api

import (
	"net/http"

	"github.com/Ahalya06/Eng-Scholar/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) MemeList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var comments []model.Comment

	err := a.DB.
		Order("created_at DESC, id DESC").
		Find(&comments).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up comments", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"comments": comments,
	})
}
