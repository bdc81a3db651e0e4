package api

import (
	"net/http"
	"strings"

	"github.com/Ahalya06/Eng-Scholar/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type memeBody struct {
	Comment string `form:"comment" json:"comment"`
}

func (a *API) MemePost(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	displayName := c.MustGet("displayName").(string)

	var data memeBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if strings.TrimSpace(data.Comment) == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Comment can't be empty",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&model.Comment{
			Author: displayName,
			Body:   data.Comment,
		}).Error
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to save comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Comment posted",
	})
}
