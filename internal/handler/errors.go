package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbryant/sendlater/internal/service"
	"github.com/kbryant/sendlater/pkg/logger"
	"go.uber.org/zap"
)

// respondServiceError maps service errors onto the response envelope:
// client input problems → 400 with the reason, unknown ids → 404,
// anything else → 400 with a minimal body and full detail in the log.
func respondServiceError(c *gin.Context, err error) {
	var missing *service.MissingFieldError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{"msg": missing.Error()})
	case errors.Is(err, service.ErrBadSendTime):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "incorrectly formatted datetime"})
	case errors.Is(err, service.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "message not found"})
	case errors.Is(err, ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "item not found"})
	default:
		logger.Log.Error("storage operation failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Bad Request"})
	}
}
