package handlers

import (
	"bookingsite/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger prefers the request-scoped logger set by middleware.RequestLogger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok && logger != nil {
			return logger
		}
	}
	return utils.GetLogger().With(zap.String("path", c.FullPath()))
}
