package handlers

import (
	"net/http"

	"bookingsite/models"

	"github.com/gin-gonic/gin"
)

// statusForKind maps envelope error kinds onto HTTP status codes.
func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respond writes the envelope as is; only the status code depends on the outcome.
func respond[T any](c *gin.Context, okStatus int, res models.Result[T]) {
	if res.Success {
		c.JSON(okStatus, res)
		return
	}
	c.JSON(statusForKind(res.Kind), res)
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.Fail[models.Empty](models.KindValidation, message))
}
