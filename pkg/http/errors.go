package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetpanel.dev/device-console-service/pkg/console"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, console.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, console.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, console.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, console.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, console.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
