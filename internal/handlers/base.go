package handlers

import (
	"errors"
	"log"
	"net/http"

	"mediaboard/internal/store"

	"github.com/gin-gonic/gin"
)

// abortError is the single place store failures become status codes. Bodies
// stay empty: internal details never reach the client.
func abortError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{})
	case errors.Is(err, store.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{})
	case errors.Is(err, store.ErrInvalid):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{})
	}
}
