package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"store-visit/internal/transport/http/response"
)

// ConcurrencyLimit caps requests in flight to protect the database.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrBody{
				Message: "server busy", ErrorCode: "ServerBusyError",
			})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
