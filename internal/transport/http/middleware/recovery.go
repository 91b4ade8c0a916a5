package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-visit/internal/transport/http/response"
)

func SimpleRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrBody{
					Message: "internal error", ErrorCode: "UndefinedHTTPError",
				})
			}
		}()
		c.Next()
	}
}
