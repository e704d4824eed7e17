package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mem "safari/pkg/memcache"
	"safari/pkg/utils"
)

// RateLimit throttles each client IP through its own limiter. A nil store
// disables limiting.
func RateLimit(store mem.LimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}
		if !store.Get(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
