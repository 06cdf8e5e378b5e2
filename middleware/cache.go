package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks responses as publicly cacheable for the given
// number of seconds. Used on the media download route; blobs never change
// once stored.
func CacheControlMiddleware(duration string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age="+duration)
		c.Next()
	}
}
