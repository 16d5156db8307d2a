package middleware

import (
	"github.com/gin-gonic/gin"
)

// ResponseHeaders applies the fixed header pair every handler response
// carries. CORS preflight handling itself lives in the cors middleware;
// this keeps the envelope uniform on error paths produced outside it.
func ResponseHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
