package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

// HeaderXUser names the acting user resolved by the host's auth layer.
// Authentication itself is not enforced here.
const HeaderXUser = "X-User"

// ActingUser copies the acting user from the request header onto the request
// context so services can stamp writes with it. Missing identity falls back
// downstream to model.DefaultActingUser.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := c.GetHeader(HeaderXUser); user != "" {
			ctx := model.WithActingUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
