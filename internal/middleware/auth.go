package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/appwrite"
	"github.com/Stagepoint-Systems/nuxt-appwrite/internal/models"
)

const (
	UserKey   = "user"
	UserIDKey = "user_id"
)

// AuthMiddleware verifies the caller's Appwrite session before the request
// reaches a handler. Authentication failures are normalized to a single 401
// shape with a short reason; configuration errors surface as 500 so a
// misconfigured server is not mistaken for a rejected caller.
func AuthMiddleware(verifier *appwrite.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := verifier.Verify(c.Request)
		if err != nil {
			var verifyErr *appwrite.VerifyError
			if errors.As(err, &verifyErr) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: verifyErr.Reason})
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error:   "appwrite is not configured",
					Message: err.Error(),
				})
			}
			c.Abort()
			return
		}

		c.Set(UserKey, user)
		c.Set(UserIDKey, user.Id)
		c.Next()
	}
}
