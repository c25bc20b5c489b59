package api

import (
	"github.com/gin-gonic/gin"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

// credentialsMiddleware reads the identity headers injected by the gateway
// in front of this service. The gateway authenticates callers and enforces
// the manager role on assignment routes; this service trusts its headers.
func credentialsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := models.Credentials{
			ActorId: c.GetHeader("X-User-Id"),
			Role:    c.GetHeader("X-User-Role"),
		}
		ctxWithCreds := utils.StoreCredentialsInContext(c.Request.Context(), creds)
		c.Request = c.Request.WithContext(ctxWithCreds)
	}
}
