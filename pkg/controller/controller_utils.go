package controller

import (
	"net/http"

	"auth-backend/pkg/model"

	"github.com/gin-gonic/gin"
)

// RetrieveIdentity retrieves the identity of the user from the context.
// raise: Raise a http error when the identity doesn't exist.
func RetrieveIdentity(c *gin.Context, raise bool) (identity *model.Identity, exist bool) {
	id, exist := c.Get("identity")
	if !exist {
		if raise {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "Unauthorized",
			})
		}
		return nil, false
	}
	identity = id.(*model.Identity)
	return
}

// RetrieveAccessToken retrieves the raw bearer token stored by the auth
// middleware.
func RetrieveAccessToken(c *gin.Context, raise bool) (token string, exist bool) {
	t, exist := c.Get("access_token")
	if !exist {
		if raise {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error: "Unauthorized",
			})
		}
		return "", false
	}
	token = t.(string)
	return
}
