package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

const (
	scopeKey = "scope"
	tokenKey = "access_token"
)

// AccessToken returns the caller's token from the Authorization header or
// the bearer_token query parameter.
func AccessToken(c *gin.Context) string {
	if v := c.GetHeader("Authorization"); v != "" {
		return v
	}
	return c.Query("bearer_token")
}

// Authorize admits the request only when provider grants permission to the
// caller, and stores the resolved scope for handlers.
func Authorize(provider identity.Provider, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := AccessToken(c)
		id, err := provider.Check(c.Request.Context(), token, permission)
		if err != nil {
			status := identity.StatusCodeOf(err, http.StatusBadGateway)
			if errors.Is(err, identity.ErrMissingToken) {
				status = http.StatusUnauthorized
			}
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.URL.Path, err.Error())
			util.CallError(c, status, util.APIErrorParams{
				Msg: "Unable to verify access token",
				Err: err,
			})
			return
		}
		if !id.Permitted {
			util.LogForbiddenAccess(fmt.Sprint(id.UserID), c.ClientIP(), c.Request.URL.Path, "missing permission "+permission)
			util.CallForbidden(c, util.APIErrorParams{
				Msg: "Forbidden",
				Err: fmt.Errorf("permission %q is required", permission),
			})
			return
		}

		c.Set(tokenKey, token)
		c.Set(scopeKey, service.Scope{
			UserID:     id.UserID,
			HospitalID: id.HospitalID,
			Roles:      id.Roles,
		})
		c.Next()
	}
}

// GetScope returns the scope stored by Authorize. Unauthenticated routes get
// the zero Scope.
func GetScope(c *gin.Context) service.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return service.Scope{}
	}
	scope, _ := v.(service.Scope)
	return scope
}

// GetAccessToken returns the token Authorize verified.
func GetAccessToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}
