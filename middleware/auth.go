package middleware

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/dentist-api/auth"
	"github.com/ariebrainware/dentist-api/model"
	"github.com/ariebrainware/dentist-api/util"
	"github.com/gin-gonic/gin"
)

// ClaimsKey is the context key holding the caller's *auth.Claims.
const ClaimsKey = "claims"

// RequireRoles rejects requests without a valid, unrevoked bearer token whose
// role is in allowed. An empty set admits any valid token.
func RequireRoles(guard *auth.Guard, sessions *util.SessionStore, allowed model.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		resource := c.Request.Method + " " + c.FullPath()
		claims, err := guard.Authorize(c.GetHeader("Authorization"), allowed)
		if claims == nil {
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.UserAgent(), resource, err.Error())
			util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: unauthorizedMessage(err), Err: err})
			return
		}

		revoked, rerr := sessions.IsRevoked(c.Request.Context(), claims.ID)
		if rerr != nil {
			util.CallServiceUnavailable(c, util.APIErrorParams{
				Msg: "Session store unavailable",
				Err: fmt.Errorf("failed to check token revocation: %w", rerr),
			})
			return
		}
		if revoked {
			util.LogUnauthorizedAccess(c.ClientIP(), c.Request.UserAgent(), resource, "token revoked")
			util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Token has been revoked"})
			return
		}

		if errors.Is(err, auth.ErrForbiddenRole) {
			util.LogForbiddenAccess(claims.PhoneNumber, claims.Role.String(), c.ClientIP(), resource)
			util.CallForbidden(c, util.APIErrorParams{
				Msg: fmt.Sprintf("Role %s is not allowed to access this resource", claims.Role),
				Err: err,
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingHeader):
		return "Authorization header is required"
	case errors.Is(err, auth.ErrMalformedHeader):
		return "Authorization header must be 'Bearer <token>'"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token has expired"
	default:
		return "Invalid token"
	}
}

// GetClaims returns the claims stored by RequireRoles.
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
