package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
)

// Context keys set by Auth.
const (
	CtxPrincipalKey = "principal"
	CtxTokenKey     = "access_token"
)

// Auth resolves the bearer token into a principal and stores it in the Gin
// context. Failures are reported in the standard envelope at HTTP 200; only
// the admin gate deviates from that.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortFail(c, application.CodeInvalidToken, "Missing bearer token.", "Invalid or expired token.")
			return
		}
		u, err := auth.ResolvePrincipal(c.Request.Context(), token)
		if err != nil {
			if ce, ok := application.AsCoded(err); ok {
				response.AbortFail(c, ce.Code, ce.Details, ce.Message)
				return
			}
			response.AbortFail(c, application.CodeInvalidToken, "Token could not be resolved.", "Invalid or expired token.")
			return
		}
		c.Set(CtxPrincipalKey, u)
		c.Set(CtxTokenKey, token)
		c.Next()
	}
}

// AdminRequired gates the admin sub-API. Unlike every other failure path it
// aborts with a transport-level 403.
func AdminRequired(authz *application.Evaluator) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := Principal(c)
		if u == nil || !authz.IsAdmin(c.Request.Context(), u) {
			response.AbortForbidden(c, "Admin privileges required.", "Forbidden.")
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated user placed by Auth, or nil.
func Principal(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxPrincipalKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// Token returns the raw bearer token placed by Auth.
func Token(c *gin.Context) string {
	return c.GetString(CtxTokenKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
