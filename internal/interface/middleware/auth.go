package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/response"
)

const (
	CtxPrincipalKey = "principal"
	CtxUserIDKey    = "userID"
)

// TokenParser is implemented by helpers.JWTManager.
type TokenParser interface {
	Parse(token string) (*helpers.Claims, error)
}

// PrincipalResolver is implemented by application.JWTStrategy.
type PrincipalResolver interface {
	Validate(ctx context.Context, claims *helpers.Claims) (entity.Principal, error)
}

// Auth reads the bearer token from the Authorization header, verifies it and resolves the principal.
// On success the principal is stored under CtxPrincipalKey and its id under CtxUserIDKey.
func Auth(jwt TokenParser, resolver PrincipalResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		p, err := resolver.Validate(c.Request.Context(), claims)
		if err != nil {
			var unauth *application.UnauthorizedError
			if errors.As(err, &unauth) {
				response.Abort(c, http.StatusUnauthorized, unauth.Message)
				return
			}
			helpers.LogError(logger, "resolve principal failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
			response.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(CtxPrincipalKey, p)
		c.Set(CtxUserIDKey, p.PrincipalID())
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Principal returns the caller resolved by Auth.
func Principal(c *gin.Context) (entity.Principal, bool) {
	v, ok := c.Get(CtxPrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(entity.Principal)
	return p, ok
}

// RequireUser lets only user principals through.
func RequireUser() gin.HandlerFunc {
	return requireKind(func(p entity.Principal) bool { return p.Kind() == entity.PrincipalUser })
}

// RequireCompany lets only company principals through.
func RequireCompany() gin.HandlerFunc {
	return requireKind(func(p entity.Principal) bool { return p.Kind() == entity.PrincipalCompany })
}

// RequireAdmin lets only users of type ADMIN through.
func RequireAdmin() gin.HandlerFunc {
	return requireKind(func(p entity.Principal) bool {
		u, ok := p.(entity.UserPrincipal)
		return ok && u.IsAdmin()
	})
}

func requireKind(allow func(entity.Principal) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Principal(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !allow(p) {
			response.Abort(c, http.StatusForbidden, application.MsgForbidden)
			return
		}
		c.Next()
	}
}
