package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soujunior/vagas-api/internal/container"
	"github.com/soujunior/vagas-api/internal/interface/middleware"
)

// Guard carries the middleware chain that authenticates a request.
type Guard struct {
	Auth []gin.HandlerFunc
}

// with returns the auth chain followed by extra.
func (g Guard) with(extra ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(g.Auth)+len(extra))
	out = append(out, g.Auth...)
	return append(out, extra...)
}

func (g Guard) User() []gin.HandlerFunc    { return g.with(middleware.RequireUser()) }
func (g Guard) Company() []gin.HandlerFunc { return g.with(middleware.RequireCompany()) }
func (g Guard) Admin() []gin.HandlerFunc   { return g.with(middleware.RequireAdmin()) }
func (g Guard) Any() []gin.HandlerFunc     { return g.with() }

// ipLimit is the per-IP and per-path limiter for public credential endpoints.
func ipLimit(max int) gin.HandlerFunc {
	return middleware.RateLimit(container.GetRedis(), max, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
}

func chain(pre []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	return append(pre, h)
}
