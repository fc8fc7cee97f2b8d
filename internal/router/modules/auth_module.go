package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Guard   Guard
}

func NewAuthModule(h *handlers.AuthHandler, g Guard) *AuthModule {
	return &AuthModule{Handler: h, Guard: g}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", ipLimit(10), m.Handler.Login)
	rg.POST("/auth/confirm-email", ipLimit(30), m.Handler.ConfirmEmail)
	rg.POST("/auth/confirm-email/resend", ipLimit(5), m.Handler.ResendConfirmation)

	rg.GET("/auth/user-logged", chain(m.Guard.Any(), m.Handler.UserLogged)...)
}
