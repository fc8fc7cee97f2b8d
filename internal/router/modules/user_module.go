package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

// UserModule serves /api/user.
// Public: sign-up and the password recovery pair.
// Protected: profile reads and updates, admin listing, account removal.
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   Guard
}

func NewUserModule(h *handlers.UserHandler, g Guard) *UserModule {
	return &UserModule{Handler: h, Guard: g}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/user", ipLimit(20), m.Handler.Create)
	rg.POST("/user/recovery-password", ipLimit(5), m.Handler.RecoverPassword)
	rg.PATCH("/user/update-password", ipLimit(10), m.Handler.UpdatePasswordByToken)

	rg.GET("/user", chain(m.Guard.Admin(), m.Handler.FindAll)...)
	rg.GET("/user/:id", chain(m.Guard.Any(), m.Handler.FindByID)...)
	rg.PUT("/user", chain(m.Guard.User(), m.Handler.Update)...)
	rg.PATCH("/user/password", chain(m.Guard.User(), m.Handler.UpdateMyPassword)...)
	rg.DELETE("/user/:id", chain(m.Guard.User(), m.Handler.Delete)...)
}
