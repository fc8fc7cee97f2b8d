package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type CompanyModule struct {
	Handler *handlers.CompanyHandler
	Guard   Guard
}

func NewCompanyModule(h *handlers.CompanyHandler, g Guard) *CompanyModule {
	return &CompanyModule{Handler: h, Guard: g}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	rg.POST("/company", ipLimit(20), m.Handler.Create)
	rg.GET("/company", m.Handler.FindAll)
	rg.GET("/company/:id", m.Handler.FindByID)
	rg.POST("/company/recovery-password", ipLimit(5), m.Handler.RecoverPassword)
	rg.PATCH("/company/update-password", ipLimit(10), m.Handler.UpdatePasswordByToken)

	rg.PUT("/company", chain(m.Guard.Company(), m.Handler.Update)...)
	rg.PATCH("/company/password", chain(m.Guard.Company(), m.Handler.UpdateMyPassword)...)
	rg.DELETE("/company/:id", chain(m.Guard.Company(), m.Handler.Delete)...)
}
