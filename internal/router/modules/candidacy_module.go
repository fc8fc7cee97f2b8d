package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type CandidacyModule struct {
	Handler *handlers.CandidacyHandler
	Guard   Guard
}

func NewCandidacyModule(h *handlers.CandidacyHandler, g Guard) *CandidacyModule {
	return &CandidacyModule{Handler: h, Guard: g}
}

func (m *CandidacyModule) Register(rg *gin.RouterGroup) {
	rg.POST("/candidacy", chain(m.Guard.User(), m.Handler.Apply)...)
	rg.GET("/candidacy", chain(m.Guard.User(), m.Handler.FindMine)...)
	rg.GET("/candidacy/job/:jobId", chain(m.Guard.Company(), m.Handler.FindByJob)...)
	rg.PATCH("/candidacy/:id/close", chain(m.Guard.Company(), m.Handler.Close)...)
}
