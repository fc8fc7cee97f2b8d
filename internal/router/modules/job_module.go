package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type JobModule struct {
	Handler *handlers.JobHandler
	Guard   Guard
}

func NewJobModule(h *handlers.JobHandler, g Guard) *JobModule {
	return &JobModule{Handler: h, Guard: g}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	rg.GET("/job", m.Handler.FindAll)
	rg.GET("/job/search", ipLimit(60), m.Handler.Search)
	rg.GET("/job/:id", m.Handler.FindByID)

	rg.GET("/job/company", chain(m.Guard.Company(), m.Handler.FindAllFromCompany)...)
	rg.POST("/job", chain(m.Guard.Company(), m.Handler.Create)...)
	rg.PUT("/job/:id", chain(m.Guard.Company(), m.Handler.Update)...)
	rg.PATCH("/job/:id/archive", chain(m.Guard.Company(), m.Handler.Archive)...)
	rg.DELETE("/job/:id", chain(m.Guard.Company(), m.Handler.Delete)...)
}
