package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type CurriculumModule struct {
	Handler *handlers.CurriculumHandler
	Guard   Guard
}

func NewCurriculumModule(h *handlers.CurriculumHandler, g Guard) *CurriculumModule {
	return &CurriculumModule{Handler: h, Guard: g}
}

func (m *CurriculumModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/curriculum", m.Guard.User()...)
	g.GET("", m.Handler.FindAll)
	g.POST("/upload", m.Handler.Upload)
	// keys look like curriculums/<user>/<file>
	g.DELETE("/*key", m.Handler.Delete)
}
