package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/soujunior/vagas-api/internal/interface/http"
)

type SavedJobModule struct {
	Handler *handlers.SavedJobHandler
	Guard   Guard
}

func NewSavedJobModule(h *handlers.SavedJobHandler, g Guard) *SavedJobModule {
	return &SavedJobModule{Handler: h, Guard: g}
}

func (m *SavedJobModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/savedjobs", m.Guard.User()...)
	g.POST("", m.Handler.Save)
	g.GET("", m.Handler.FindAll)
	g.DELETE("/:id", m.Handler.Delete)
}
