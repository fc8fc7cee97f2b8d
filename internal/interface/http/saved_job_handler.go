package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
)

type SavedJobService interface {
	Save(ctx context.Context, userID string, in application.SaveJobInput) (application.Result, error)
	FindAll(ctx context.Context, userID string) (application.Result, error)
	Delete(ctx context.Context, userID, id string) (application.Result, error)
}

type SavedJobHandler struct {
	Svc    SavedJobService
	Logger *logrus.Logger
}

func NewSavedJobHandler(svc SavedJobService, logger *logrus.Logger) *SavedJobHandler {
	return &SavedJobHandler{Svc: svc, Logger: logger}
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.SaveJobInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Save(c.Request.Context(), p.PrincipalID(), in)
	render(c, h.Logger, r, err)
}

func (h *SavedJobHandler) FindAll(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	r, err := h.Svc.FindAll(c.Request.Context(), p.PrincipalID())
	render(c, h.Logger, r, err)
}

func (h *SavedJobHandler) Delete(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgSavedJobNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), p.PrincipalID(), id)
	render(c, h.Logger, r, err)
}
