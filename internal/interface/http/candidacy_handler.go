package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
)

type CandidacyService interface {
	Apply(ctx context.Context, userID string, in application.ApplyInput) (application.Result, error)
	FindByUser(ctx context.Context, userID string) (application.Result, error)
	FindByJob(ctx context.Context, companyID, jobID string) (application.Result, error)
	Close(ctx context.Context, companyID, id string) (application.Result, error)
}

type CandidacyHandler struct {
	Svc    CandidacyService
	Logger *logrus.Logger
}

func NewCandidacyHandler(svc CandidacyService, logger *logrus.Logger) *CandidacyHandler {
	return &CandidacyHandler{Svc: svc, Logger: logger}
}

func (h *CandidacyHandler) Apply(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.ApplyInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Apply(c.Request.Context(), p.PrincipalID(), in)
	render(c, h.Logger, r, err)
}

func (h *CandidacyHandler) FindMine(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	r, err := h.Svc.FindByUser(c.Request.Context(), p.PrincipalID())
	render(c, h.Logger, r, err)
}

func (h *CandidacyHandler) FindByJob(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	jobID, ok := idParam(c, "jobId", application.MsgJobNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.FindByJob(c.Request.Context(), p.PrincipalID(), jobID)
	render(c, h.Logger, r, err)
}

func (h *CandidacyHandler) Close(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgCandidacyNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.Close(c.Request.Context(), p.PrincipalID(), id)
	render(c, h.Logger, r, err)
}
