package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

type JobService interface {
	Create(ctx context.Context, companyID string, in application.JobInput) (application.Result, error)
	FindAll(ctx context.Context, q application.JobQuery) (application.Result, error)
	FindByID(ctx context.Context, id string) (application.Result, error)
	FindAllFromCompany(ctx context.Context, companyID string) (application.Result, error)
	Update(ctx context.Context, companyID, id string, in application.JobInput) (application.Result, error)
	Archive(ctx context.Context, companyID, id string) (application.Result, error)
	Delete(ctx context.Context, companyID, id string) (application.Result, error)
	Search(ctx context.Context, q string, opts pagination.PageOptions) (application.Result, error)
}

type JobHandler struct {
	Svc    JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

type jobSearchQuery struct {
	pagination.PageOptions
	Q string `form:"q" binding:"required,max=200"`
}

func (h *JobHandler) Create(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.JobInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), p.PrincipalID(), in)
	render(c, h.Logger, r, err)
}

func (h *JobHandler) FindAll(c *gin.Context) {
	var q application.JobQuery
	if !bindQuery(c, &q) {
		return
	}
	r, err := h.Svc.FindAll(c.Request.Context(), q)
	render(c, h.Logger, r, err)
}

// Search GET /api/job/search?q=
func (h *JobHandler) Search(c *gin.Context) {
	var q jobSearchQuery
	if !bindQuery(c, &q) {
		return
	}
	r, err := h.Svc.Search(c.Request.Context(), q.Q, q.PageOptions)
	render(c, h.Logger, r, err)
}

func (h *JobHandler) FindAllFromCompany(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	r, err := h.Svc.FindAllFromCompany(c.Request.Context(), p.PrincipalID())
	render(c, h.Logger, r, err)
}

func (h *JobHandler) FindByID(c *gin.Context) {
	id, ok := idParam(c, "id", application.MsgJobNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.FindByID(c.Request.Context(), id)
	render(c, h.Logger, r, err)
}

func (h *JobHandler) Update(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgJobNotFound)
	if !ok {
		return
	}
	var in application.JobInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Update(c.Request.Context(), p.PrincipalID(), id, in)
	render(c, h.Logger, r, err)
}

func (h *JobHandler) Archive(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgJobNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.Archive(c.Request.Context(), p.PrincipalID(), id)
	render(c, h.Logger, r, err)
}

func (h *JobHandler) Delete(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgJobNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), p.PrincipalID(), id)
	render(c, h.Logger, r, err)
}
