package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/pagination"
	"github.com/soujunior/vagas-api/pkg/response"
)

type CompanyService interface {
	Create(ctx context.Context, in application.CreateCompanyInput) (application.Result, error)
	FindAll(ctx context.Context, opts pagination.PageOptions) (application.Result, error)
	FindByID(ctx context.Context, id string) (application.Result, error)
	Update(ctx context.Context, id string, in application.UpdateCompanyInput, file *application.Upload) (application.Result, error)
	UpdateMyPassword(ctx context.Context, id string, in application.UpdateMyPasswordInput) (application.Result, error)
	Delete(ctx context.Context, id string) (application.Result, error)
	RecoverPasswordByEmail(ctx context.Context, in application.RecoverPasswordInput) (application.Result, error)
	UpdatePasswordByToken(ctx context.Context, in application.UpdatePasswordByTokenInput) (application.Result, error)
}

type CompanyHandler struct {
	Svc    CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var in application.CreateCompanyInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) FindAll(c *gin.Context) {
	var opts pagination.PageOptions
	if !bindQuery(c, &opts) {
		return
	}
	r, err := h.Svc.FindAll(c.Request.Context(), opts)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) FindByID(c *gin.Context) {
	id, ok := idParam(c, "id", application.MsgCompanyNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.FindByID(c.Request.Context(), id)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.UpdateCompanyInput
	if !bind(c, &in) {
		return
	}
	file, closeFile, err := formUpload(c, "file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, map[string]string{"file": "could not be read"})
		return
	}
	defer closeFile()

	r, err := h.Svc.Update(c.Request.Context(), p.PrincipalID(), in, file)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) UpdateMyPassword(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.UpdateMyPasswordInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.UpdateMyPassword(c.Request.Context(), p.PrincipalID(), in)
	render(c, h.Logger, r, err)
}

// Delete only lets a company remove itself.
func (h *CompanyHandler) Delete(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgCompanyNotFound)
	if !ok {
		return
	}
	if p.Kind() != entity.PrincipalCompany || p.PrincipalID() != id {
		response.Message(c, http.StatusForbidden, application.MsgForbidden)
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), id)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) RecoverPassword(c *gin.Context) {
	var in application.RecoverPasswordInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.RecoverPasswordByEmail(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}

func (h *CompanyHandler) UpdatePasswordByToken(c *gin.Context) {
	var in application.UpdatePasswordByTokenInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.UpdatePasswordByToken(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}
