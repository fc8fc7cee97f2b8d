package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/interface/middleware"
	"github.com/soujunior/vagas-api/pkg/pagination"
	"github.com/soujunior/vagas-api/pkg/response"
)

type UserService interface {
	Create(ctx context.Context, in application.CreateUserInput, ip string) (application.Result, error)
	FindAll(ctx context.Context, opts pagination.PageOptions) (application.Result, error)
	FindByID(ctx context.Context, id string) (application.Result, error)
	Update(ctx context.Context, id string, in application.UpdateUserInput, file *application.Upload) (application.Result, error)
	UpdateMyPassword(ctx context.Context, id string, in application.UpdateMyPasswordInput) (application.Result, error)
	Delete(ctx context.Context, id string) (application.Result, error)
	RecoverPasswordByEmail(ctx context.Context, in application.RecoverPasswordInput) (application.Result, error)
	UpdatePasswordByToken(ctx context.Context, in application.UpdatePasswordByTokenInput) (application.Result, error)
}

type UserHandler struct {
	Svc    UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Create POST /api/user
func (h *UserHandler) Create(c *gin.Context) {
	var in application.CreateUserInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Create(c.Request.Context(), in, middleware.ClientIP(c))
	render(c, h.Logger, r, err)
}

// FindAll GET /api/user (admin)
func (h *UserHandler) FindAll(c *gin.Context) {
	var opts pagination.PageOptions
	if !bindQuery(c, &opts) {
		return
	}
	r, err := h.Svc.FindAll(c.Request.Context(), opts)
	render(c, h.Logger, r, err)
}

// FindByID GET /api/user/:id
func (h *UserHandler) FindByID(c *gin.Context) {
	id, ok := idParam(c, "id", application.MsgUserNotFound)
	if !ok {
		return
	}
	r, err := h.Svc.FindByID(c.Request.Context(), id)
	render(c, h.Logger, r, err)
}

// Update PUT /api/user, JSON or multipart with an optional "file" part.
func (h *UserHandler) Update(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	var in application.UpdateUserInput
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

// UpdateMyPassword PATCH /api/user/password
func (h *UserHandler) UpdateMyPassword(c *gin.Context) {
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

// Delete DELETE /api/user/:id. Users may delete themselves; admins anyone.
func (h *UserHandler) Delete(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	id, ok := idParam(c, "id", application.MsgUserNotFound)
	if !ok {
		return
	}
	u, isUser := p.(entity.UserPrincipal)
	if !isUser || (u.ID != id && !u.IsAdmin()) {
		response.Message(c, http.StatusForbidden, application.MsgForbidden)
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), id)
	render(c, h.Logger, r, err)
}

// RecoverPassword POST /api/user/recovery-password
func (h *UserHandler) RecoverPassword(c *gin.Context) {
	var in application.RecoverPasswordInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.RecoverPasswordByEmail(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}

// UpdatePasswordByToken PATCH /api/user/update-password
func (h *UserHandler) UpdatePasswordByToken(c *gin.Context) {
	var in application.UpdatePasswordByTokenInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.UpdatePasswordByToken(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}
