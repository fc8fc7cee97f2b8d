package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/pkg/response"
)

type AuthService interface {
	Login(ctx context.Context, in application.LoginInput) (application.Result, error)
	ConfirmEmail(ctx context.Context, in application.ConfirmEmailInput) (application.Result, error)
	ResendConfirmation(ctx context.Context, in application.ResendConfirmationInput) (application.Result, error)
}

type AuthHandler struct {
	Svc    AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.Login(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}

// UserLogged GET /api/auth/user-logged
func (h *AuthHandler) UserLogged(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// ConfirmEmail POST /api/auth/confirm-email
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	var in application.ConfirmEmailInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.ConfirmEmail(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}

// ResendConfirmation POST /api/auth/confirm-email/resend
func (h *AuthHandler) ResendConfirmation(c *gin.Context) {
	var in application.ResendConfirmationInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.Svc.ResendConfirmation(c.Request.Context(), in)
	render(c, h.Logger, r, err)
}
