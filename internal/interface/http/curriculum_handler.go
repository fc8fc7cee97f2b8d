package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/pkg/response"
)

type CurriculumService interface {
	FindAll(ctx context.Context, userID string) (application.Result, error)
	Upload(ctx context.Context, userID string, file *application.Upload) (application.Result, error)
	Delete(ctx context.Context, userID, key string) (application.Result, error)
}

type CurriculumHandler struct {
	Svc    CurriculumService
	Logger *logrus.Logger
}

func NewCurriculumHandler(svc CurriculumService, logger *logrus.Logger) *CurriculumHandler {
	return &CurriculumHandler{Svc: svc, Logger: logger}
}

func (h *CurriculumHandler) FindAll(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	r, err := h.Svc.FindAll(c.Request.Context(), p.PrincipalID())
	render(c, h.Logger, r, err)
}

// Upload POST /api/curriculum/upload, multipart with a "file" part.
func (h *CurriculumHandler) Upload(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	file, closeFile, err := formUpload(c, "file")
	defer closeFile()
	if err != nil || file == nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, map[string]string{"file": "is required"})
		return
	}
	r, err := h.Svc.Upload(c.Request.Context(), p.PrincipalID(), file)
	render(c, h.Logger, r, err)
}

// Delete DELETE /api/curriculum/*key. Object keys contain slashes.
func (h *CurriculumHandler) Delete(c *gin.Context) {
	p := principal(c)
	if p == nil {
		return
	}
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		response.Message(c, http.StatusNotFound, application.MsgCurriculumNotFound)
		return
	}
	r, err := h.Svc.Delete(c.Request.Context(), p.PrincipalID(), key)
	render(c, h.Logger, r, err)
}
