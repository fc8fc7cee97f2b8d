package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/interface/middleware"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/response"
	"github.com/soujunior/vagas-api/pkg/validation"
)

const msgInvalidPayload = "Invalid payload"

// render writes a service result. Errors are logged and hidden behind a 500.
func render(c *gin.Context, logger *logrus.Logger, r application.Result, err error) {
	if err != nil {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString(middleware.CtxRequestIDKey),
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		})
		response.Internal(c)
		return
	}
	response.JSON(c, r.Status, r.Data)
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return false
	}
	return true
}

// bind picks JSON or form binding from the Content-Type.
func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return false
	}
	return true
}

// idParam reads a uuid path parameter. Anything else answers 404 with notFound.
func idParam(c *gin.Context, name, notFound string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		response.Message(c, http.StatusNotFound, notFound)
		return "", false
	}
	return id, true
}

func principal(c *gin.Context) entity.Principal {
	p, ok := middleware.Principal(c)
	if !ok {
		response.Abort(c, http.StatusUnauthorized, "Unauthorized")
		return nil
	}
	return p
}

// formUpload opens the multipart file under field. A missing file is not an error.
func formUpload(c *gin.Context, field string) (*application.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	up := &application.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return up, func() { _ = f.Close() }, nil
}
