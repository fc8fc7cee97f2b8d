package application

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
)

var curriculumTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type CurriculumService struct {
	Curricula  repo.CurriculumRepository
	Storage    FileStorage
	MaxPerUser int
	MaxBytes   int64
	Logger     *logrus.Logger
}

func NewCurriculumService(curricula repo.CurriculumRepository, st FileStorage, maxPerUser int, maxBytes int64, logger *logrus.Logger) *CurriculumService {
	return &CurriculumService{Curricula: curricula, Storage: st, MaxPerUser: maxPerUser, MaxBytes: maxBytes, Logger: logger}
}

func (s *CurriculumService) FindAll(ctx context.Context, userID string) (Result, error) {
	list, err := s.Curricula.FindByUserID(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if list == nil {
		list = []*entity.Curriculum{}
	}
	return ok(list), nil
}

// Upload stores a PDF or Word file. The content type is derived from the extension.
func (s *CurriculumService) Upload(ctx context.Context, userID string, file *Upload) (Result, error) {
	ext := strings.ToLower(path.Ext(file.Filename))
	contentType, allowed := curriculumTypes[ext]
	if !allowed {
		return msg(http.StatusBadRequest, MsgCurriculumFormat), nil
	}
	if s.MaxBytes > 0 && file.Size > s.MaxBytes {
		return msg(http.StatusBadRequest, MsgCurriculumTooLarge), nil
	}

	n, err := s.Curricula.CountByUserID(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if s.MaxPerUser > 0 && n >= s.MaxPerUser {
		return msg(http.StatusBadRequest, MsgCurriculumLimit), nil
	}

	if s.Storage == nil {
		return Result{}, ErrStorageNotConfigured
	}
	key := objectKey("curriculums", userID, file.Filename)
	url, err := s.Storage.Upload(ctx, key, contentType, file.Body)
	if err != nil {
		return Result{}, err
	}

	c := &entity.Curriculum{UserID: userID, File: url, FileKey: key}
	if err := s.Curricula.Create(ctx, c); err != nil {
		if delErr := s.Storage.Delete(ctx, key); delErr != nil && s.Logger != nil {
			s.Logger.WithError(delErr).WithField("key", key).Warn("orphaned curriculum object")
		}
		return Result{}, err
	}
	return created(c), nil
}

// Delete removes a curriculum owned by userID. Another user's key is reported as missing.
func (s *CurriculumService) Delete(ctx context.Context, userID, key string) (Result, error) {
	c, err := s.Curricula.FindByKey(ctx, key)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCurriculumNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if c.UserID != userID {
		return msg(http.StatusNotFound, MsgCurriculumNotFound), nil
	}

	if s.Storage != nil {
		if err := s.Storage.Delete(ctx, c.FileKey); err != nil {
			return Result{}, err
		}
	}
	if err := s.Curricula.Delete(ctx, c.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgCurriculumDeleted), nil
}
