package repository

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
)

type CurriculumRepository interface {
	Create(ctx context.Context, c *entity.Curriculum) error
	FindByUserID(ctx context.Context, userID string) ([]*entity.Curriculum, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	FindByKey(ctx context.Context, key string) (*entity.Curriculum, error)
	Delete(ctx context.Context, id string) error
}
