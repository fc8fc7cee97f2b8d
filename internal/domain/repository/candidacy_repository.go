package repository

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
)

type CandidacyRepository interface {
	// Create returns ErrConflict when the user already applied to the job.
	Create(ctx context.Context, c *entity.Candidacy) error
	FindByID(ctx context.Context, id string) (*entity.Candidacy, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Candidacy, error)
	FindByJobID(ctx context.Context, jobID string) ([]*entity.Candidacy, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.Candidacy, error)
	Close(ctx context.Context, id string) (*entity.Candidacy, error)
}

type SavedJobRepository interface {
	// Create returns ErrConflict when the job is already saved by the user.
	Create(ctx context.Context, s *entity.SavedJob) error
	FindByID(ctx context.Context, id string) (*entity.SavedJob, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.SavedJob, error)
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.SavedJob, error)
	Delete(ctx context.Context, id string) error
}
