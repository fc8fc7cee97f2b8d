package repository

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

// JobFilter narrows job listings. Empty fields are ignored.
type JobFilter struct {
	Modality    entity.Modality
	FederalUnit string
	City        string
	Status      entity.JobStatus
	// Search matches title and description (case-insensitive).
	Search string
}

var JobOrderColumns = []string{"created_at", "title", "salary_min", "updated_at"}

type JobRepository interface {
	Create(ctx context.Context, j *entity.Job) error
	FindAll(ctx context.Context, f JobFilter, opts pagination.PageOptions) ([]*entity.Job, int, error)
	FindByID(ctx context.Context, id string) (*entity.Job, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Job, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]*entity.Job, error)
	Update(ctx context.Context, j *entity.Job) error
	UpdateStatus(ctx context.Context, id string, status entity.JobStatus) error
	Delete(ctx context.Context, id string) error
}
