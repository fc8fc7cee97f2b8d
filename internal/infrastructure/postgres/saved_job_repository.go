package postgres

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
)

var _ repository.SavedJobRepository = (*SavedJobRepository)(nil)

type SavedJobRepository struct {
	q Querier
}

func NewSavedJobRepository(q Querier) *SavedJobRepository {
	return &SavedJobRepository{q: q}
}

func (r *SavedJobRepository) Create(ctx context.Context, s *entity.SavedJob) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		RETURNING id, saved_date
	`, s.UserID, s.JobID)
	return handleError("insert saved job", row.Scan(&s.ID, &s.SavedDate))
}

func (r *SavedJobRepository) FindByID(ctx context.Context, id string) (*entity.SavedJob, error) {
	s := &entity.SavedJob{}
	err := r.q.QueryRow(ctx, `SELECT id, user_id, job_id, saved_date FROM saved_jobs WHERE id = $1`, id).
		Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedDate)
	if err != nil {
		return nil, handleError("find saved job", err)
	}
	return s, nil
}

func (r *SavedJobRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.SavedJob, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, job_id, saved_date
		FROM saved_jobs WHERE user_id = $1 ORDER BY saved_date DESC
	`, userID)
	if err != nil {
		return nil, handleError("list saved jobs", err)
	}
	defer rows.Close()

	var list []*entity.SavedJob
	for rows.Next() {
		s := &entity.SavedJob{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedDate); err != nil {
			return nil, handleError("scan saved job", err)
		}
		list = append(list, s)
	}
	return list, handleError("list saved jobs", rows.Err())
}

func (r *SavedJobRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.SavedJob, error) {
	s := &entity.SavedJob{}
	err := r.q.QueryRow(ctx, `SELECT id, user_id, job_id, saved_date FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID).Scan(&s.ID, &s.UserID, &s.JobID, &s.SavedDate)
	if err != nil {
		return nil, handleError("find saved job by user and job", err)
	}
	return s, nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1`, id)
	if err != nil {
		return handleError("delete saved job", err)
	}
	return countRows(tag)
}
