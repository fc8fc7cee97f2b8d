package postgres

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
)

var _ repository.CandidacyRepository = (*CandidacyRepository)(nil)

const candidacyColumns = `id, user_id, job_id, status, date_candidacy, date_closing`

type CandidacyRepository struct {
	q Querier
}

func NewCandidacyRepository(q Querier) *CandidacyRepository {
	return &CandidacyRepository{q: q}
}

func scanCandidacy(row scanner) (*entity.Candidacy, error) {
	c := &entity.Candidacy{}
	if err := row.Scan(&c.ID, &c.UserID, &c.JobID, &c.Status, &c.DateCandidacy, &c.DateClosing); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CandidacyRepository) Create(ctx context.Context, c *entity.Candidacy) error {
	if c.Status == "" {
		c.Status = entity.CandidacyInProgress
	}
	row := r.q.QueryRow(ctx, `
		INSERT INTO candidacies (user_id, job_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, date_candidacy
	`, c.UserID, c.JobID, c.Status)
	return handleError("insert candidacy", row.Scan(&c.ID, &c.DateCandidacy))
}

func (r *CandidacyRepository) FindByID(ctx context.Context, id string) (*entity.Candidacy, error) {
	c, err := scanCandidacy(r.q.QueryRow(ctx, `SELECT `+candidacyColumns+` FROM candidacies WHERE id = $1`, id))
	if err != nil {
		return nil, handleError("find candidacy", err)
	}
	return c, nil
}

func (r *CandidacyRepository) list(ctx context.Context, op, where string, arg any) ([]*entity.Candidacy, error) {
	rows, err := r.q.Query(ctx, `SELECT `+candidacyColumns+` FROM candidacies WHERE `+where+` ORDER BY date_candidacy DESC`, arg)
	if err != nil {
		return nil, handleError(op, err)
	}
	defer rows.Close()

	var list []*entity.Candidacy
	for rows.Next() {
		c, err := scanCandidacy(rows)
		if err != nil {
			return nil, handleError("scan candidacy", err)
		}
		list = append(list, c)
	}
	return list, handleError(op, rows.Err())
}

func (r *CandidacyRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Candidacy, error) {
	return r.list(ctx, "list user candidacies", "user_id = $1", userID)
}

func (r *CandidacyRepository) FindByJobID(ctx context.Context, jobID string) ([]*entity.Candidacy, error) {
	return r.list(ctx, "list job candidacies", "job_id = $1", jobID)
}

func (r *CandidacyRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.Candidacy, error) {
	c, err := scanCandidacy(r.q.QueryRow(ctx,
		`SELECT `+candidacyColumns+` FROM candidacies WHERE user_id = $1 AND job_id = $2`, userID, jobID))
	if err != nil {
		return nil, handleError("find candidacy by user and job", err)
	}
	return c, nil
}

// Close marks the candidacy CLOSED and stamps date_closing. Closing twice keeps the first date.
func (r *CandidacyRepository) Close(ctx context.Context, id string) (*entity.Candidacy, error) {
	c, err := scanCandidacy(r.q.QueryRow(ctx, `
		UPDATE candidacies
		SET status = $1, date_closing = COALESCE(date_closing, now())
		WHERE id = $2
		RETURNING `+candidacyColumns, entity.CandidacyClosed, id))
	if err != nil {
		return nil, handleError("close candidacy", err)
	}
	return c, nil
}
