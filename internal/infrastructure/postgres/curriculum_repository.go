package postgres

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
)

var _ repository.CurriculumRepository = (*CurriculumRepository)(nil)

type CurriculumRepository struct {
	q Querier
}

func NewCurriculumRepository(q Querier) *CurriculumRepository {
	return &CurriculumRepository{q: q}
}

func (r *CurriculumRepository) Create(ctx context.Context, c *entity.Curriculum) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO curriculums (user_id, file, file_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.UserID, c.File, c.FileKey)
	return handleError("insert curriculum", row.Scan(&c.ID, &c.CreatedAt))
}

func (r *CurriculumRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Curriculum, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, file, file_key, created_at
		FROM curriculums WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, handleError("list curriculums", err)
	}
	defer rows.Close()

	var list []*entity.Curriculum
	for rows.Next() {
		c := &entity.Curriculum{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.File, &c.FileKey, &c.CreatedAt); err != nil {
			return nil, handleError("scan curriculum", err)
		}
		list = append(list, c)
	}
	return list, handleError("list curriculums", rows.Err())
}

func (r *CurriculumRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM curriculums WHERE user_id = $1`, userID).Scan(&n)
	return n, handleError("count curriculums", err)
}

func (r *CurriculumRepository) FindByKey(ctx context.Context, key string) (*entity.Curriculum, error) {
	c := &entity.Curriculum{}
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, file, file_key, created_at
		FROM curriculums WHERE file_key = $1
	`, key).Scan(&c.ID, &c.UserID, &c.File, &c.FileKey, &c.CreatedAt)
	if err != nil {
		return nil, handleError("find curriculum", err)
	}
	return c, nil
}

func (r *CurriculumRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM curriculums WHERE id = $1`, id)
	if err != nil {
		return handleError("delete curriculum", err)
	}
	return countRows(tag)
}
