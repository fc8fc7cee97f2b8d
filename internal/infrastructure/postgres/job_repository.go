package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

var _ repository.JobRepository = (*JobRepository)(nil)

const jobColumns = `id, title, description, prerequisites, benefits, type, type_contract, salary_min, salary_max,
	modality, federal_unit, city, affirmative, affirmative_type, status, company_id, created_at, updated_at`

// likeEscaper quotes LIKE wildcards; backslash is the default ESCAPE character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type JobRepository struct {
	q Querier
}

func NewJobRepository(q Querier) *JobRepository {
	return &JobRepository{q: q}
}

func scanJob(row scanner) (*entity.Job, error) {
	j := &entity.Job{}
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Prerequisites, &j.Benefits, &j.Type, &j.TypeContract,
		&j.SalaryMin, &j.SalaryMax, &j.Modality, &j.FederalUnit, &j.City, &j.Affirmative, &j.AffirmativeType,
		&j.Status, &j.CompanyID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j *entity.Job) error {
	if j.Status == "" {
		j.Status = entity.JobActive
	}
	row := r.q.QueryRow(ctx, `
		INSERT INTO jobs (title, description, prerequisites, benefits, type, type_contract, salary_min, salary_max,
			modality, federal_unit, city, affirmative, affirmative_type, status, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`, j.Title, j.Description, j.Prerequisites, j.Benefits, j.Type, j.TypeContract, j.SalaryMin, j.SalaryMax,
		j.Modality, j.FederalUnit, j.City, j.Affirmative, j.AffirmativeType, j.Status, j.CompanyID)

	return handleError("insert job", row.Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt))
}

// buildJobWhere turns a filter into a WHERE clause with positional args starting at $1.
func buildJobWhere(f repository.JobFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Modality != "" {
		add("modality = $%d", f.Modality)
	}
	if f.FederalUnit != "" {
		add("upper(federal_unit) = upper($%d)", f.FederalUnit)
	}
	if f.City != "" {
		add("lower(city) = lower($%d)", f.City)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+likeEscaper.Replace(s)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *JobRepository) FindAll(ctx context.Context, f repository.JobFilter, opts pagination.PageOptions) ([]*entity.Job, int, error) {
	opts.Normalize(repository.JobOrderColumns...)
	where, args := buildJobWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, handleError("count jobs", err)
	}

	n := len(args)
	args = append(args, opts.Take, opts.Skip())
	rows, err := r.q.Query(ctx, fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		jobColumns, where, opts.OrderByColumn, opts.Order, n+1, n+2), args...)
	if err != nil {
		return nil, 0, handleError("list jobs", err)
	}
	list, err := collectJobs(rows)
	return list, total, err
}

type jobRows interface {
	scanner
	Next() bool
	Err() error
	Close()
}

func collectJobs(rows jobRows) ([]*entity.Job, error) {
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, handleError("scan job", err)
		}
		list = append(list, j)
	}
	return list, handleError("list jobs", rows.Err())
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*entity.Job, error) {
	j, err := scanJob(r.q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, handleError("find job", err)
	}
	return j, nil
}

// FindByIDs keeps the order of ids and skips ids that no longer exist.
func (r *JobRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id::text = ANY($1)`, ids)
	if err != nil {
		return nil, handleError("find jobs by ids", err)
	}
	list, err := collectJobs(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Job, len(list))
	for _, j := range list {
		byID[j.ID] = j
	}
	out := make([]*entity.Job, 0, len(list))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *JobRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.Job, error) {
	rows, err := r.q.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, handleError("list company jobs", err)
	}
	return collectJobs(rows)
}

func (r *JobRepository) Update(ctx context.Context, j *entity.Job) error {
	j.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, `
		UPDATE jobs
		SET title = $1, description = $2, prerequisites = $3, benefits = $4, type = $5, type_contract = $6,
			salary_min = $7, salary_max = $8, modality = $9, federal_unit = $10, city = $11, affirmative = $12,
			affirmative_type = $13, updated_at = $14
		WHERE id = $15
	`, j.Title, j.Description, j.Prerequisites, j.Benefits, j.Type, j.TypeContract, j.SalaryMin, j.SalaryMax,
		j.Modality, j.FederalUnit, j.City, j.Affirmative, j.AffirmativeType, j.UpdatedAt, j.ID)
	if err != nil {
		return handleError("update job", err)
	}
	return countRows(tag)
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id string, status entity.JobStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE jobs SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return handleError("update job status", err)
	}
	return countRows(tag)
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return handleError("delete job", err)
	}
	return countRows(tag)
}
