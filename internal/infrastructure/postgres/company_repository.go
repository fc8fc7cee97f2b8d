package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

const companyColumns = `id, company_name, email, password, cnpj, about, phone, address, city, state, cep, website,
	profile_key, profile, mail_confirm, policies, recover_password_token, created_at, updated_at`

type CompanyRepository struct {
	q Querier
}

func NewCompanyRepository(q Querier) *CompanyRepository {
	return &CompanyRepository{q: q}
}

func scanCompany(row scanner) (*entity.Company, error) {
	c := &entity.Company{}
	err := row.Scan(&c.ID, &c.CompanyName, &c.Email, &c.Password, &c.CNPJ, &c.About, &c.Phone, &c.Address,
		&c.City, &c.State, &c.CEP, &c.Website, &c.ProfileKey, &c.Profile, &c.MailConfirm, &c.Policies,
		&c.RecoverPasswordToken, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO companies (company_name, email, password, cnpj, about, phone, address, city, state, cep, website, mail_confirm, policies)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, c.CompanyName, c.Email, c.Password, c.CNPJ, c.About, c.Phone, c.Address, c.City, c.State, c.CEP, c.Website,
		c.MailConfirm, c.Policies)

	return handleError("insert company", row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt))
}

func (r *CompanyRepository) FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.Company, int, error) {
	opts.Normalize(repository.CompanyOrderColumns...)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, handleError("count companies", err)
	}

	rows, err := r.q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM companies
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, companyColumns, opts.OrderByColumn, opts.Order), opts.Take, opts.Skip())
	if err != nil {
		return nil, 0, handleError("list companies", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, handleError("scan company", err)
		}
		list = append(list, c)
	}
	return list, total, handleError("list companies", rows.Err())
}

func (r *CompanyRepository) findOne(ctx context.Context, op, where string, arg any) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE `+where, arg))
	if err != nil {
		return nil, handleError(op, err)
	}
	return c, nil
}

func (r *CompanyRepository) FindOneByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.findOne(ctx, "find company by id", "id = $1", id)
}

func (r *CompanyRepository) FindOneByEmail(ctx context.Context, email string) (*entity.Company, error) {
	return r.findOne(ctx, "find company by email", "lower(email) = lower($1)", email)
}

func (r *CompanyRepository) FindOneByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	return r.findOne(ctx, "find company by cnpj", "cnpj = $1", cnpj)
}

func (r *CompanyRepository) FindByToken(ctx context.Context, token string) (*entity.Company, error) {
	return r.findOne(ctx, "find company by token", "recover_password_token = $1", token)
}

func (r *CompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	c.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, `
		UPDATE companies
		SET company_name = $1, email = $2, about = $3, phone = $4, address = $5, city = $6, state = $7, cep = $8,
			website = $9, profile_key = $10, profile = $11, policies = $12, updated_at = $13
		WHERE id = $14
	`, c.CompanyName, c.Email, c.About, c.Phone, c.Address, c.City, c.State, c.CEP, c.Website,
		c.ProfileKey, c.Profile, c.Policies, c.UpdatedAt, c.ID)
	if err != nil {
		return handleError("update company", err)
	}
	return countRows(tag)
}

func (r *CompanyRepository) SetRecoveryToken(ctx context.Context, id, token string) error {
	tag, err := r.q.Exec(ctx, `UPDATE companies SET recover_password_token = $1, updated_at = now() WHERE id = $2`, token, id)
	if err != nil {
		return handleError("set company recovery token", err)
	}
	return countRows(tag)
}

func (r *CompanyRepository) ConsumeRecoveryToken(ctx context.Context, id, token, passwordHash string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE companies
		SET password = $1, recover_password_token = NULL, updated_at = now()
		WHERE id = $2 AND recover_password_token = $3
	`, passwordHash, id, token)
	if err != nil {
		return false, handleError("consume company recovery token", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CompanyRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE companies SET password = $1, updated_at = now() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return handleError("update company password", err)
	}
	return countRows(tag)
}

func (r *CompanyRepository) ConfirmMail(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE companies SET mail_confirm = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return handleError("confirm company mail", err)
	}
	return countRows(tag)
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return handleError("delete company", err)
	}
	return countRows(tag)
}
