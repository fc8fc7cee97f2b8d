package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

var _ repository.UserRepository = (*UserRepository)(nil)

const userColumns = `id, name, email, password, cpf, phone, main_phone, city, state, type, mail_confirm,
	recover_password_token, profile_key, profile, policies, ip, created_at, updated_at`

type UserRepository struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

func scanUser(row scanner) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CPF, &u.Phone, &u.MainPhone, &u.City, &u.State,
		&u.Type, &u.MailConfirm, &u.RecoverPasswordToken, &u.ProfileKey, &u.Profile, &u.Policies, &u.IP,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.q.QueryRow(ctx, `
		INSERT INTO users (name, email, password, cpf, phone, main_phone, city, state, type, mail_confirm, policies, ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, u.Name, u.Email, u.Password, u.CPF, u.Phone, u.MainPhone, u.City, u.State, u.Type, u.MailConfirm, u.Policies, u.IP)

	return handleError("insert user", row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt))
}

func (r *UserRepository) FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.User, int, error) {
	opts.Normalize(repository.UserOrderColumns...)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, handleError("count users", err)
	}

	rows, err := r.q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM users
		ORDER BY %s %s
		LIMIT $1 OFFSET $2
	`, userColumns, opts.OrderByColumn, opts.Order), opts.Take, opts.Skip())
	if err != nil {
		return nil, 0, handleError("list users", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, handleError("scan user", err)
		}
		list = append(list, u)
	}
	return list, total, handleError("list users", rows.Err())
}

func (r *UserRepository) findOne(ctx context.Context, op, where string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		return nil, handleError(op, err)
	}
	return u, nil
}

func (r *UserRepository) FindOneByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "find user by id", "id = $1", id)
}

func (r *UserRepository) FindOneByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "find user by email", "lower(email) = lower($1)", email)
}

func (r *UserRepository) FindOneByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	return r.findOne(ctx, "find user by cpf", "cpf = $1", cpf)
}

func (r *UserRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	return r.findOne(ctx, "find user by token", "recover_password_token = $1", token)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	tag, err := r.q.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, cpf = $3, phone = $4, main_phone = $5, city = $6, state = $7,
			profile_key = $8, profile = $9, policies = $10, updated_at = $11
		WHERE id = $12
	`, u.Name, u.Email, u.CPF, u.Phone, u.MainPhone, u.City, u.State, u.ProfileKey, u.Profile, u.Policies, u.UpdatedAt, u.ID)
	if err != nil {
		return handleError("update user", err)
	}
	return countRows(tag)
}

func (r *UserRepository) SetRecoveryToken(ctx context.Context, id, token string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET recover_password_token = $1, updated_at = now() WHERE id = $2`, token, id)
	if err != nil {
		return handleError("set user recovery token", err)
	}
	return countRows(tag)
}

func (r *UserRepository) ConsumeRecoveryToken(ctx context.Context, id, token, passwordHash string) (bool, error) {
	tag, err := r.q.Exec(ctx, `
		UPDATE users
		SET password = $1, recover_password_token = NULL, updated_at = now()
		WHERE id = $2 AND recover_password_token = $3
	`, passwordHash, id, token)
	if err != nil {
		return false, handleError("consume user recovery token", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET password = $1, updated_at = now() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return handleError("update user password", err)
	}
	return countRows(tag)
}

func (r *UserRepository) ConfirmMail(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET mail_confirm = true, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return handleError("confirm user mail", err)
	}
	return countRows(tag)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return handleError("delete user", err)
	}
	return countRows(tag)
}
