package repository

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

// UserOrderColumns are the columns a user listing may be sorted by. The first is the default.
var UserOrderColumns = []string{"created_at", "name", "email", "updated_at"}

// UserRepository defines the persistence operations for users.
// Finders return ErrNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.User, int, error)
	FindOneByID(ctx context.Context, id string) (*entity.User, error)
	FindOneByEmail(ctx context.Context, email string) (*entity.User, error)
	FindOneByCPF(ctx context.Context, cpf string) (*entity.User, error)
	FindByToken(ctx context.Context, token string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	SetRecoveryToken(ctx context.Context, id, token string) error
	// ConsumeRecoveryToken sets the password hash and clears the token only if it still matches.
	ConsumeRecoveryToken(ctx context.Context, id, token, passwordHash string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ConfirmMail(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
