package repository

import (
	"context"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

var CompanyOrderColumns = []string{"created_at", "company_name", "email", "updated_at"}

type CompanyRepository interface {
	Create(ctx context.Context, c *entity.Company) error
	FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.Company, int, error)
	FindOneByID(ctx context.Context, id string) (*entity.Company, error)
	FindOneByEmail(ctx context.Context, email string) (*entity.Company, error)
	FindOneByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	FindByToken(ctx context.Context, token string) (*entity.Company, error)
	Update(ctx context.Context, c *entity.Company) error
	SetRecoveryToken(ctx context.Context, id, token string) error
	ConsumeRecoveryToken(ctx context.Context, id, token, passwordHash string) (bool, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	ConfirmMail(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
