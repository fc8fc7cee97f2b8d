package application

import (
	"context"
	"errors"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/helpers"
)

// JWTStrategy resolves verified token claims to the caller's principal.
type JWTStrategy struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
}

func NewJWTStrategy(users repo.UserRepository, companies repo.CompanyRepository) *JWTStrategy {
	return &JWTStrategy{Users: users, Companies: companies}
}

// Validate looks the email up as a user first, then as a company.
// When both exist the user wins. Repository errors other than not-found are returned unchanged.
func (s *JWTStrategy) Validate(ctx context.Context, claims *helpers.Claims) (entity.Principal, error) {
	if claims == nil || claims.Email == "" {
		return nil, &UnauthorizedError{Message: MsgInvalidPayload}
	}

	u, err := s.Users.FindOneByEmail(ctx, claims.Email)
	if err == nil {
		return entity.MapUserToPrincipal(u), nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	c, err := s.Companies.FindOneByEmail(ctx, claims.Email)
	if err == nil {
		return entity.MapCompanyToPrincipal(c), nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	return nil, &UnauthorizedError{Message: MsgPrincipalNotFound}
}
