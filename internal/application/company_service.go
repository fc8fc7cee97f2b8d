package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/pagination"
	"github.com/soujunior/vagas-api/pkg/validation"
)

type CompanyService struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
	Mail      *MailService
	Storage   FileStorage
	Logger    *logrus.Logger
}

func NewCompanyService(users repo.UserRepository, companies repo.CompanyRepository, mail *MailService, st FileStorage, logger *logrus.Logger) *CompanyService {
	return &CompanyService{Users: users, Companies: companies, Mail: mail, Storage: st, Logger: logger}
}

type CreateCompanyInput struct {
	CompanyName     string `json:"companyName" binding:"required,max=255"`
	Email           string `json:"email" binding:"required,email"`
	CNPJ            string `json:"cnpj" binding:"required,cnpj"`
	Password        string `json:"password" binding:"required,strongpwd"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Policies        bool   `json:"policies"`
}

type UpdateCompanyInput struct {
	CompanyName string `form:"companyName" json:"companyName" binding:"omitempty,max=255"`
	About       string `form:"about" json:"about"`
	Phone       string `form:"phone" json:"phone" binding:"omitempty,max=20"`
	Address     string `form:"address" json:"address" binding:"omitempty,max=255"`
	City        string `form:"city" json:"city" binding:"omitempty,max=100"`
	State       string `form:"state" json:"state" binding:"omitempty,uf"`
	CEP         string `form:"cep" json:"cep" binding:"omitempty,max=9"`
	Website     string `form:"website" json:"website" binding:"omitempty,url"`
	ProfileKey  string `form:"profileKey" json:"profileKey"`
}

func (s *CompanyService) Create(ctx context.Context, in CreateCompanyInput) (Result, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := emailTaken(ctx, s.Users, s.Companies, email)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return msg(http.StatusNotFound, MsgEmailTaken), nil
	}

	cnpj := validation.OnlyDigits(in.CNPJ)
	if _, err := s.Companies.FindOneByCNPJ(ctx, cnpj); err == nil {
		return msg(http.StatusNotFound, MsgCNPJTaken), nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}

	if in.Password != in.ConfirmPassword {
		return msg(http.StatusBadRequest, MsgPasswordMismatch), nil
	}
	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return msg(http.StatusBadRequest, MsgPasswordTooLong), nil
	}
	if err != nil {
		return Result{}, err
	}

	c := &entity.Company{
		CompanyName: strings.TrimSpace(in.CompanyName),
		Email:       email,
		Password:    hash,
		CNPJ:        cnpj,
		Policies:    in.Policies,
	}
	if err := s.Companies.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			if repo.ConflictField(err) == "email" {
				return msg(http.StatusNotFound, MsgEmailTaken), nil
			}
			return msg(http.StatusNotFound, MsgCNPJTaken), nil
		}
		return Result{}, err
	}

	if err := s.Mail.SendCompanyConfirmation(ctx, c); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("company_id", c.ID).Warn("company confirmation mail not sent")
	}
	return created(c.Public()), nil
}

func (s *CompanyService) FindAll(ctx context.Context, opts pagination.PageOptions) (Result, error) {
	opts.Normalize(repo.CompanyOrderColumns...)
	list, total, err := s.Companies.FindAll(ctx, opts)
	if err != nil {
		return Result{}, err
	}
	out := make([]entity.PublicCompany, 0, len(list))
	for _, c := range list {
		out = append(out, c.Public())
	}
	return ok(pagination.NewPage(out, opts, total)), nil
}

func (s *CompanyService) FindByID(ctx context.Context, id string) (Result, error) {
	c, err := s.Companies.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCompanyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	return ok(c.Public()), nil
}

func (s *CompanyService) Update(ctx context.Context, id string, in UpdateCompanyInput, file *Upload) (Result, error) {
	if file != nil && in.ProfileKey == "" {
		return msg(http.StatusBadRequest, MsgProfileKeyRequired), nil
	}

	c, err := s.Companies.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCompanyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	set(&c.CompanyName, in.CompanyName)
	set(&c.About, in.About)
	set(&c.Phone, in.Phone)
	set(&c.Address, in.Address)
	set(&c.City, in.City)
	set(&c.State, strings.ToUpper(in.State))
	set(&c.CEP, validation.OnlyDigits(in.CEP))
	set(&c.Website, in.Website)

	if file != nil {
		if c.ProfileKey != "" && in.ProfileKey != c.ProfileKey {
			return msg(http.StatusBadRequest, MsgProfileKeyMismatch), nil
		}
		key, url, err := replaceProfilePicture(ctx, s.Storage, c.ID, c.ProfileKey, file)
		if err != nil {
			helpers.LogError(s.Logger, "profile picture upload failed", err, logrus.Fields{"company_id": c.ID})
			return Result{}, err
		}
		c.ProfileKey, c.Profile = key, url
	}

	if err := s.Companies.Update(ctx, c); err != nil {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgCompanyUpdated), nil
}

func (s *CompanyService) UpdateMyPassword(ctx context.Context, id string, in UpdateMyPasswordInput) (Result, error) {
	c, err := s.Companies.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCompanyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if !helpers.CompareHashAndPassword(c.Password, in.OldPassword) {
		return msg(http.StatusBadRequest, MsgOldPasswordInvalid), nil
	}
	if in.Password != in.ConfirmPassword {
		return msg(http.StatusBadRequest, MsgPasswordMismatch), nil
	}
	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return msg(http.StatusBadRequest, MsgPasswordTooLong), nil
	}
	if err != nil {
		return Result{}, err
	}
	if err := s.Companies.UpdatePassword(ctx, c.ID, hash); err != nil {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgPasswordChanged), nil
}

func (s *CompanyService) Delete(ctx context.Context, id string) (Result, error) {
	c, err := s.Companies.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCompanyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if err := s.Companies.Delete(ctx, c.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return msg(http.StatusNotFound, MsgCompanyNotFound), nil
		}
		return Result{}, err
	}
	if c.ProfileKey != "" && s.Storage != nil {
		if err := s.Storage.Delete(ctx, c.ProfileKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", c.ProfileKey).Warn("orphaned profile picture")
		}
	}
	return msg(http.StatusOK, MsgCompanyDeleted), nil
}

func (s *CompanyService) RecoverPasswordByEmail(ctx context.Context, in RecoverPasswordInput) (Result, error) {
	done := msg(http.StatusOK, MsgRecoveryRequested)

	c, err := s.Companies.FindOneByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return done, nil
	}
	if err != nil {
		return Result{}, err
	}

	token, err := helpers.GenRecoveryToken()
	if err != nil {
		return Result{}, err
	}
	if err := s.Companies.SetRecoveryToken(ctx, c.ID, token); err != nil {
		return Result{}, err
	}
	if err := s.Mail.SendPasswordRecovery(ctx, c.CompanyName, c.Email, token); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("company_id", c.ID).Warn("recovery mail not sent")
	}
	return done, nil
}

func (s *CompanyService) UpdatePasswordByToken(ctx context.Context, in UpdatePasswordByTokenInput) (Result, error) {
	c, err := s.Companies.FindByToken(ctx, in.RecoverPasswordToken)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusBadRequest, MsgCompanyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if in.Password != in.ConfirmPassword {
		return msg(http.StatusBadRequest, MsgPasswordMismatch), nil
	}

	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, helpers.ErrPasswordTooLong) {
		return msg(http.StatusBadRequest, MsgPasswordTooLong), nil
	}
	if err != nil {
		return Result{}, err
	}
	consumed, err := s.Companies.ConsumeRecoveryToken(ctx, c.ID, in.RecoverPasswordToken, hash)
	if err != nil {
		return Result{}, err
	}
	if !consumed {
		return msg(http.StatusBadRequest, MsgCompanyNotFound), nil
	}
	return msg(http.StatusOK, MsgPasswordReset), nil
}
