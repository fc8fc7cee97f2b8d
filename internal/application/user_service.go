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

type UserService struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
	Mail      *MailService
	Storage   FileStorage
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, companies repo.CompanyRepository, mail *MailService, st FileStorage, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Companies: companies, Mail: mail, Storage: st, Logger: logger}
}

type CreateUserInput struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Email           string  `json:"email" binding:"required,email"`
	CPF             *string `json:"cpf" binding:"omitempty,cpf"`
	Phone           *string `json:"phone" binding:"omitempty,max=20"`
	MainPhone       string  `json:"mainPhone" binding:"omitempty,max=20"`
	City            string  `json:"city" binding:"omitempty,max=100"`
	State           string  `json:"state" binding:"omitempty,uf"`
	Password        string  `json:"password" binding:"required,strongpwd"`
	ConfirmPassword string  `json:"confirmPassword" binding:"required"`
	Policies        bool    `json:"policies"`
}

type UpdateUserInput struct {
	Name       string  `form:"name" json:"name" binding:"omitempty,max=255"`
	Phone      *string `form:"phone" json:"phone" binding:"omitempty,max=20"`
	MainPhone  string  `form:"mainPhone" json:"mainPhone" binding:"omitempty,max=20"`
	City       string  `form:"city" json:"city" binding:"omitempty,max=100"`
	State      string  `form:"state" json:"state" binding:"omitempty,uf"`
	ProfileKey string  `form:"profileKey" json:"profileKey"`
}

type UpdateMyPasswordInput struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	Password        string `json:"password" binding:"required,strongpwd"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type RecoverPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdatePasswordByTokenInput struct {
	RecoverPasswordToken string `json:"recoverPasswordToken" binding:"required"`
	Password             string `json:"password" binding:"required,strongpwd"`
	ConfirmPassword      string `json:"confirmPassword" binding:"required"`
}

// emailTaken checks both principal kinds; an e-mail identifies at most one account.
func emailTaken(ctx context.Context, users repo.UserRepository, companies repo.CompanyRepository, email string) (bool, error) {
	if _, err := users.FindOneByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}
	if _, err := companies.FindOneByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return false, err
	}
	return false, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput, ip string) (Result, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := emailTaken(ctx, s.Users, s.Companies, email)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return msg(http.StatusNotFound, MsgEmailTaken), nil
	}

	var cpf *string
	if in.CPF != nil && *in.CPF != "" {
		digits := validation.OnlyDigits(*in.CPF)
		cpf = &digits
		if _, err := s.Users.FindOneByCPF(ctx, digits); err == nil {
			return msg(http.StatusNotFound, MsgCPFTaken), nil
		} else if !errors.Is(err, repo.ErrNotFound) {
			return Result{}, err
		}
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

	u := &entity.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		CPF:       cpf,
		Phone:     in.Phone,
		MainPhone: in.MainPhone,
		City:      in.City,
		State:     strings.ToUpper(in.State),
		Type:      entity.UserTypeUser,
		Policies:  in.Policies,
		IP:        ip,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			if repo.ConflictField(err) == "cpf" {
				return msg(http.StatusNotFound, MsgCPFTaken), nil
			}
			return msg(http.StatusNotFound, MsgEmailTaken), nil
		}
		return Result{}, err
	}

	if err := s.Mail.SendUserCreationConfirmation(ctx, u); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("user confirmation mail not sent")
	}
	return created(u.Public()), nil
}

func (s *UserService) FindAll(ctx context.Context, opts pagination.PageOptions) (Result, error) {
	opts.Normalize(repo.UserOrderColumns...)
	list, total, err := s.Users.FindAll(ctx, opts)
	if err != nil {
		return Result{}, err
	}
	out := make([]entity.PublicUser, 0, len(list))
	for _, u := range list {
		out = append(out, u.Public())
	}
	return ok(pagination.NewPage(out, opts, total)), nil
}

func (s *UserService) FindByID(ctx context.Context, id string) (Result, error) {
	u, err := s.Users.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgUserNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	return ok(u.Public()), nil
}

// Update changes the caller's profile. A new picture requires the key of the one it replaces.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput, file *Upload) (Result, error) {
	if file != nil && in.ProfileKey == "" {
		return msg(http.StatusBadRequest, MsgProfileKeyRequired), nil
	}

	u, err := s.Users.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgUserNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}

	if in.Name != "" {
		u.Name = strings.TrimSpace(in.Name)
	}
	if in.Phone != nil {
		u.Phone = in.Phone
	}
	if in.MainPhone != "" {
		u.MainPhone = in.MainPhone
	}
	if in.City != "" {
		u.City = in.City
	}
	if in.State != "" {
		u.State = strings.ToUpper(in.State)
	}

	if file != nil {
		if u.ProfileKey != "" && in.ProfileKey != u.ProfileKey {
			return msg(http.StatusBadRequest, MsgProfileKeyMismatch), nil
		}
		key, url, err := replaceProfilePicture(ctx, s.Storage, u.ID, u.ProfileKey, file)
		if err != nil {
			helpers.LogError(s.Logger, "profile picture upload failed", err, logrus.Fields{"user_id": u.ID})
			return Result{}, err
		}
		u.ProfileKey, u.Profile = key, url
	}

	if err := s.Users.Update(ctx, u); err != nil {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgUserUpdated), nil
}

func (s *UserService) UpdateMyPassword(ctx context.Context, id string, in UpdateMyPasswordInput) (Result, error) {
	u, err := s.Users.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgUserNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, in.OldPassword) {
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
	if err := s.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgPasswordChanged), nil
}

func (s *UserService) Delete(ctx context.Context, id string) (Result, error) {
	u, err := s.Users.FindOneByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgUserNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if err := s.Users.Delete(ctx, u.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return msg(http.StatusNotFound, MsgUserNotFound), nil
		}
		return Result{}, err
	}
	if u.ProfileKey != "" && s.Storage != nil {
		if err := s.Storage.Delete(ctx, u.ProfileKey); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", u.ProfileKey).Warn("orphaned profile picture")
		}
	}
	return msg(http.StatusOK, MsgUserDeleted), nil
}

// RecoverPasswordByEmail always returns the same message so callers cannot tell which e-mails have accounts.
func (s *UserService) RecoverPasswordByEmail(ctx context.Context, in RecoverPasswordInput) (Result, error) {
	done := msg(http.StatusOK, MsgRecoveryRequested)

	u, err := s.Users.FindOneByEmail(ctx, in.Email)
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
	if err := s.Users.SetRecoveryToken(ctx, u.ID, token); err != nil {
		return Result{}, err
	}
	if err := s.Mail.SendPasswordRecovery(ctx, u.Name, u.Email, token); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("recovery mail not sent")
	}
	return done, nil
}

// UpdatePasswordByToken consumes the recovery token in the same statement that stores the new hash.
func (s *UserService) UpdatePasswordByToken(ctx context.Context, in UpdatePasswordByTokenInput) (Result, error) {
	u, err := s.Users.FindByToken(ctx, in.RecoverPasswordToken)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusBadRequest, MsgUserNotFound), nil
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
	consumed, err := s.Users.ConsumeRecoveryToken(ctx, u.ID, in.RecoverPasswordToken, hash)
	if err != nil {
		return Result{}, err
	}
	if !consumed {
		return msg(http.StatusBadRequest, MsgUserNotFound), nil
	}
	return msg(http.StatusOK, MsgPasswordReset), nil
}
