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
)

const (
	LoginTypeUser    = "USER"
	LoginTypeCompany = "COMPANY"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=USER COMPANY"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	Info  entity.Principal `json:"info"`
}

type AuthService struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
	JWT       *helpers.JWTManager
	Mail      *MailService
	Logger    *logrus.Logger
}

func NewAuthService(users repo.UserRepository, companies repo.CompanyRepository, jwt *helpers.JWTManager, mail *MailService, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Companies: companies, JWT: jwt, Mail: mail, Logger: logger}
}

// account is the part of User and Company that login needs.
type account struct {
	email     string
	hash      string
	confirmed bool
	principal entity.Principal
}

func (s *AuthService) lookup(ctx context.Context, kind, email string) (*account, error) {
	if kind == LoginTypeCompany {
		c, err := s.Companies.FindOneByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		return &account{email: c.Email, hash: c.Password, confirmed: c.MailConfirm, principal: entity.MapCompanyToPrincipal(c)}, nil
	}
	u, err := s.Users.FindOneByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &account{email: u.Email, hash: u.Password, confirmed: u.MailConfirm, principal: entity.MapUserToPrincipal(u)}, nil
}

// Login authenticates against the repository of the declared kind only.
// Unknown and unconfirmed accounts get the same answer.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Result, error) {
	acc, err := s.lookup(ctx, strings.ToUpper(in.Type), in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusBadRequest, MsgEmailNotValidated), nil
	}
	if err != nil {
		return Result{}, err
	}
	if !acc.confirmed {
		return msg(http.StatusBadRequest, MsgEmailNotValidated), nil
	}
	if !helpers.CompareHashAndPassword(acc.hash, in.Password) {
		return msg(http.StatusBadRequest, MsgInvalidCredentials), nil
	}

	token, _, err := s.JWT.Sign(acc.email)
	if err != nil {
		helpers.LogError(s.Logger, "sign token failed", err, logrus.Fields{"email": acc.email})
		return Result{}, err
	}
	return ok(LoginResponse{Token: token, Info: acc.principal}), nil
}

type ConfirmEmailInput struct {
	Token string `json:"token" binding:"required"`
}

// ConfirmEmail consumes a confirmation token and flips mailConfirm on its owner.
func (s *AuthService) ConfirmEmail(ctx context.Context, in ConfirmEmailInput) (Result, error) {
	kind, id, found, err := s.Mail.ConsumeConfirmToken(ctx, in.Token)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return msg(http.StatusBadRequest, MsgConfirmTokenInvalid), nil
	}

	switch kind {
	case entity.PrincipalUser:
		err = s.Users.ConfirmMail(ctx, id)
	case entity.PrincipalCompany:
		err = s.Companies.ConfirmMail(ctx, id)
	default:
		return msg(http.StatusBadRequest, MsgConfirmTokenInvalid), nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusBadRequest, MsgConfirmTokenInvalid), nil
	}
	if err != nil {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgEmailConfirmed), nil
}

type ResendConfirmationInput struct {
	Email string `json:"email" binding:"required,email"`
	Type  string `json:"type" binding:"required,oneof=USER COMPANY"`
}

// ResendConfirmation answers the same way whether or not a mail was sent.
func (s *AuthService) ResendConfirmation(ctx context.Context, in ResendConfirmationInput) (Result, error) {
	done := msg(http.StatusOK, MsgConfirmationResent)

	var sendErr error
	if strings.ToUpper(in.Type) == LoginTypeCompany {
		c, err := s.Companies.FindOneByEmail(ctx, in.Email)
		if errors.Is(err, repo.ErrNotFound) {
			return done, nil
		}
		if err != nil {
			return Result{}, err
		}
		if c.MailConfirm {
			return done, nil
		}
		sendErr = s.Mail.SendCompanyConfirmation(ctx, c)
	} else {
		u, err := s.Users.FindOneByEmail(ctx, in.Email)
		if errors.Is(err, repo.ErrNotFound) {
			return done, nil
		}
		if err != nil {
			return Result{}, err
		}
		if u.MailConfirm {
			return done, nil
		}
		sendErr = s.Mail.SendUserCreationConfirmation(ctx, u)
	}
	if sendErr != nil && s.Logger != nil {
		s.Logger.WithError(sendErr).WithField("email", in.Email).Warn("resend confirmation failed")
	}
	return done, nil
}
