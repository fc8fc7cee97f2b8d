package application

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/config"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/mailer"
	mailtpl "github.com/soujunior/vagas-api/pkg/mailer/templates"
)

// Publisher puts a message on the email queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

var ErrConfirmTokensDisabled = errors.New("confirmation tokens require redis")

// MailService enqueues emails for the worker and owns the e-mail confirmation tokens.
type MailService struct {
	Cfg       *config.Config
	Publisher Publisher
	Redis     *redis.Client
	Logger    *logrus.Logger
}

func NewMailService(cfg *config.Config, pub Publisher, rdb *redis.Client, logger *logrus.Logger) *MailService {
	return &MailService{Cfg: cfg, Publisher: pub, Redis: rdb, Logger: logger}
}

func confirmTokenKey(token string) string {
	return "mail:confirm:token:" + token
}

func (s *MailService) enqueue(ctx context.Context, job mailer.EmailJob) error {
	helpers.PrepareEmailJob(&job)
	if !s.Cfg.MailSendEnabled || s.Publisher == nil {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"to": job.To, "subject": job.Subject, "data": job.Data}).Debug("mail sending disabled, email dropped")
		}
		return nil
	}
	if err := s.Publisher.PublishJSON(ctx, job); err != nil {
		helpers.LogError(s.Logger, "enqueue email failed", err, logrus.Fields{"to": job.To, "template": job.Template})
		return err
	}
	return nil
}

func withToken(base, token string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "token=" + url.QueryEscape(token)
}

// issueConfirmToken stores kind:id under a random token for ConfirmTokenTTL.
func (s *MailService) issueConfirmToken(ctx context.Context, kind, id string) (string, error) {
	if s.Redis == nil {
		return "", ErrConfirmTokensDisabled
	}
	tok, err := helpers.GenURLToken(32)
	if err != nil {
		return "", err
	}
	if err := helpers.RedisSet(ctx, s.Redis, confirmTokenKey(tok), kind+":"+id, s.Cfg.ConfirmTokenTTL); err != nil {
		return "", err
	}
	return tok, nil
}

// ConsumeConfirmToken returns the principal kind and id bound to token and invalidates it.
func (s *MailService) ConsumeConfirmToken(ctx context.Context, token string) (kind, id string, found bool, err error) {
	if s.Redis == nil {
		return "", "", false, ErrConfirmTokensDisabled
	}
	v, found, err := helpers.RedisTake(ctx, s.Redis, confirmTokenKey(token))
	if err != nil || !found {
		return "", "", false, err
	}
	kind, id, ok := strings.Cut(v, ":")
	if !ok {
		return "", "", false, nil
	}
	return kind, id, true, nil
}

func (s *MailService) sendConfirmation(ctx context.Context, kind, id, name, email string) error {
	if s == nil || s.Cfg == nil {
		return nil
	}
	tok, err := s.issueConfirmToken(ctx, kind, id)
	if err != nil {
		helpers.LogError(s.Logger, "issue confirmation token failed", err, logrus.Fields{"kind": kind, "id": id})
		return err
	}
	data := mailtpl.NewConfirmEmailData(s.Cfg, name, email, withToken(s.Cfg.ConfirmEmailURL, tok), mailtpl.WithExpiresIn(s.Cfg.ConfirmTokenTTL))
	return s.enqueue(ctx, mailer.EmailJob{To: email, Template: mailtpl.ConfirmEmail, Data: data})
}

func (s *MailService) SendUserCreationConfirmation(ctx context.Context, u *entity.User) error {
	return s.sendConfirmation(ctx, entity.PrincipalUser, u.ID, u.Name, u.Email)
}

func (s *MailService) SendCompanyConfirmation(ctx context.Context, c *entity.Company) error {
	return s.sendConfirmation(ctx, entity.PrincipalCompany, c.ID, c.CompanyName, c.Email)
}

func (s *MailService) SendPasswordRecovery(ctx context.Context, name, email, token string) error {
	if s == nil || s.Cfg == nil {
		return nil
	}
	data := mailtpl.NewRecoverPasswordData(s.Cfg, name, email, withToken(s.Cfg.ResetPasswordURL, token), mailtpl.WithTime(time.Now()))
	return s.enqueue(ctx, mailer.EmailJob{To: email, Template: mailtpl.RecoverPassword, Data: data})
}

func (s *MailService) SendCandidacyReceived(ctx context.Context, c *entity.Company, j *entity.Job, candidate string) error {
	if s == nil || s.Cfg == nil {
		return nil
	}
	data := mailtpl.NewCandidacyReceivedData(s.Cfg, c.CompanyName, c.Email, j.Title, candidate, mailtpl.WithTime(time.Now()))
	return s.enqueue(ctx, mailer.EmailJob{To: c.Email, Template: mailtpl.CandidacyReceived, Data: data})
}
