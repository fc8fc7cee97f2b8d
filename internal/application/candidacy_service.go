package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
)

type CandidacyService struct {
	Candidacies repo.CandidacyRepository
	Jobs        repo.JobRepository
	Users       repo.UserRepository
	Companies   repo.CompanyRepository
	Mail        *MailService
	Logger      *logrus.Logger
}

func NewCandidacyService(candidacies repo.CandidacyRepository, jobs repo.JobRepository, users repo.UserRepository, companies repo.CompanyRepository, mail *MailService, logger *logrus.Logger) *CandidacyService {
	return &CandidacyService{Candidacies: candidacies, Jobs: jobs, Users: users, Companies: companies, Mail: mail, Logger: logger}
}

type ApplyInput struct {
	JobID string `json:"jobId" binding:"required,uuid"`
}

func (s *CandidacyService) Apply(ctx context.Context, userID string, in ApplyInput) (Result, error) {
	job, err := s.Jobs.FindByID(ctx, in.JobID)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgJobNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if !job.IsActive() {
		return msg(http.StatusBadRequest, MsgJobNotActive), nil
	}

	if _, err := s.Candidacies.FindByUserAndJob(ctx, userID, job.ID); err == nil {
		return msg(http.StatusBadRequest, MsgAlreadyApplied), nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}

	c := &entity.Candidacy{UserID: userID, JobID: job.ID, Status: entity.CandidacyInProgress}
	if err := s.Candidacies.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return msg(http.StatusBadRequest, MsgAlreadyApplied), nil
		}
		return Result{}, err
	}

	s.notifyCompany(ctx, job, userID)
	return created(c), nil
}

func (s *CandidacyService) notifyCompany(ctx context.Context, job *entity.Job, userID string) {
	company, err := s.Companies.FindOneByID(ctx, job.CompanyID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", job.ID).Warn("candidacy notification skipped")
		}
		return
	}
	name := ""
	if u, err := s.Users.FindOneByID(ctx, userID); err == nil {
		name = u.Name
	}
	if err := s.Mail.SendCandidacyReceived(ctx, company, job, name); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("job_id", job.ID).Warn("candidacy notification not sent")
	}
}

func (s *CandidacyService) FindByUser(ctx context.Context, userID string) (Result, error) {
	list, err := s.Candidacies.FindByUserID(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if list == nil {
		list = []*entity.Candidacy{}
	}
	return ok(list), nil
}

// FindByJob lists the applications to a job for the company that posted it.
func (s *CandidacyService) FindByJob(ctx context.Context, companyID, jobID string) (Result, error) {
	job, err := s.Jobs.FindByID(ctx, jobID)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgJobNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if job.CompanyID != companyID {
		return msg(http.StatusForbidden, MsgForbidden), nil
	}
	list, err := s.Candidacies.FindByJobID(ctx, jobID)
	if err != nil {
		return Result{}, err
	}
	if list == nil {
		list = []*entity.Candidacy{}
	}
	return ok(list), nil
}

func (s *CandidacyService) Close(ctx context.Context, companyID, id string) (Result, error) {
	c, err := s.Candidacies.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCandidacyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	job, err := s.Jobs.FindByID(ctx, c.JobID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}
	if job == nil || job.CompanyID != companyID {
		return msg(http.StatusForbidden, MsgForbidden), nil
	}
	closed, err := s.Candidacies.Close(ctx, c.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgCandidacyNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	return ok(closed), nil
}
