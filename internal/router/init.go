package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/container"
	pginfra "github.com/soujunior/vagas-api/internal/infrastructure/postgres"
	handlers "github.com/soujunior/vagas-api/internal/interface/http"
	"github.com/soujunior/vagas-api/internal/interface/middleware"
	"github.com/soujunior/vagas-api/internal/router/modules"
)

type repos struct {
	users       *pginfra.UserRepository
	companies   *pginfra.CompanyRepository
	jobs        *pginfra.JobRepository
	curricula   *pginfra.CurriculumRepository
	candidacies *pginfra.CandidacyRepository
	savedJobs   *pginfra.SavedJobRepository
}

func buildRepos() repos {
	pool := container.GetPGPool()
	return repos{
		users:       pginfra.NewUserRepository(pool),
		companies:   pginfra.NewCompanyRepository(pool),
		jobs:        pginfra.NewJobRepository(pool),
		curricula:   pginfra.NewCurriculumRepository(pool),
		candidacies: pginfra.NewCandidacyRepository(pool),
		savedJobs:   pginfra.NewSavedJobRepository(pool),
	}
}

// fileStorage keeps an unset bucket as a nil interface rather than a typed nil.
func fileStorage() application.FileStorage {
	if s := container.GetGCSStorage(); s != nil {
		return s
	}
	return nil
}

func mailPublisher() application.Publisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}

// InitModules builds repositories, services and handlers from the container
// and registers every feature module. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	rp := buildRepos()

	mail := application.NewMailService(cfg, mailPublisher(), container.GetRedis(), logger)
	strategy := application.NewJWTStrategy(rp.users, rp.companies)

	authSvc := application.NewAuthService(rp.users, rp.companies, container.GetJWT(), mail, logger)
	userSvc := application.NewUserService(rp.users, rp.companies, mail, fileStorage(), logger)
	companySvc := application.NewCompanyService(rp.users, rp.companies, mail, fileStorage(), logger)
	jobSvc := application.NewJobService(rp.jobs, container.GetES(), cfg.ESJobsIndex, logger)
	curriculumSvc := application.NewCurriculumService(rp.curricula, fileStorage(), cfg.MaxCurriculaPerUser, cfg.UploadMaxBytes, logger)
	candidacySvc := application.NewCandidacyService(rp.candidacies, rp.jobs, rp.users, rp.companies, mail, logger)
	savedJobSvc := application.NewSavedJobService(rp.savedJobs, rp.jobs)

	auth := middleware.Auth(container.GetJWT(), strategy, logger)
	perPrincipal := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByPrincipal(), middleware.AllowAdmin())
	guard := modules.Guard{Auth: []gin.HandlerFunc{auth, perPrincipal}}

	r.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), guard),
		modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), guard),
		modules.NewCompanyModule(handlers.NewCompanyHandler(companySvc, logger), guard),
		modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger), guard),
		modules.NewCurriculumModule(handlers.NewCurriculumHandler(curriculumSvc, logger), guard),
		modules.NewCandidacyModule(handlers.NewCandidacyHandler(candidacySvc, logger), guard),
		modules.NewSavedJobModule(handlers.NewSavedJobHandler(savedJobSvc, logger), guard),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
