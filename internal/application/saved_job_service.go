package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
)

type SavedJobService struct {
	Saved repo.SavedJobRepository
	Jobs  repo.JobRepository
}

func NewSavedJobService(saved repo.SavedJobRepository, jobs repo.JobRepository) *SavedJobService {
	return &SavedJobService{Saved: saved, Jobs: jobs}
}

type SaveJobInput struct {
	JobID string `json:"jobId" binding:"required,uuid"`
}

// SavedJobView pairs a bookmark with the job it points to.
type SavedJobView struct {
	*entity.SavedJob
	Job *entity.Job `json:"job,omitempty"`
}

func (s *SavedJobService) Save(ctx context.Context, userID string, in SaveJobInput) (Result, error) {
	if _, err := s.Jobs.FindByID(ctx, in.JobID); errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgJobNotFound), nil
	} else if err != nil {
		return Result{}, err
	}

	if _, err := s.Saved.FindByUserAndJob(ctx, userID, in.JobID); err == nil {
		return msg(http.StatusConflict, MsgSavedJobExists), nil
	} else if !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}

	sj := &entity.SavedJob{UserID: userID, JobID: in.JobID}
	if err := s.Saved.Create(ctx, sj); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return msg(http.StatusConflict, MsgSavedJobExists), nil
		}
		return Result{}, err
	}
	return created(sj), nil
}

func (s *SavedJobService) FindAll(ctx context.Context, userID string) (Result, error) {
	saved, err := s.Saved.FindByUserID(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	ids := make([]string, 0, len(saved))
	for _, sj := range saved {
		ids = append(ids, sj.JobID)
	}
	jobs, err := s.Jobs.FindByIDs(ctx, ids)
	if err != nil {
		return Result{}, err
	}
	byID := make(map[string]*entity.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}

	out := make([]SavedJobView, 0, len(saved))
	for _, sj := range saved {
		out = append(out, SavedJobView{SavedJob: sj, Job: byID[sj.JobID]})
	}
	return ok(out), nil
}

func (s *SavedJobService) Delete(ctx context.Context, userID, id string) (Result, error) {
	sj, err := s.Saved.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgSavedJobNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	if sj.UserID != userID {
		return msg(http.StatusNotFound, MsgSavedJobNotFound), nil
	}
	if err := s.Saved.Delete(ctx, sj.ID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return Result{}, err
	}
	return msg(http.StatusOK, MsgSavedJobDeleted), nil
}
