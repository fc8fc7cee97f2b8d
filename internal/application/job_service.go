package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

type JobService struct {
	Jobs        repo.JobRepository
	ES          *elasticsearch.Client
	ESJobsIndex string
	Logger      *logrus.Logger
}

func NewJobService(jobs repo.JobRepository, es *elasticsearch.Client, esJobsIndex string, logger *logrus.Logger) *JobService {
	return &JobService{Jobs: jobs, ES: es, ESJobsIndex: esJobsIndex, Logger: logger}
}

type JobInput struct {
	Title           string              `json:"title" binding:"required,max=255"`
	Description     string              `json:"description" binding:"required"`
	Prerequisites   string              `json:"prerequisites" binding:"required"`
	Benefits        string              `json:"benefits"`
	Type            entity.JobType      `json:"type" binding:"required,oneof=JUNIOR TRAINEE INTERN"`
	TypeContract    entity.ContractType `json:"typeContract" binding:"required,oneof=CLT PJ OTHER"`
	SalaryMin       *float64            `json:"salaryMin" binding:"omitempty,gte=0"`
	SalaryMax       *float64            `json:"salaryMax" binding:"omitempty,gte=0"`
	Modality        entity.Modality     `json:"modality" binding:"required,oneof=HYBRID ON_SITE REMOTE"`
	FederalUnit     string              `json:"federalUnit" binding:"omitempty,uf"`
	City            string              `json:"city" binding:"omitempty,max=100"`
	Affirmative     bool                `json:"affirmative"`
	AffirmativeType string              `json:"affirmativeType" binding:"omitempty,max=100"`
}

// JobQuery is bound from GET /job.
type JobQuery struct {
	pagination.PageOptions
	Modality    entity.Modality `form:"modality" binding:"omitempty,oneof=HYBRID ON_SITE REMOTE"`
	FederalUnit string          `form:"federalUnit" binding:"omitempty,uf"`
	City        string          `form:"city"`
}

type CompanyJobsResponse struct {
	Message string        `json:"message"`
	Content []*entity.Job `json:"content"`
}

func (in JobInput) apply(j *entity.Job) {
	j.Title = strings.TrimSpace(in.Title)
	j.Description = in.Description
	j.Prerequisites = in.Prerequisites
	j.Benefits = in.Benefits
	j.Type = in.Type
	j.TypeContract = in.TypeContract
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.Modality = in.Modality
	j.FederalUnit = strings.ToUpper(in.FederalUnit)
	j.City = in.City
	j.Affirmative = in.Affirmative
	j.AffirmativeType = in.AffirmativeType
}

func (in JobInput) salaryOK() bool {
	return in.SalaryMin == nil || in.SalaryMax == nil || *in.SalaryMax >= *in.SalaryMin
}

func (s *JobService) Create(ctx context.Context, companyID string, in JobInput) (Result, error) {
	if !in.salaryOK() {
		return msg(http.StatusBadRequest, MsgSalaryRange), nil
	}
	j := &entity.Job{CompanyID: companyID, Status: entity.JobActive}
	in.apply(j)
	if err := s.Jobs.Create(ctx, j); err != nil {
		return Result{}, err
	}
	_ = s.indexJob(ctx, j)
	return created(j), nil
}

// FindAll lists active jobs only.
func (s *JobService) FindAll(ctx context.Context, q JobQuery) (Result, error) {
	opts := q.PageOptions
	opts.Normalize(repo.JobOrderColumns...)
	f := repo.JobFilter{
		Status:      entity.JobActive,
		Modality:    q.Modality,
		FederalUnit: q.FederalUnit,
		City:        q.City,
	}
	list, total, err := s.Jobs.FindAll(ctx, f, opts)
	if err != nil {
		return Result{}, err
	}
	return ok(pagination.NewPage(list, opts, total)), nil
}

func (s *JobService) FindByID(ctx context.Context, id string) (Result, error) {
	j, err := s.Jobs.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return msg(http.StatusNotFound, MsgJobNotFound), nil
	}
	if err != nil {
		return Result{}, err
	}
	return ok(j), nil
}

func (s *JobService) FindAllFromCompany(ctx context.Context, companyID string) (Result, error) {
	jobs, err := s.Jobs.FindByCompanyID(ctx, companyID)
	if err != nil {
		return Result{}, err
	}
	if jobs == nil {
		jobs = []*entity.Job{}
	}
	return ok(CompanyJobsResponse{Message: MsgCompanyJobsListed, Content: jobs}), nil
}

// owned loads a job and checks that companyID posted it. A non-nil Result means stop.
func (s *JobService) owned(ctx context.Context, companyID, id string) (*entity.Job, *Result, error) {
	j, err := s.Jobs.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		r := msg(http.StatusNotFound, MsgJobNotFound)
		return nil, &r, nil
	}
	if err != nil {
		return nil, nil, err
	}
	if j.CompanyID != companyID {
		r := msg(http.StatusForbidden, MsgJobForbidden)
		return nil, &r, nil
	}
	return j, nil, nil
}

func (s *JobService) Update(ctx context.Context, companyID, id string, in JobInput) (Result, error) {
	if !in.salaryOK() {
		return msg(http.StatusBadRequest, MsgSalaryRange), nil
	}
	j, stop, err := s.owned(ctx, companyID, id)
	if err != nil || stop != nil {
		return deref(stop), err
	}
	in.apply(j)
	if err := s.Jobs.Update(ctx, j); err != nil {
		return Result{}, err
	}
	_ = s.indexJob(ctx, j)
	return ok(j), nil
}

func (s *JobService) Archive(ctx context.Context, companyID, id string) (Result, error) {
	j, stop, err := s.owned(ctx, companyID, id)
	if err != nil || stop != nil {
		return deref(stop), err
	}
	if err := s.Jobs.UpdateStatus(ctx, j.ID, entity.JobArchived); err != nil {
		return Result{}, err
	}
	j.Status = entity.JobArchived
	_ = s.indexJob(ctx, j)
	return msg(http.StatusOK, MsgJobArchived), nil
}

func (s *JobService) Delete(ctx context.Context, companyID, id string) (Result, error) {
	j, stop, err := s.owned(ctx, companyID, id)
	if err != nil || stop != nil {
		return deref(stop), err
	}
	if err := s.Jobs.Delete(ctx, j.ID); err != nil {
		return Result{}, err
	}
	s.unindexJob(ctx, j.ID)
	return msg(http.StatusOK, MsgJobDeleted), nil
}

// Search runs a full-text query over active jobs. Without Elasticsearch it falls back to ILIKE.
func (s *JobService) Search(ctx context.Context, q string, opts pagination.PageOptions) (Result, error) {
	opts.Normalize(repo.JobOrderColumns...)
	if s.ES == nil || s.ESJobsIndex == "" {
		list, total, err := s.Jobs.FindAll(ctx, repo.JobFilter{Status: entity.JobActive, Search: q}, opts)
		if err != nil {
			return Result{}, err
		}
		return ok(pagination.NewPage(list, opts, total)), nil
	}

	ids, total, err := s.searchIDs(ctx, q, opts)
	if err != nil {
		return Result{}, err
	}
	list, err := s.Jobs.FindByIDs(ctx, ids)
	if err != nil {
		return Result{}, err
	}
	return ok(pagination.NewPage(list, opts, total)), nil
}

func deref(r *Result) Result {
	if r == nil {
		return Result{}
	}
	return *r
}

func (s *JobService) indexJob(ctx context.Context, j *entity.Job) error {
	if s.ES == nil || s.ESJobsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":            j.ID,
		"title":         j.Title,
		"description":   j.Description,
		"prerequisites": j.Prerequisites,
		"type":          j.Type,
		"modality":      j.Modality,
		"federalUnit":   j.FederalUnit,
		"city":          j.City,
		"status":        j.Status,
		"companyId":     j.CompanyID,
		"created_at":    j.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESJobsIndex, DocumentID: j.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("job_id", j.ID).Warn("es index response error")
	}
	return nil
}

func (s *JobService) unindexJob(ctx context.Context, id string) {
	if s.ES == nil || s.ESJobsIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := esapi.DeleteRequest{Index: s.ESJobsIndex, DocumentID: id}.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *JobService) searchIDs(ctx context.Context, q string, opts pagination.PageOptions) ([]string, int, error) {
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^3", "description", "prerequisites", "city"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"status": entity.JobActive},
				},
			},
		},
		"from":    opts.Skip(),
		"size":    opts.Take,
		"_source": false,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESJobsIndex),
		s.ES.Search.WithBody(bytes.NewReader(b)),
		s.ES.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, 0, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, parsed.Hits.Total.Value, nil
}
