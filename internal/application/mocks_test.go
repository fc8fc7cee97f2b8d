package application

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

// Unset finders answer repo.ErrNotFound; unset writers succeed.
// calls counts every invocation by method name.

type callLog struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *callLog) hit(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = map[string]int{}
	}
	c.calls[name]++
}

func (c *callLog) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

// =============================================================================
// Users
// =============================================================================

type mockUserRepository struct {
	callLog
	createFunc               func(ctx context.Context, u *entity.User) error
	findAllFunc              func(ctx context.Context, opts pagination.PageOptions) ([]*entity.User, int, error)
	findOneByIDFunc          func(ctx context.Context, id string) (*entity.User, error)
	findOneByEmailFunc       func(ctx context.Context, email string) (*entity.User, error)
	findOneByCPFFunc         func(ctx context.Context, cpf string) (*entity.User, error)
	findByTokenFunc          func(ctx context.Context, token string) (*entity.User, error)
	updateFunc               func(ctx context.Context, u *entity.User) error
	setRecoveryTokenFunc     func(ctx context.Context, id, token string) error
	consumeRecoveryTokenFunc func(ctx context.Context, id, token, hash string) (bool, error)
	updatePasswordFunc       func(ctx context.Context, id, hash string) error
	confirmMailFunc          func(ctx context.Context, id string) error
	deleteFunc               func(ctx context.Context, id string) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	m.hit("Create")
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	u.ID = "user-new"
	return nil
}

func (m *mockUserRepository) FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.User, int, error) {
	m.hit("FindAll")
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) FindOneByID(ctx context.Context, id string) (*entity.User, error) {
	m.hit("FindOneByID")
	if m.findOneByIDFunc != nil {
		return m.findOneByIDFunc(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) FindOneByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.hit("FindOneByEmail")
	if m.findOneByEmailFunc != nil {
		return m.findOneByEmailFunc(ctx, email)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) FindOneByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	m.hit("FindOneByCPF")
	if m.findOneByCPFFunc != nil {
		return m.findOneByCPFFunc(ctx, cpf)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) FindByToken(ctx context.Context, token string) (*entity.User, error) {
	m.hit("FindByToken")
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	m.hit("Update")
	if m.updateFunc != nil {
		return m.updateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) SetRecoveryToken(ctx context.Context, id, token string) error {
	m.hit("SetRecoveryToken")
	if m.setRecoveryTokenFunc != nil {
		return m.setRecoveryTokenFunc(ctx, id, token)
	}
	return nil
}

func (m *mockUserRepository) ConsumeRecoveryToken(ctx context.Context, id, token, hash string) (bool, error) {
	m.hit("ConsumeRecoveryToken")
	if m.consumeRecoveryTokenFunc != nil {
		return m.consumeRecoveryTokenFunc(ctx, id, token, hash)
	}
	return true, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	m.hit("UpdatePassword")
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (m *mockUserRepository) ConfirmMail(ctx context.Context, id string) error {
	m.hit("ConfirmMail")
	if m.confirmMailFunc != nil {
		return m.confirmMailFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	m.hit("Delete")
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// =============================================================================
// Companies
// =============================================================================

type mockCompanyRepository struct {
	callLog
	createFunc               func(ctx context.Context, c *entity.Company) error
	findAllFunc              func(ctx context.Context, opts pagination.PageOptions) ([]*entity.Company, int, error)
	findOneByIDFunc          func(ctx context.Context, id string) (*entity.Company, error)
	findOneByEmailFunc       func(ctx context.Context, email string) (*entity.Company, error)
	findOneByCNPJFunc        func(ctx context.Context, cnpj string) (*entity.Company, error)
	findByTokenFunc          func(ctx context.Context, token string) (*entity.Company, error)
	updateFunc               func(ctx context.Context, c *entity.Company) error
	consumeRecoveryTokenFunc func(ctx context.Context, id, token, hash string) (bool, error)
	confirmMailFunc          func(ctx context.Context, id string) error
	deleteFunc               func(ctx context.Context, id string) error
}

func (m *mockCompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	m.hit("Create")
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	c.ID = "company-new"
	return nil
}

func (m *mockCompanyRepository) FindAll(ctx context.Context, opts pagination.PageOptions) ([]*entity.Company, int, error) {
	m.hit("FindAll")
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *mockCompanyRepository) FindOneByID(ctx context.Context, id string) (*entity.Company, error) {
	m.hit("FindOneByID")
	if m.findOneByIDFunc != nil {
		return m.findOneByIDFunc(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockCompanyRepository) FindOneByEmail(ctx context.Context, email string) (*entity.Company, error) {
	m.hit("FindOneByEmail")
	if m.findOneByEmailFunc != nil {
		return m.findOneByEmailFunc(ctx, email)
	}
	return nil, repo.ErrNotFound
}

func (m *mockCompanyRepository) FindOneByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error) {
	m.hit("FindOneByCNPJ")
	if m.findOneByCNPJFunc != nil {
		return m.findOneByCNPJFunc(ctx, cnpj)
	}
	return nil, repo.ErrNotFound
}

func (m *mockCompanyRepository) FindByToken(ctx context.Context, token string) (*entity.Company, error) {
	m.hit("FindByToken")
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, repo.ErrNotFound
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *entity.Company) error {
	m.hit("Update")
	if m.updateFunc != nil {
		return m.updateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) SetRecoveryToken(ctx context.Context, id, token string) error {
	m.hit("SetRecoveryToken")
	return nil
}

func (m *mockCompanyRepository) ConsumeRecoveryToken(ctx context.Context, id, token, hash string) (bool, error) {
	m.hit("ConsumeRecoveryToken")
	if m.consumeRecoveryTokenFunc != nil {
		return m.consumeRecoveryTokenFunc(ctx, id, token, hash)
	}
	return true, nil
}

func (m *mockCompanyRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	m.hit("UpdatePassword")
	return nil
}

func (m *mockCompanyRepository) ConfirmMail(ctx context.Context, id string) error {
	m.hit("ConfirmMail")
	if m.confirmMailFunc != nil {
		return m.confirmMailFunc(ctx, id)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, id string) error {
	m.hit("Delete")
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// =============================================================================
// Jobs
// =============================================================================

type mockJobRepository struct {
	callLog
	jobs              map[string]*entity.Job
	findAllFunc       func(ctx context.Context, f repo.JobFilter, opts pagination.PageOptions) ([]*entity.Job, int, error)
	findByCompanyFunc func(ctx context.Context, companyID string) ([]*entity.Job, error)
}

func (m *mockJobRepository) Create(ctx context.Context, j *entity.Job) error {
	m.hit("Create")
	j.ID = "job-new"
	if m.jobs == nil {
		m.jobs = map[string]*entity.Job{}
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepository) FindAll(ctx context.Context, f repo.JobFilter, opts pagination.PageOptions) ([]*entity.Job, int, error) {
	m.hit("FindAll")
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, f, opts)
	}
	return nil, 0, nil
}

func (m *mockJobRepository) FindByID(ctx context.Context, id string) (*entity.Job, error) {
	m.hit("FindByID")
	if j, ok := m.jobs[id]; ok {
		cp := *j
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (m *mockJobRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Job, error) {
	m.hit("FindByIDs")
	var out []*entity.Job
	for _, id := range ids {
		if j, ok := m.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.Job, error) {
	m.hit("FindByCompanyID")
	if m.findByCompanyFunc != nil {
		return m.findByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *mockJobRepository) Update(ctx context.Context, j *entity.Job) error {
	m.hit("Update")
	m.jobs[j.ID] = j
	return nil
}

func (m *mockJobRepository) UpdateStatus(ctx context.Context, id string, status entity.JobStatus) error {
	m.hit("UpdateStatus")
	if j, ok := m.jobs[id]; ok {
		j.Status = status
		return nil
	}
	return repo.ErrNotFound
}

func (m *mockJobRepository) Delete(ctx context.Context, id string) error {
	m.hit("Delete")
	delete(m.jobs, id)
	return nil
}

// =============================================================================
// Curricula, candidacies, saved jobs
// =============================================================================

type mockCurriculumRepository struct {
	callLog
	items []*entity.Curriculum
}

func (m *mockCurriculumRepository) Create(ctx context.Context, c *entity.Curriculum) error {
	m.hit("Create")
	c.ID = "cv-new"
	m.items = append(m.items, c)
	return nil
}

func (m *mockCurriculumRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Curriculum, error) {
	m.hit("FindByUserID")
	var out []*entity.Curriculum
	for _, c := range m.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCurriculumRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	list, _ := m.FindByUserID(ctx, userID)
	return len(list), nil
}

func (m *mockCurriculumRepository) FindByKey(ctx context.Context, key string) (*entity.Curriculum, error) {
	m.hit("FindByKey")
	for _, c := range m.items {
		if c.FileKey == key {
			return c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockCurriculumRepository) Delete(ctx context.Context, id string) error {
	m.hit("Delete")
	for i, c := range m.items {
		if c.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type mockCandidacyRepository struct {
	callLog
	items []*entity.Candidacy
}

func (m *mockCandidacyRepository) Create(ctx context.Context, c *entity.Candidacy) error {
	m.hit("Create")
	c.ID = "cand-new"
	m.items = append(m.items, c)
	return nil
}

func (m *mockCandidacyRepository) FindByID(ctx context.Context, id string) (*entity.Candidacy, error) {
	for _, c := range m.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockCandidacyRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Candidacy, error) {
	var out []*entity.Candidacy
	for _, c := range m.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCandidacyRepository) FindByJobID(ctx context.Context, jobID string) ([]*entity.Candidacy, error) {
	var out []*entity.Candidacy
	for _, c := range m.items {
		if c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCandidacyRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.Candidacy, error) {
	for _, c := range m.items {
		if c.UserID == userID && c.JobID == jobID {
			return c, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockCandidacyRepository) Close(ctx context.Context, id string) (*entity.Candidacy, error) {
	m.hit("Close")
	c, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = entity.CandidacyClosed
	return c, nil
}

type mockSavedJobRepository struct {
	callLog
	items []*entity.SavedJob
}

func (m *mockSavedJobRepository) Create(ctx context.Context, s *entity.SavedJob) error {
	m.hit("Create")
	s.ID = "saved-new"
	m.items = append(m.items, s)
	return nil
}

func (m *mockSavedJobRepository) FindByID(ctx context.Context, id string) (*entity.SavedJob, error) {
	for _, s := range m.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockSavedJobRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.SavedJob, error) {
	var out []*entity.SavedJob
	for _, s := range m.items {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSavedJobRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*entity.SavedJob, error) {
	for _, s := range m.items {
		if s.UserID == userID && s.JobID == jobID {
			return s, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *mockSavedJobRepository) Delete(ctx context.Context, id string) error {
	m.hit("Delete")
	for i, s := range m.items {
		if s.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

// =============================================================================
// Storage and queue
// =============================================================================

type mockStorage struct {
	callLog
	uploaded map[string][]byte
	deleted  []string
	err      error
}

func (m *mockStorage) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	m.hit("Upload")
	if m.err != nil {
		return "", m.err
	}
	b, _ := io.ReadAll(r)
	if m.uploaded == nil {
		m.uploaded = map[string][]byte{}
	}
	m.uploaded[key] = b
	return "https://storage.test/" + key, nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.hit("Delete")
	m.deleted = append(m.deleted, key)
	return nil
}

type mockPublisher struct {
	mu   sync.Mutex
	msgs []any
	err  error
}

func (m *mockPublisher) PublishJSON(ctx context.Context, body any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, body)
	return nil
}

func (m *mockPublisher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

func newUpload(name string, body string) *Upload {
	return &Upload{Filename: name, ContentType: "application/octet-stream", Size: int64(len(body)), Body: bytes.NewBufferString(body)}
}
