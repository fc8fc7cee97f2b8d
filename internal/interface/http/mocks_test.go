package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

var errBoom = errors.New("boom")

func okResult(data any) (application.Result, error) {
	return application.Result{Status: http.StatusOK, Data: data}, nil
}

type mockAuthService struct {
	loginFunc   func(ctx context.Context, in application.LoginInput) (application.Result, error)
	confirmFunc func(ctx context.Context, in application.ConfirmEmailInput) (application.Result, error)
	resendFunc  func(ctx context.Context, in application.ResendConfirmationInput) (application.Result, error)
}

func (m *mockAuthService) Login(ctx context.Context, in application.LoginInput) (application.Result, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, in)
	}
	return okResult(nil)
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, in application.ConfirmEmailInput) (application.Result, error) {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, in)
	}
	return okResult(nil)
}

func (m *mockAuthService) ResendConfirmation(ctx context.Context, in application.ResendConfirmationInput) (application.Result, error) {
	if m.resendFunc != nil {
		return m.resendFunc(ctx, in)
	}
	return okResult(nil)
}

type mockUserService struct {
	createFunc   func(ctx context.Context, in application.CreateUserInput, ip string) (application.Result, error)
	findAllFunc  func(ctx context.Context, opts pagination.PageOptions) (application.Result, error)
	findByIDFunc func(ctx context.Context, id string) (application.Result, error)
	updateFunc   func(ctx context.Context, id string, in application.UpdateUserInput, file *application.Upload) (application.Result, error)
	passwordFunc func(ctx context.Context, id string, in application.UpdateMyPasswordInput) (application.Result, error)
	deleteFunc   func(ctx context.Context, id string) (application.Result, error)
	recoverFunc  func(ctx context.Context, in application.RecoverPasswordInput) (application.Result, error)
	byTokenFunc  func(ctx context.Context, in application.UpdatePasswordByTokenInput) (application.Result, error)
}

func (m *mockUserService) Create(ctx context.Context, in application.CreateUserInput, ip string) (application.Result, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in, ip)
	}
	return okResult(nil)
}

func (m *mockUserService) FindAll(ctx context.Context, opts pagination.PageOptions) (application.Result, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, opts)
	}
	return okResult(nil)
}

func (m *mockUserService) FindByID(ctx context.Context, id string) (application.Result, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return okResult(nil)
}

func (m *mockUserService) Update(ctx context.Context, id string, in application.UpdateUserInput, file *application.Upload) (application.Result, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in, file)
	}
	return okResult(nil)
}

func (m *mockUserService) UpdateMyPassword(ctx context.Context, id string, in application.UpdateMyPasswordInput) (application.Result, error) {
	if m.passwordFunc != nil {
		return m.passwordFunc(ctx, id, in)
	}
	return okResult(nil)
}

func (m *mockUserService) Delete(ctx context.Context, id string) (application.Result, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return okResult(nil)
}

func (m *mockUserService) RecoverPasswordByEmail(ctx context.Context, in application.RecoverPasswordInput) (application.Result, error) {
	if m.recoverFunc != nil {
		return m.recoverFunc(ctx, in)
	}
	return okResult(nil)
}

func (m *mockUserService) UpdatePasswordByToken(ctx context.Context, in application.UpdatePasswordByTokenInput) (application.Result, error) {
	if m.byTokenFunc != nil {
		return m.byTokenFunc(ctx, in)
	}
	return okResult(nil)
}

type mockJobService struct {
	createFunc  func(ctx context.Context, companyID string, in application.JobInput) (application.Result, error)
	findAllFunc func(ctx context.Context, q application.JobQuery) (application.Result, error)
	searchFunc  func(ctx context.Context, q string, opts pagination.PageOptions) (application.Result, error)
	deleteFunc  func(ctx context.Context, companyID, id string) (application.Result, error)
	calls       int
}

func (m *mockJobService) Create(ctx context.Context, companyID string, in application.JobInput) (application.Result, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, companyID, in)
	}
	return okResult(nil)
}

func (m *mockJobService) FindAll(ctx context.Context, q application.JobQuery) (application.Result, error) {
	m.calls++
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, q)
	}
	return okResult(nil)
}

func (m *mockJobService) FindByID(ctx context.Context, id string) (application.Result, error) {
	m.calls++
	return okResult(map[string]string{"id": id})
}

func (m *mockJobService) FindAllFromCompany(ctx context.Context, companyID string) (application.Result, error) {
	m.calls++
	return okResult(map[string]string{"companyId": companyID})
}

func (m *mockJobService) Update(ctx context.Context, companyID, id string, in application.JobInput) (application.Result, error) {
	m.calls++
	return okResult(nil)
}

func (m *mockJobService) Archive(ctx context.Context, companyID, id string) (application.Result, error) {
	m.calls++
	return okResult(nil)
}

func (m *mockJobService) Delete(ctx context.Context, companyID, id string) (application.Result, error) {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, companyID, id)
	}
	return okResult(nil)
}

func (m *mockJobService) Search(ctx context.Context, q string, opts pagination.PageOptions) (application.Result, error) {
	m.calls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, q, opts)
	}
	return okResult(nil)
}

type mockCurriculumService struct {
	uploadFunc func(ctx context.Context, userID string, file *application.Upload) (application.Result, error)
	deleteFunc func(ctx context.Context, userID, key string) (application.Result, error)
	calls      int
}

func (m *mockCurriculumService) FindAll(ctx context.Context, userID string) (application.Result, error) {
	m.calls++
	return okResult([]string{})
}

func (m *mockCurriculumService) Upload(ctx context.Context, userID string, file *application.Upload) (application.Result, error) {
	m.calls++
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, userID, file)
	}
	return okResult(nil)
}

func (m *mockCurriculumService) Delete(ctx context.Context, userID, key string) (application.Result, error) {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, key)
	}
	return okResult(nil)
}

type mockCandidacyService struct {
	applyFunc     func(ctx context.Context, userID string, in application.ApplyInput) (application.Result, error)
	findByJobFunc func(ctx context.Context, companyID, jobID string) (application.Result, error)
	closeFunc     func(ctx context.Context, companyID, id string) (application.Result, error)
}

func (m *mockCandidacyService) Apply(ctx context.Context, userID string, in application.ApplyInput) (application.Result, error) {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, userID, in)
	}
	return okResult(nil)
}

func (m *mockCandidacyService) FindByUser(ctx context.Context, userID string) (application.Result, error) {
	return okResult([]string{})
}

func (m *mockCandidacyService) FindByJob(ctx context.Context, companyID, jobID string) (application.Result, error) {
	if m.findByJobFunc != nil {
		return m.findByJobFunc(ctx, companyID, jobID)
	}
	return okResult(nil)
}

func (m *mockCandidacyService) Close(ctx context.Context, companyID, id string) (application.Result, error) {
	if m.closeFunc != nil {
		return m.closeFunc(ctx, companyID, id)
	}
	return okResult(nil)
}

type mockSavedJobService struct {
	saveFunc   func(ctx context.Context, userID string, in application.SaveJobInput) (application.Result, error)
	deleteFunc func(ctx context.Context, userID, id string) (application.Result, error)
}

func (m *mockSavedJobService) Save(ctx context.Context, userID string, in application.SaveJobInput) (application.Result, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, userID, in)
	}
	return okResult(nil)
}

func (m *mockSavedJobService) FindAll(ctx context.Context, userID string) (application.Result, error) {
	return okResult([]string{})
}

func (m *mockSavedJobService) Delete(ctx context.Context, userID, id string) (application.Result, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, id)
	}
	return okResult(nil)
}

type mockCompanyService struct {
	createFunc func(ctx context.Context, in application.CreateCompanyInput) (application.Result, error)
	updateFunc func(ctx context.Context, id string, in application.UpdateCompanyInput, file *application.Upload) (application.Result, error)
	deleteFunc func(ctx context.Context, id string) (application.Result, error)
	calls      int
}

func (m *mockCompanyService) Create(ctx context.Context, in application.CreateCompanyInput) (application.Result, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return okResult(nil)
}

func (m *mockCompanyService) FindAll(ctx context.Context, opts pagination.PageOptions) (application.Result, error) {
	m.calls++
	return okResult(pagination.NewPage([]string{}, opts, 0))
}

func (m *mockCompanyService) FindByID(ctx context.Context, id string) (application.Result, error) {
	m.calls++
	return okResult(map[string]string{"id": id})
}

func (m *mockCompanyService) Update(ctx context.Context, id string, in application.UpdateCompanyInput, file *application.Upload) (application.Result, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in, file)
	}
	return okResult(nil)
}

func (m *mockCompanyService) UpdateMyPassword(ctx context.Context, id string, in application.UpdateMyPasswordInput) (application.Result, error) {
	m.calls++
	return okResult(nil)
}

func (m *mockCompanyService) Delete(ctx context.Context, id string) (application.Result, error) {
	m.calls++
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return okResult(nil)
}

func (m *mockCompanyService) RecoverPasswordByEmail(ctx context.Context, in application.RecoverPasswordInput) (application.Result, error) {
	m.calls++
	return okResult(nil)
}

func (m *mockCompanyService) UpdatePasswordByToken(ctx context.Context, in application.UpdatePasswordByTokenInput) (application.Result, error) {
	m.calls++
	return okResult(nil)
}
