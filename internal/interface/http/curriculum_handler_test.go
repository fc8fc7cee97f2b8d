package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soujunior/vagas-api/internal/application"
	"github.com/soujunior/vagas-api/internal/domain/entity"
	"github.com/soujunior/vagas-api/pkg/helpers"
)

func curriculumRouter(p entity.Principal, svc *mockCurriculumService) http.Handler {
	h := NewCurriculumHandler(svc, helpers.NewNopLogger())
	r := newRouter(p)
	r.GET("/api/curriculum", h.FindAll)
	r.POST("/api/curriculum/upload", h.Upload)
	r.DELETE("/api/curriculum/*key", h.Delete)
	return r
}

func multipartFile(t *testing.T, field, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestCurriculumHandler_Upload(t *testing.T) {
	var got *application.Upload
	var gotUser string
	svc := &mockCurriculumService{uploadFunc: func(_ context.Context, uid string, file *application.Upload) (application.Result, error) {
		gotUser, got = uid, file
		return application.Result{Status: http.StatusCreated, Data: map[string]string{"key": "curriculum/x.pdf"}}, nil
	}}
	body, ct := multipartFile(t, "file", "cv.pdf", []byte("%PDF-1.4"))

	req := httptest.NewRequest(http.MethodPost, "/api/curriculum/upload", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	curriculumRouter(asUser(), svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, userID, gotUser)
	require.NotNil(t, got)
	assert.Equal(t, "cv.pdf", got.Filename)
	assert.Equal(t, int64(8), got.Size)
}

func TestCurriculumHandler_Upload_MissingFile(t *testing.T) {
	svc := &mockCurriculumService{}

	w := doJSON(curriculumRouter(asUser(), svc), http.MethodPost, "/api/curriculum/upload", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorFields(t, w), "file")

	body, ct := multipartFile(t, "other", "cv.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/curriculum/upload", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	curriculumRouter(asUser(), svc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, svc.calls)
}

func TestCurriculumHandler_Delete_KeyWithSlashes(t *testing.T) {
	var gotKey string
	svc := &mockCurriculumService{deleteFunc: func(_ context.Context, _ string, key string) (application.Result, error) {
		gotKey = key
		return okResult(nil)
	}}

	w := doJSON(curriculumRouter(asUser(), svc), http.MethodDelete, "/api/curriculum/curriculum/"+userID+"/cv.pdf", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "curriculum/"+userID+"/cv.pdf", gotKey)
}

func TestCurriculumHandler_Delete_EmptyKey(t *testing.T) {
	svc := &mockCurriculumService{}

	w := doJSON(curriculumRouter(asUser(), svc), http.MethodDelete, "/api/curriculum/", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.calls)
}

func TestCurriculumHandler_FindAll_Anonymous(t *testing.T) {
	w := doJSON(curriculumRouter(nil, &mockCurriculumService{}), http.MethodGet, "/api/curriculum", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
