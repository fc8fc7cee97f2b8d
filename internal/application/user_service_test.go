package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soujunior/vagas-api/internal/domain/entity"
	repo "github.com/soujunior/vagas-api/internal/domain/repository"
	"github.com/soujunior/vagas-api/pkg/helpers"
	"github.com/soujunior/vagas-api/pkg/pagination"
)

func validCreateUser() CreateUserInput {
	return CreateUserInput{
		Name:            " Ana Souza ",
		Email:           "Ana@Test.com",
		CPF:             strPtr("529.982.247-25"),
		State:           "sp",
		Password:        testPassword,
		ConfirmPassword: testPassword,
		Policies:        true,
	}
}

func TestUserService_Create(t *testing.T) {
	mail, pub, _ := newTestMail(t)
	var stored *entity.User
	users := &mockUserRepository{createFunc: func(_ context.Context, u *entity.User) error {
		u.ID = "u1"
		stored = u
		return nil
	}}
	svc := NewUserService(users, &mockCompanyRepository{}, mail, nil, helpers.NewNopLogger())

	r, err := svc.Create(context.Background(), validCreateUser(), "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, r.Status)

	pu, ok := r.Data.(entity.PublicUser)
	require.True(t, ok)
	assert.Equal(t, "u1", pu.ID)
	assert.Equal(t, "ana@test.com", pu.Email)

	require.NotNil(t, stored)
	assert.Equal(t, "Ana Souza", stored.Name)
	assert.Equal(t, "52998224725", *stored.CPF)
	assert.Equal(t, "SP", stored.State)
	assert.Equal(t, entity.UserTypeUser, stored.Type)
	assert.Equal(t, "10.0.0.1", stored.IP)
	assert.False(t, stored.MailConfirm)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, testPassword))

	assert.Equal(t, 1, pub.count())
}

func TestUserService_CreateRejections(t *testing.T) {
	tests := []struct {
		name       string
		users      *mockUserRepository
		companies  *mockCompanyRepository
		mutate     func(*CreateUserInput)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "email used by a user",
			users: &mockUserRepository{findOneByEmailFunc: func(context.Context, string) (*entity.User, error) {
				return &entity.User{ID: "x"}, nil
			}},
			companies:  &mockCompanyRepository{},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgEmailTaken,
		},
		{
			name:  "email used by a company",
			users: &mockUserRepository{},
			companies: &mockCompanyRepository{findOneByEmailFunc: func(context.Context, string) (*entity.Company, error) {
				return &entity.Company{ID: "c"}, nil
			}},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgEmailTaken,
		},
		{
			name: "cpf taken",
			users: &mockUserRepository{findOneByCPFFunc: func(_ context.Context, cpf string) (*entity.User, error) {
				if cpf == "52998224725" {
					return &entity.User{ID: "x"}, nil
				}
				return nil, repo.ErrNotFound
			}},
			companies:  &mockCompanyRepository{},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgCPFTaken,
		},
		{
			name:       "password mismatch",
			users:      &mockUserRepository{},
			companies:  &mockCompanyRepository{},
			mutate:     func(in *CreateUserInput) { in.ConfirmPassword = "Other!Pass1" },
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgPasswordMismatch,
		},
		{
			name: "unique violation on insert",
			users: &mockUserRepository{createFunc: func(context.Context, *entity.User) error {
				return repo.ErrConflict
			}},
			companies:  &mockCompanyRepository{},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgEmailTaken,
		},
		{
			name: "cpf unique violation on insert",
			users: &mockUserRepository{createFunc: func(context.Context, *entity.User) error {
				return fmt.Errorf("insert user: %w", &repo.ConflictError{Field: "cpf"})
			}},
			companies:  &mockCompanyRepository{},
			wantStatus: http.StatusNotFound,
			wantMsg:    MsgCPFTaken,
		},
		{
			name:      "password over 72 bytes",
			users:     &mockUserRepository{},
			companies: &mockCompanyRepository{},
			mutate: func(in *CreateUserInput) {
				in.Password = strings.Repeat("ã", 60) + "Aa1!xyzw"
				in.ConfirmPassword = in.Password
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    MsgPasswordTooLong,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateUser()
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			svc := NewUserService(tt.users, tt.companies, nil, nil, nil)

			r, err := svc.Create(context.Background(), in, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, r.Status)
			assert.Equal(t, tt.wantMsg, messageOf(r))
		})
	}
}

func TestUserService_CreateWithoutCPFSkipsLookup(t *testing.T) {
	users := &mockUserRepository{}
	svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)

	in := validCreateUser()
	in.CPF = nil
	r, err := svc.Create(context.Background(), in, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, r.Status)
	assert.Zero(t, users.count("FindOneByCPF"))
}

func TestUserService_FindAll(t *testing.T) {
	var got pagination.PageOptions
	users := &mockUserRepository{findAllFunc: func(_ context.Context, opts pagination.PageOptions) ([]*entity.User, int, error) {
		got = opts
		return []*entity.User{{ID: "u1", Password: "secret"}}, 11, nil
	}}
	svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)

	r, err := svc.FindAll(context.Background(), pagination.PageOptions{Page: 2, OrderByColumn: "password"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, "created_at", got.OrderByColumn)

	page, ok := r.Data.(pagination.Page[entity.PublicUser])
	require.True(t, ok)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 11, page.Meta.ItemCount)
	assert.Equal(t, 2, page.Meta.PageCount)
}

func TestUserService_FindByID(t *testing.T) {
	svc := NewUserService(&mockUserRepository{}, &mockCompanyRepository{}, nil, nil, nil)

	r, err := svc.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, r.Status)
	assert.Equal(t, MsgUserNotFound, messageOf(r))
}

func TestUserService_Update(t *testing.T) {
	existing := &entity.User{ID: "u1", Name: "Ana", City: "Recife", ProfileKey: "profiles/u1/old.png"}
	var saved *entity.User
	users := &mockUserRepository{
		findOneByIDFunc: func(context.Context, string) (*entity.User, error) { cp := *existing; return &cp, nil },
		updateFunc:      func(_ context.Context, u *entity.User) error { saved = u; return nil },
	}
	st := &mockStorage{}
	svc := NewUserService(users, &mockCompanyRepository{}, nil, st, nil)
	ctx := context.Background()

	t.Run("file without profileKey", func(t *testing.T) {
		r, err := svc.Update(ctx, "u1", UpdateUserInput{}, newUpload("me.png", "img"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, MsgProfileKeyRequired, messageOf(r))
		assert.Zero(t, users.count("FindOneByID"))
	})

	t.Run("fields only", func(t *testing.T) {
		r, err := svc.Update(ctx, "u1", UpdateUserInput{Name: "Ana Maria", State: "pe"}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, "Ana Maria", saved.Name)
		assert.Equal(t, "Recife", saved.City)
		assert.Equal(t, "PE", saved.State)
		assert.Zero(t, st.count("Upload"))
	})

	t.Run("replaces picture", func(t *testing.T) {
		r, err := svc.Update(ctx, "u1", UpdateUserInput{ProfileKey: existing.ProfileKey}, newUpload("me.PNG", "img"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, []string{"profiles/u1/old.png"}, st.deleted)
		assert.Regexp(t, `^profiles/u1/[0-9a-f-]{36}\.png$`, saved.ProfileKey)
		assert.Equal(t, "https://storage.test/"+saved.ProfileKey, saved.Profile)
	})

	t.Run("storage failure", func(t *testing.T) {
		failing := NewUserService(users, &mockCompanyRepository{}, nil, &mockStorage{err: errors.New("gcs down")}, nil)
		_, err := failing.Update(ctx, "u1", UpdateUserInput{ProfileKey: existing.ProfileKey}, newUpload("me.png", "img"))
		assert.Error(t, err)
	})
}

func TestUserService_UpdateKeepsOtherObjects(t *testing.T) {
	stored := "profiles/u1/own.png"
	users := &mockUserRepository{
		findOneByIDFunc: func(context.Context, string) (*entity.User, error) {
			return &entity.User{ID: "u1", ProfileKey: stored}, nil
		},
	}
	ctx := context.Background()

	t.Run("key of another object", func(t *testing.T) {
		st := &mockStorage{}
		svc := NewUserService(users, &mockCompanyRepository{}, nil, st, nil)
		r, err := svc.Update(ctx, "u1", UpdateUserInput{ProfileKey: "curriculums/u2/cv.pdf"}, newUpload("me.png", "img"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, MsgProfileKeyMismatch, messageOf(r))
		assert.Empty(t, st.deleted)
		assert.Zero(t, st.count("Upload"))
		assert.Zero(t, users.count("Update"))
	})

	t.Run("no stored picture deletes nothing", func(t *testing.T) {
		fresh := &mockUserRepository{
			findOneByIDFunc: func(context.Context, string) (*entity.User, error) { return &entity.User{ID: "u1"}, nil },
		}
		st := &mockStorage{}
		svc := NewUserService(fresh, &mockCompanyRepository{}, nil, st, nil)
		r, err := svc.Update(ctx, "u1", UpdateUserInput{ProfileKey: "curriculums/u2/cv.pdf"}, newUpload("me.png", "img"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Empty(t, st.deleted)
		assert.Equal(t, 1, st.count("Upload"))
	})
}

func TestUserService_UpdateMyPassword(t *testing.T) {
	hash := mustHash(t, testPassword)
	users := &mockUserRepository{findOneByIDFunc: func(context.Context, string) (*entity.User, error) {
		return &entity.User{ID: "u1", Password: hash}, nil
	}}
	svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)
	ctx := context.Background()

	r, err := svc.UpdateMyPassword(ctx, "u1", UpdateMyPasswordInput{OldPassword: "wrong", Password: "N3w!Passw", ConfirmPassword: "N3w!Passw"})
	require.NoError(t, err)
	assert.Equal(t, MsgOldPasswordInvalid, messageOf(r))

	r, err = svc.UpdateMyPassword(ctx, "u1", UpdateMyPasswordInput{OldPassword: testPassword, Password: "N3w!Passw", ConfirmPassword: "x"})
	require.NoError(t, err)
	assert.Equal(t, MsgPasswordMismatch, messageOf(r))
	assert.Zero(t, users.count("UpdatePassword"))

	r, err = svc.UpdateMyPassword(ctx, "u1", UpdateMyPasswordInput{OldPassword: testPassword, Password: "N3w!Passw", ConfirmPassword: "N3w!Passw"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, r.Status)
	assert.Equal(t, MsgPasswordChanged, messageOf(r))
	assert.Equal(t, 1, users.count("UpdatePassword"))
}

func TestUserService_Delete(t *testing.T) {
	users := &mockUserRepository{findOneByIDFunc: func(_ context.Context, id string) (*entity.User, error) {
		if id == "u1" {
			return &entity.User{ID: "u1", ProfileKey: "profiles/u1/a.png"}, nil
		}
		return nil, repo.ErrNotFound
	}}
	st := &mockStorage{}
	svc := NewUserService(users, &mockCompanyRepository{}, nil, st, helpers.NewNopLogger())
	ctx := context.Background()

	r, err := svc.Delete(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, r.Status)

	r, err = svc.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, MsgUserDeleted, messageOf(r))
	assert.Equal(t, []string{"profiles/u1/a.png"}, st.deleted)
}

func TestUserService_RecoverPasswordByEmail(t *testing.T) {
	mail, pub, _ := newTestMail(t)
	var storedToken string
	users := &mockUserRepository{
		findOneByEmailFunc: func(_ context.Context, email string) (*entity.User, error) {
			if email == "ana@test.com" {
				return &entity.User{ID: "u1", Name: "Ana", Email: email}, nil
			}
			return nil, repo.ErrNotFound
		},
		setRecoveryTokenFunc: func(_ context.Context, _ string, token string) error {
			storedToken = token
			return nil
		},
	}
	svc := NewUserService(users, &mockCompanyRepository{}, mail, nil, nil)
	ctx := context.Background()

	unknown, err := svc.RecoverPasswordByEmail(ctx, RecoverPasswordInput{Email: "ghost@test.com"})
	require.NoError(t, err)
	known, err := svc.RecoverPasswordByEmail(ctx, RecoverPasswordInput{Email: "ana@test.com"})
	require.NoError(t, err)

	assert.Equal(t, unknown, known)
	assert.Equal(t, MsgRecoveryRequested, messageOf(known))
	assert.Len(t, storedToken, 64)
	assert.Equal(t, 1, pub.count())
	assert.Contains(t, lastJob(t, pub).Data["ActionURL"], storedToken)
}

func TestUserService_UpdatePasswordByToken(t *testing.T) {
	const token = "tok"
	found := func(_ context.Context, tok string) (*entity.User, error) {
		if tok == token {
			return &entity.User{ID: "u1"}, nil
		}
		return nil, repo.ErrNotFound
	}
	ctx := context.Background()
	in := UpdatePasswordByTokenInput{RecoverPasswordToken: token, Password: "N3w!Passw", ConfirmPassword: "N3w!Passw"}

	t.Run("unknown token", func(t *testing.T) {
		svc := NewUserService(&mockUserRepository{findByTokenFunc: found}, &mockCompanyRepository{}, nil, nil, nil)
		bad := in
		bad.RecoverPasswordToken = "other"
		r, err := svc.UpdatePasswordByToken(ctx, bad)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, MsgUserNotFound, messageOf(r))
	})

	t.Run("mismatch leaves token", func(t *testing.T) {
		users := &mockUserRepository{findByTokenFunc: found}
		svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)
		bad := in
		bad.ConfirmPassword = "different"
		r, err := svc.UpdatePasswordByToken(ctx, bad)
		require.NoError(t, err)
		assert.Equal(t, MsgPasswordMismatch, messageOf(r))
		assert.Zero(t, users.count("ConsumeRecoveryToken"))
	})

	t.Run("password over 72 bytes", func(t *testing.T) {
		users := &mockUserRepository{findByTokenFunc: found}
		svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)
		long := in
		long.Password = strings.Repeat("ã", 60) + "Aa1!xyzw"
		long.ConfirmPassword = long.Password
		r, err := svc.UpdatePasswordByToken(ctx, long)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, MsgPasswordTooLong, messageOf(r))
		assert.Zero(t, users.count("ConsumeRecoveryToken"))
	})

	t.Run("success", func(t *testing.T) {
		var gotHash string
		users := &mockUserRepository{
			findByTokenFunc: found,
			consumeRecoveryTokenFunc: func(_ context.Context, id, tok, hash string) (bool, error) {
				assert.Equal(t, "u1", id)
				assert.Equal(t, token, tok)
				gotHash = hash
				return true, nil
			},
		}
		svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)
		r, err := svc.UpdatePasswordByToken(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status)
		assert.Equal(t, MsgPasswordReset, messageOf(r))
		assert.True(t, helpers.CompareHashAndPassword(gotHash, in.Password))
	})

	t.Run("token consumed concurrently", func(t *testing.T) {
		users := &mockUserRepository{
			findByTokenFunc:          found,
			consumeRecoveryTokenFunc: func(context.Context, string, string, string) (bool, error) { return false, nil },
		}
		svc := NewUserService(users, &mockCompanyRepository{}, nil, nil, nil)
		r, err := svc.UpdatePasswordByToken(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, r.Status)
		assert.Equal(t, MsgUserNotFound, messageOf(r))
	})
}
