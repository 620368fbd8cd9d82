package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/application"
	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/pkg/helpers"
)

type stubApplicantRepo struct {
	CreateFunc        func(ctx context.Context, a *entity.Applicant) (int, error)
	GetByIDFunc       func(ctx context.Context, id int) (*entity.Applicant, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*entity.Applicant, error)
	UpdateProfileFunc func(ctx context.Context, a *entity.Applicant) error
	ListFunc          func(ctx context.Context) ([]entity.Applicant, error)
}

func (m *stubApplicantRepo) Create(ctx context.Context, a *entity.Applicant) (int, error) {
	return m.CreateFunc(ctx, a)
}
func (m *stubApplicantRepo) GetByID(ctx context.Context, id int) (*entity.Applicant, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *stubApplicantRepo) GetByEmail(ctx context.Context, email string) (*entity.Applicant, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *stubApplicantRepo) UpdateProfile(ctx context.Context, a *entity.Applicant) error {
	return m.UpdateProfileFunc(ctx, a)
}
func (m *stubApplicantRepo) List(ctx context.Context) ([]entity.Applicant, error) {
	return m.ListFunc(ctx)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(new(strings.Builder))
	return l
}

func authTestRouter(r repo.ApplicantRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("test-secret", "JobPortalAPI", 168*time.Hour)
	logger := quietLogger()
	h := NewAuthHandler(application.NewAuthService(r, jwt, logger), logger)

	e := gin.New()
	e.POST("/api/register", h.Register)
	e.POST("/api/login", h.Login)
	return e
}

func doJSON(t *testing.T, e *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestRegisterEndpoint_Created(t *testing.T) {
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return nil, repo.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, a *entity.Applicant) (int, error) {
			return 11, nil
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ApplicantID int    `json:"applicantId"`
			Email       string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, 11, body.User.ApplicantID)
	assert.Equal(t, "jane@example.com", body.User.Email)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 1, Email: email}, nil
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"Abc123!@"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Email already registered")
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestRegisterEndpoint_WeakPassword(t *testing.T) {
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return nil, repo.ErrNotFound
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/register",
		`{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","password":"abc12345"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Password must be at least 8 characters with uppercase, lowercase, number, and special character")
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	e := authTestRouter(&stubApplicantRepo{})

	rr := doJSON(t, e, http.MethodPost, "/api/register", `{"email":"jane@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestLoginEndpoint_OK(t *testing.T) {
	hash, err := helpers.HashPassword("Abc123!@")
	require.NoError(t, err)
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 4, Email: email, FirstName: "Jane", LastName: "Doe", Password: hash}, nil
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"Abc123!@"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token"`)
	assert.NotContains(t, rr.Body.String(), hash)
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	hash, err := helpers.HashPassword("Abc123!@")
	require.NoError(t, err)
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 4, Email: email, Password: hash}, nil
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"WrongPass1!"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid credentials")
}

func TestLoginEndpoint_UnknownEmail(t *testing.T) {
	m := &stubApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return nil, repo.ErrNotFound
		},
	}
	e := authTestRouter(m)

	rr := doJSON(t, e, http.MethodPost, "/api/login",
		`{"email":"nobody@example.com","password":"Abc123!@"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid credentials")
}
