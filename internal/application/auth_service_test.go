package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/pkg/helpers"
)

type mockApplicantRepo struct {
	CreateFunc        func(ctx context.Context, a *entity.Applicant) (int, error)
	GetByIDFunc       func(ctx context.Context, id int) (*entity.Applicant, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*entity.Applicant, error)
	UpdateProfileFunc func(ctx context.Context, a *entity.Applicant) error
	ListFunc          func(ctx context.Context) ([]entity.Applicant, error)
}

func (m *mockApplicantRepo) Create(ctx context.Context, a *entity.Applicant) (int, error) {
	return m.CreateFunc(ctx, a)
}
func (m *mockApplicantRepo) GetByID(ctx context.Context, id int) (*entity.Applicant, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockApplicantRepo) GetByEmail(ctx context.Context, email string) (*entity.Applicant, error) {
	return m.GetByEmailFunc(ctx, email)
}
func (m *mockApplicantRepo) UpdateProfile(ctx context.Context, a *entity.Applicant) error {
	return m.UpdateProfileFunc(ctx, a)
}
func (m *mockApplicantRepo) List(ctx context.Context) ([]entity.Applicant, error) {
	return m.ListFunc(ctx)
}

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", "JobPortalAPI", 168*time.Hour)
}

func notFoundByEmail(ctx context.Context, email string) (*entity.Applicant, error) {
	return nil, repo.ErrNotFound
}

func TestRegister_Success(t *testing.T) {
	var created *entity.Applicant
	m := &mockApplicantRepo{
		GetByEmailFunc: notFoundByEmail,
		CreateFunc: func(ctx context.Context, a *entity.Applicant) (int, error) {
			created = a
			return 7, nil
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "  Jane@Example.COM ", "Abc123!@")

	require.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, 7, res.User.ApplicantID)
	assert.Equal(t, "jane@example.com", res.User.Email)

	require.NotNil(t, created)
	assert.Equal(t, "jane@example.com", created.Email)
	assert.NotEqual(t, "Abc123!@", created.Password)
	assert.True(t, helpers.CompareHashAndPassword(created.Password, "Abc123!@"))

	id, ok := testJWT().ExtractUserID(res.Token)
	assert.True(t, ok)
	assert.Equal(t, 7, id)
}

func TestRegister_EmailTaken_Precheck(t *testing.T) {
	m := &mockApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 1, Email: email}, nil
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "Abc123!@")
	assert.False(t, res.Success)
	assert.Equal(t, MsgEmailTaken, res.Message)
}

func TestRegister_EmailTaken_InsertRace(t *testing.T) {
	// Lookup misses but the unique index rejects the insert.
	m := &mockApplicantRepo{
		GetByEmailFunc: notFoundByEmail,
		CreateFunc: func(ctx context.Context, a *entity.Applicant) (int, error) {
			return 0, repo.ErrEmailTaken
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "Abc123!@")
	assert.False(t, res.Success)
	assert.Equal(t, MsgEmailTaken, res.Message)
}

func TestRegister_ExistingEmailBeatsWeakPassword(t *testing.T) {
	m := &mockApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 1, Email: email}, nil
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "weak")
	assert.Equal(t, MsgEmailTaken, res.Message)
}

func TestRegister_WeakPassword(t *testing.T) {
	m := &mockApplicantRepo{GetByEmailFunc: notFoundByEmail}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "abc12345")
	assert.False(t, res.Success)
	assert.Equal(t, MsgWeakPassword, res.Message)
}

func TestRegister_InsertFailure(t *testing.T) {
	m := &mockApplicantRepo{
		GetByEmailFunc: notFoundByEmail,
		CreateFunc: func(ctx context.Context, a *entity.Applicant) (int, error) {
			return 0, errors.New("connection reset")
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Register(context.Background(), "Jane", "Doe", "jane@example.com", "Abc123!@")
	assert.False(t, res.Success)
	assert.Equal(t, MsgRegistrationFailed, res.Message)
}

func TestLogin_Success(t *testing.T) {
	hash, err := helpers.HashPassword("Abc123!@")
	require.NoError(t, err)
	m := &mockApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 3, Email: email, FirstName: "Jane", LastName: "Doe", Password: hash}, nil
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Login(context.Background(), "JANE@example.com", "Abc123!@")
	require.True(t, res.Success)
	assert.NotEmpty(t, res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, 3, res.User.ApplicantID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	m := &mockApplicantRepo{GetByEmailFunc: notFoundByEmail}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Login(context.Background(), "nobody@example.com", "Abc123!@")
	assert.False(t, res.Success)
	assert.Equal(t, MsgInvalidCredentials, res.Message)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := helpers.HashPassword("Abc123!@")
	require.NoError(t, err)
	m := &mockApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return &entity.Applicant{ID: 3, Email: email, Password: hash}, nil
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	// Same message as unknown email.
	res := svc.Login(context.Background(), "jane@example.com", "wrong-pass")
	assert.False(t, res.Success)
	assert.Equal(t, MsgInvalidCredentials, res.Message)
}

func TestLogin_RepoFailure(t *testing.T) {
	m := &mockApplicantRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.Applicant, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewAuthService(m, testJWT(), nil)

	res := svc.Login(context.Background(), "jane@example.com", "Abc123!@")
	assert.Equal(t, MsgLoginFailed, res.Message)
}

func TestIsPasswordStrong(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abc123!@", true},
		{"abc12345", false},
		{"ABC12345", false},
		{"Abcdefg!", false},
		{"Abc123456", false},
		{"Ab1!", false},
		{"", false},
		{"Pass word1!", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPasswordStrong(tt.password), "password %q", tt.password)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
