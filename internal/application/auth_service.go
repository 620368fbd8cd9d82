package application

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/pkg/helpers"
)

// User-facing auth messages. Login failures stay deliberately generic so the
// response does not reveal whether the email or the password was wrong; the
// registration path does disclose a taken email, matching the endpoint's
// established behavior.
const (
	MsgEmailTaken         = "Email already registered"
	MsgWeakPassword       = "Password must be at least 8 characters with uppercase, lowercase, number, and special character"
	MsgInvalidCredentials = "Invalid credentials"
	MsgRegistrationOK     = "Registration successful"
	MsgLoginOK            = "Login successful"
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
)

// UserInfo is the applicant summary returned alongside a token.
// It never carries the password hash.
type UserInfo struct {
	ApplicantID int    `json:"applicantId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
}

// AuthResult is the transient outcome of a register or login attempt.
type AuthResult struct {
	Success bool
	Message string
	Token   string
	User    *UserInfo
}

// AuthService orchestrates registration and login. All storage and hashing
// failures are absorbed here; nothing propagates raw to the HTTP layer.
type AuthService struct {
	Repo   repo.ApplicantRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.ApplicantRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger}
}

// Register creates a new applicant account and issues a bearer token.
// The email lookup is a courtesy check for the common case; the unique index
// behind Repo.Create is what actually guarantees one account per email, so a
// concurrent duplicate still comes back as MsgEmailTaken.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) AuthResult {
	email = NormalizeEmail(email)

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return AuthResult{Message: MsgEmailTaken}
	}

	if !IsPasswordStrong(password) {
		return AuthResult{Message: MsgWeakPassword}
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.logErr(err, email, "password hashing failed")
		return AuthResult{Message: MsgRegistrationFailed}
	}

	a := &entity.Applicant{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
	}
	id, err := s.Repo.Create(ctx, a)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return AuthResult{Message: MsgEmailTaken}
		}
		s.logErr(err, email, "applicant insert failed")
		return AuthResult{Message: MsgRegistrationFailed}
	}
	if id <= 0 {
		return AuthResult{Message: MsgRegistrationFailed}
	}

	token, err := s.JWT.Generate(id, email, firstName, lastName)
	if err != nil {
		s.logErr(err, email, "token generation failed")
		return AuthResult{Message: MsgRegistrationFailed}
	}

	return AuthResult{
		Success: true,
		Message: MsgRegistrationOK,
		Token:   token,
		User:    &UserInfo{ApplicantID: id, FirstName: firstName, LastName: lastName, Email: email},
	}
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the identical generic message.
func (s *AuthService) Login(ctx context.Context, email, password string) AuthResult {
	email = NormalizeEmail(email)

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return AuthResult{Message: MsgInvalidCredentials}
		}
		s.logErr(err, email, "applicant lookup failed")
		return AuthResult{Message: MsgLoginFailed}
	}

	if !helpers.CompareHashAndPassword(u.Password, password) {
		return AuthResult{Message: MsgInvalidCredentials}
	}

	token, err := s.JWT.Generate(u.ID, u.Email, u.FirstName, u.LastName)
	if err != nil {
		s.logErr(err, email, "token generation failed")
		return AuthResult{Message: MsgLoginFailed}
	}

	return AuthResult{
		Success: true,
		Message: MsgLoginOK,
		Token:   token,
		User:    &UserInfo{ApplicantID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email},
	}
}

func (s *AuthService) logErr(err error, email, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("email", email).Error(msg)
	}
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsPasswordStrong enforces the registration password policy: at least 8
// characters with an uppercase letter, a lowercase letter, a digit, and a
// non-alphanumeric character.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSpecial
}
