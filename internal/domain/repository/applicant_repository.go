package repository

import (
	"context"
	"errors"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned by Create when the applicants unique email
	// index rejects the insert. The index is the authoritative uniqueness
	// check; callers must not rely on a prior lookup.
	ErrEmailTaken = errors.New("email already registered")
)

// ApplicantRepository defines the interface for applicant-related database operations.
type ApplicantRepository interface {
	Create(ctx context.Context, a *entity.Applicant) (int, error)
	GetByID(ctx context.Context, id int) (*entity.Applicant, error)
	GetByEmail(ctx context.Context, email string) (*entity.Applicant, error)
	UpdateProfile(ctx context.Context, a *entity.Applicant) error
	List(ctx context.Context) ([]entity.Applicant, error)
}
