package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	"github.com/jobdeck/jobdeck/internal/domain/repository"
)

const uniqueViolation = "23505"

type ApplicantRepository struct {
	pool *pgxpool.Pool
}

func NewApplicantRepository(pool *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{pool: pool}
}

const applicantColumns = `
	applicant_id, first_name, last_name, COALESCE(location, ''), email, password,
	COALESCE(job_title, ''), COALESCE(about_me, ''), COALESCE(resume_file_url, ''),
	COALESCE(job_preferences, ''), created_at, updated_at`

func scanApplicant(row pgx.Row) (*entity.Applicant, error) {
	a := &entity.Applicant{}
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Location, &a.Email, &a.Password,
		&a.JobTitle, &a.AboutMe, &a.ResumeFileURL, &a.JobPreferences, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new applicant and returns the generated id. The unique
// index on lower(email) is the authoritative uniqueness check; a violation
// maps to repository.ErrEmailTaken.
func (r *ApplicantRepository) Create(ctx context.Context, a *entity.Applicant) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO applicants
			(first_name, last_name, location, email, password, job_title, about_me,
			 resume_file_url, job_preferences)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING applicant_id, created_at, updated_at
	`, a.FirstName, a.LastName, a.Location, a.Email, a.Password, a.JobTitle, a.AboutMe,
		a.ResumeFileURL, a.JobPreferences)

	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, repository.ErrEmailTaken
		}
		return 0, err
	}
	return a.ID, nil
}

func (r *ApplicantRepository) GetByID(ctx context.Context, id int) (*entity.Applicant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE applicant_id = $1
	`, id)
	return scanApplicant(row)
}

func (r *ApplicantRepository) GetByEmail(ctx context.Context, email string) (*entity.Applicant, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE lower(email) = lower($1)
	`, email)
	return scanApplicant(row)
}

// UpdateProfile updates the profile fields only. Email and password are
// never touched here.
func (r *ApplicantRepository) UpdateProfile(ctx context.Context, a *entity.Applicant) error {
	a.UpdatedAt = time.Now().UTC()
	res, err := r.pool.Exec(ctx, `
		UPDATE applicants
		SET first_name = $1, last_name = $2, location = $3, job_title = $4,
		    about_me = $5, resume_file_url = $6, job_preferences = $7, updated_at = $8
		WHERE applicant_id = $9
	`, a.FirstName, a.LastName, a.Location, a.JobTitle, a.AboutMe, a.ResumeFileURL,
		a.JobPreferences, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ApplicantRepository) List(ctx context.Context) ([]entity.Applicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		ORDER BY applicant_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

var _ repository.ApplicantRepository = (*ApplicantRepository)(nil)
