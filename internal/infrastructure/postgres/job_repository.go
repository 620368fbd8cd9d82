package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	"github.com/jobdeck/jobdeck/internal/domain/repository"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `
	job_id, title, COALESCE(location, ''), COALESCE(snippet, ''), COALESCE(salary, ''),
	COALESCE(source, ''), link, COALESCE(updated, ''), COALESCE(job_type, '')`

func scanJob(row pgx.Row) (*entity.Job, error) {
	j := &entity.Job{}
	err := row.Scan(&j.ID, &j.Title, &j.Location, &j.Snippet, &j.Salary,
		&j.Source, &j.Link, &j.Updated, &j.JobType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return j, nil
}

// List returns all scraped jobs, newest first.
func (r *JobRepository) List(ctx context.Context) ([]entity.Job, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+jobColumns+`
		FROM joblist
		ORDER BY job_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (r *JobRepository) GetByID(ctx context.Context, id int) (*entity.Job, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+jobColumns+`
		FROM joblist
		WHERE job_id = $1
	`, id)
	return scanJob(row)
}

// Upsert deduplicates scraped listings on the link column.
func (r *JobRepository) Upsert(ctx context.Context, j *entity.Job) (int, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO joblist (title, location, snippet, salary, source, link, updated, job_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (link) DO UPDATE SET
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			snippet = EXCLUDED.snippet,
			salary = EXCLUDED.salary,
			source = EXCLUDED.source,
			updated = EXCLUDED.updated,
			job_type = EXCLUDED.job_type
		RETURNING job_id
	`, j.Title, j.Location, j.Snippet, j.Salary, j.Source, j.Link, j.Updated, j.JobType)

	if err := row.Scan(&j.ID); err != nil {
		return 0, err
	}
	return j.ID, nil
}

var _ repository.JobRepository = (*JobRepository)(nil)
