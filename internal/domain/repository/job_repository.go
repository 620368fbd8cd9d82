package repository

import (
	"context"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
)

// JobRepository defines the interface for job listing database operations.
type JobRepository interface {
	List(ctx context.Context) ([]entity.Job, error)
	GetByID(ctx context.Context, id int) (*entity.Job, error)
	// Upsert inserts a scraped job, updating the existing row when the
	// link is already known. Returns the row id.
	Upsert(ctx context.Context, j *entity.Job) (int, error)
}
