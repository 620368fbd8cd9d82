package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
)

// JobService reads job listings from Postgres and searches them through
// Elasticsearch. The relational store is the source of truth; the index is
// advisory and skipped entirely when ES is not configured.
type JobService struct {
	Repo        repo.JobRepository
	ES          *elasticsearch.Client
	ESJobsIndex string
	Logger      *logrus.Logger
}

func NewJobService(r repo.JobRepository, es *elasticsearch.Client, esJobsIndex string, logger *logrus.Logger) *JobService {
	return &JobService{Repo: r, ES: es, ESJobsIndex: esJobsIndex, Logger: logger}
}

func (s *JobService) List(ctx context.Context) ([]entity.Job, error) {
	return s.Repo.List(ctx)
}

func (s *JobService) Get(ctx context.Context, id int) (*entity.Job, error) {
	return s.Repo.GetByID(ctx, id)
}

// Upsert stores the job and refreshes its search document.
func (s *JobService) Upsert(ctx context.Context, j *entity.Job) (int, error) {
	id, err := s.Repo.Upsert(ctx, j)
	if err != nil {
		return 0, err
	}
	j.ID = id
	_ = s.indexJob(ctx, j)
	return id, nil
}

func (s *JobService) indexJob(ctx context.Context, j *entity.Job) error {
	if s.ES == nil || s.ESJobsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"jobId":      j.ID,
		"title":      j.Title,
		"location":   j.Location,
		"snippet":    j.Snippet,
		"salary":     j.Salary,
		"source":     j.Source,
		"link":       j.Link,
		"jobType":    j.JobType,
		"indexed_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESJobsIndex, DocumentID: strconv.Itoa(j.ID), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("job_id", j.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("job_id", j.ID).Warn("es index response error")
	}
	return nil
}

// Search runs a multi_match over title, snippet, location, and source.
// With no ES configured it returns an empty result rather than an error.
func (s *JobService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESJobsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "snippet", "location", "source"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESJobsIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
