package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobdeck/jobdeck/config"
	"github.com/jobdeck/jobdeck/internal/application"
	"github.com/jobdeck/jobdeck/internal/domain/entity"
	pginfra "github.com/jobdeck/jobdeck/internal/infrastructure/postgres"
	"github.com/jobdeck/jobdeck/pkg/helpers"
	"github.com/jobdeck/jobdeck/pkg/jooble"
)

// Pulls the configured Jooble searches and upserts the results into the
// joblist table, refreshing the search index as it goes. Run from cron.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-jobscraper", cfg.Env)

	if cfg.JoobleAPIKey == "" {
		log.Fatal("JOOBLE_API_KEY is required")
	}
	searches := cfg.Searches()
	if len(searches) == 0 {
		log.Fatal("JOOBLE_SEARCHES has no usable entries")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	esClient, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch unavailable; skipping indexing")
		esClient = nil
	}

	jobs := application.NewJobService(pginfra.NewJobRepository(pool), esClient, cfg.ESJobsIndex, logger)
	client := jooble.NewClient(cfg.JoobleAPIKey)

	var stored, failed int
	for _, s := range searches {
		keywords, location := s[0], s[1]
		results, err := client.Search(ctx, keywords, location)
		if err != nil {
			logger.WithError(err).WithField("keywords", keywords).Error("jooble search failed")
			failed++
			continue
		}
		logger.WithField("keywords", keywords).WithField("count", len(results)).Info("jooble search done")

		for _, r := range results {
			if r.Link == "" || r.Title == "" {
				continue
			}
			j := &entity.Job{
				Title:    r.Title,
				Location: r.Location,
				Snippet:  r.Snippet,
				Salary:   r.Salary,
				Source:   r.Source,
				Link:     r.Link,
				Updated:  r.Updated,
				JobType:  r.Type,
			}
			if _, err := jobs.Upsert(ctx, j); err != nil {
				logger.WithError(err).WithField("link", r.Link).Warn("job upsert failed")
				continue
			}
			stored++
		}
	}

	logger.WithField("stored", stored).WithField("failed_searches", failed).Info("scrape complete")
	if failed == len(searches) {
		log.Fatal("every jooble search failed")
	}
}
