package router

import (
	"github.com/jobdeck/jobdeck/internal/application"
	"github.com/jobdeck/jobdeck/internal/container"
	"github.com/jobdeck/jobdeck/internal/infrastructure/blob"
	pginfra "github.com/jobdeck/jobdeck/internal/infrastructure/postgres"
	handlers "github.com/jobdeck/jobdeck/internal/interface/http"
	"github.com/jobdeck/jobdeck/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	applicants := pginfra.NewApplicantRepository(container.GetPGPool())
	jobs := pginfra.NewJobRepository(container.GetPGPool())

	authSvc := application.NewAuthService(applicants, container.GetJWT(), logger)
	applicantSvc := application.NewApplicantService(applicants)
	jobSvc := application.NewJobService(jobs, container.GetES(), cfg.ESJobsIndex, logger)

	letterStore := blob.NewLetterStore(container.GetGCS(), cfg.GCSBucket, cfg.LettersPrefix)
	letterSvc := application.NewLetterService(
		container.GetLLM(),
		letterStore,
		container.GetRabbitPub(),
		applicants,
		jobs,
		logger,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewJobModule(handlers.NewJobHandler(jobSvc, logger)))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(applicantSvc, logger)))
	r.Add(modules.NewLetterModule(handlers.NewLetterHandler(letterSvc, applicants, logger)))
	r.Add(modules.NewDebugModule())
}
