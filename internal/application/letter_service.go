package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/domain/entity"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/pkg/letters"
	"github.com/jobdeck/jobdeck/pkg/mailer"
)

// ErrInvalidInput marks a generation request rejected by the input guard
// before any LLM call is made.
var ErrInvalidInput = errors.New("invalid input")

// Generator drafts a cover letter from free-text inputs.
type Generator interface {
	GenerateCoverLetter(ctx context.Context, jobDescription, userProfile string) (string, error)
}

// LetterStore persists finished letters as blobs.
type LetterStore interface {
	Save(ctx context.Context, letter *entity.Letter) (string, error)
}

// Publisher enqueues a job for the email worker.
type Publisher interface {
	PublishJSON(ctx context.Context, v any) error
}

// LetterService generates cover letter drafts and hands finished letters to
// the email pipeline.
type LetterService struct {
	Generator  Generator
	Store      LetterStore
	Queue      Publisher
	Applicants repo.ApplicantRepository
	Jobs       repo.JobRepository
	Logger     *logrus.Logger
}

func NewLetterService(gen Generator, store LetterStore, queue Publisher, applicants repo.ApplicantRepository, jobs repo.JobRepository, logger *logrus.Logger) *LetterService {
	return &LetterService{
		Generator:  gen,
		Store:      store,
		Queue:      queue,
		Applicants: applicants,
		Jobs:       jobs,
		Logger:     logger,
	}
}

// Generate validates both inputs, asks the model for a draft, and returns
// the sanitized text.
func (s *LetterService) Generate(ctx context.Context, jobDescription, userProfile string) (string, error) {
	if !letters.IsValidInput(jobDescription, 0) || !letters.IsValidInput(userProfile, 0) {
		return "", ErrInvalidInput
	}
	draft, err := s.Generator.GenerateCoverLetter(ctx, jobDescription, userProfile)
	if err != nil {
		return "", fmt.Errorf("generate cover letter: %w", err)
	}
	return letters.Clean(draft), nil
}

// GenerateFromJob builds the job description from a stored posting and the
// profile from the authenticated applicant, unless a custom profile is
// given. Returns repository.ErrNotFound when the job does not exist.
func (s *LetterService) GenerateFromJob(ctx context.Context, applicantID, jobID int, customProfile string) (string, error) {
	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	profile := customProfile
	if strings.TrimSpace(profile) == "" {
		a, err := s.Applicants.GetByID(ctx, applicantID)
		if err != nil {
			return "", err
		}
		profile = applicantProfileText(a)
	}

	return s.Generate(ctx, jobDescriptionText(job), profile)
}

// SaveAndSend stores the letter blob and enqueues the email job. The whole
// letter rides in the blob; the queue message only names it.
func (s *LetterService) SaveAndSend(ctx context.Context, applicant *entity.Applicant, coverLetter, jobTitle, companyName string) (string, error) {
	letter := &entity.Letter{
		Email:       applicant.Email,
		Name:        applicant.FullName(),
		CoverLetter: coverLetter,
		JobTitle:    jobTitle,
		CompanyName: companyName,
		CreatedAt:   time.Now().UTC(),
	}

	blobName, err := s.Store.Save(ctx, letter)
	if err != nil {
		return "", fmt.Errorf("save letter: %w", err)
	}

	job := mailer.LetterJob{
		To:          letter.Email,
		Name:        letter.Name,
		BlobName:    blobName,
		JobTitle:    jobTitle,
		CompanyName: companyName,
	}
	if err := s.Queue.PublishJSON(ctx, job); err != nil {
		// The blob stays behind so the letter is recoverable.
		s.logErr(err, "letter email enqueue failed", blobName)
		return "", fmt.Errorf("enqueue letter email: %w", err)
	}

	return blobName, nil
}

func (s *LetterService) logErr(err error, msg, blobName string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("blob", blobName).Error(msg)
	}
}

func applicantProfileText(a *entity.Applicant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s", a.FullName())
	if a.Location != "" {
		fmt.Fprintf(&b, "\nLocation: %s", a.Location)
	}
	if a.JobTitle != "" {
		fmt.Fprintf(&b, "\nCurrent title: %s", a.JobTitle)
	}
	if a.AboutMe != "" {
		fmt.Fprintf(&b, "\nAbout: %s", a.AboutMe)
	}
	if a.JobPreferences != "" {
		fmt.Fprintf(&b, "\nPreferences: %s", a.JobPreferences)
	}
	return b.String()
}

func jobDescriptionText(j *entity.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Job title: %s", j.Title)
	if j.Location != "" {
		fmt.Fprintf(&b, "\nLocation: %s", j.Location)
	}
	if j.Source != "" {
		fmt.Fprintf(&b, "\nCompany/source: %s", j.Source)
	}
	if j.Snippet != "" {
		fmt.Fprintf(&b, "\nDescription: %s", j.Snippet)
	}
	return b.String()
}
