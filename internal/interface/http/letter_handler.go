package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/application"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/internal/interface/middleware"
	"github.com/jobdeck/jobdeck/pkg/response"
	"github.com/jobdeck/jobdeck/pkg/validation"
)

type LetterHandler struct {
	Svc        *application.LetterService
	Applicants repo.ApplicantRepository
	Logger     *logrus.Logger
}

func NewLetterHandler(svc *application.LetterService, applicants repo.ApplicantRepository, logger *logrus.Logger) *LetterHandler {
	return &LetterHandler{Svc: svc, Applicants: applicants, Logger: logger}
}

type generateRequest struct {
	JobDescription string `json:"jobDescription" binding:"required"`
	UserProfile    string `json:"userProfile" binding:"required"`
}

type fromJobRequest struct {
	JobID             int    `json:"jobId" binding:"required,gt=0"`
	CustomUserProfile string `json:"customUserProfile"`
}

type saveRequest struct {
	CoverLetter string `json:"coverLetter" binding:"required"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
}

// Generate drafts a letter from free-text job description and profile.
func (h *LetterHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	letter, err := h.Svc.Generate(c.Request.Context(), req.JobDescription, req.UserProfile)
	if err != nil {
		if errors.Is(err, application.ErrInvalidInput) {
			response.Fail(c, http.StatusBadRequest, "Input is too long or contains disallowed content")
			return
		}
		h.Logger.WithError(err).Error("cover letter generation failed")
		response.Fail(c, http.StatusBadGateway, "Cover letter generation failed")
		return
	}
	response.OK(c, http.StatusOK, "Cover letter generated", gin.H{"coverLetter": letter})
}

// FromJob drafts a letter for a stored job posting, using the caller's
// profile unless a custom one is supplied.
func (h *LetterHandler) FromJob(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Valid authorization token required")
		return
	}

	var req fromJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	letter, err := h.Svc.GenerateFromJob(c.Request.Context(), id, req.JobID, req.CustomUserProfile)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			response.Fail(c, http.StatusNotFound, "Job not found")
		case errors.Is(err, application.ErrInvalidInput):
			response.Fail(c, http.StatusBadRequest, "Input is too long or contains disallowed content")
		default:
			h.Logger.WithError(err).WithField("job_id", req.JobID).Error("cover letter generation failed")
			response.Fail(c, http.StatusBadGateway, "Cover letter generation failed")
		}
		return
	}
	response.OK(c, http.StatusOK, "Cover letter generated", gin.H{"coverLetter": letter})
}

// Save stores the finished letter as a blob and queues it for email
// delivery to the caller's address.
func (h *LetterHandler) Save(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Valid authorization token required")
		return
	}

	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	applicant, err := h.Applicants.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Profile not found")
			return
		}
		h.Logger.WithError(err).WithField("applicant_id", id).Error("applicant lookup failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to save cover letter")
		return
	}

	blobName, err := h.Svc.SaveAndSend(c.Request.Context(), applicant, req.CoverLetter, req.JobTitle, req.CompanyName)
	if err != nil {
		h.Logger.WithError(err).WithField("applicant_id", id).Error("letter save failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to save cover letter")
		return
	}
	response.OK(c, http.StatusOK, "Cover letter saved and queued for delivery", gin.H{"blobName": blobName})
}
