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

type ProfileHandler struct {
	Svc    *application.ApplicantService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ApplicantService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// Get returns the authenticated applicant's profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Valid authorization token required")
		return
	}
	p, err := h.Svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Profile not found")
			return
		}
		h.Logger.WithError(err).WithField("applicant_id", id).Error("profile load failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	response.OK(c, http.StatusOK, "Profile loaded", gin.H{"profile": p})
}

// Update overwrites the editable profile fields. Blank first or last name
// keeps the stored value.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Valid authorization token required")
		return
	}

	var req application.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Profile not found")
			return
		}
		h.Logger.WithError(err).WithField("applicant_id", id).Error("profile update failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	response.OK(c, http.StatusOK, "Profile updated", gin.H{"profile": p})
}

// ListApplicants returns every applicant with password hashes stripped.
func (h *ProfileHandler) ListApplicants(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("applicant list failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to load applicants")
		return
	}
	response.OK(c, http.StatusOK, "Applicants loaded", gin.H{"applicants": all})
}
