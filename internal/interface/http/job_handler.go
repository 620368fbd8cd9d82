package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/application"
	repo "github.com/jobdeck/jobdeck/internal/domain/repository"
	"github.com/jobdeck/jobdeck/pkg/response"
)

type JobHandler struct {
	Svc    *application.JobService
	Logger *logrus.Logger
}

func NewJobHandler(svc *application.JobService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Svc: svc, Logger: logger}
}

// List returns every stored job listing, newest first.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("job list failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to load jobs")
		return
	}
	response.OK(c, http.StatusOK, "Jobs loaded", gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, "Invalid job id")
		return
	}
	job, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Job not found")
			return
		}
		h.Logger.WithError(err).WithField("job_id", id).Error("job lookup failed")
		response.Fail(c, http.StatusInternalServerError, "Failed to load job")
		return
	}
	response.OK(c, http.StatusOK, "Job loaded", gin.H{"job": job})
}

// Search queries the jobs index. Missing q is a 400; an unconfigured index
// yields an empty result set.
func (h *JobHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	results, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).WithField("query", q).Error("job search failed")
		response.Fail(c, http.StatusInternalServerError, "Search failed")
		return
	}
	response.OK(c, http.StatusOK, "Search results", gin.H{"results": results})
}
