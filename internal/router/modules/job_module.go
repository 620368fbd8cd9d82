package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/container"
	handlers "github.com/jobdeck/jobdeck/internal/interface/http"
	"github.com/jobdeck/jobdeck/internal/interface/middleware"
)

type JobModule struct {
	Handler *handlers.JobHandler
}

func NewJobModule(h *handlers.JobHandler) *JobModule {
	return &JobModule{Handler: h}
}

func (m *JobModule) Register(rg *gin.RouterGroup) {
	// Listings are public; the browser front end reads them before login.
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	jobs := rg.Group("/jobs", rl)
	{
		jobs.GET("", m.Handler.List)
		jobs.GET("/search", m.Handler.Search)
		jobs.GET("/:id", m.Handler.Get)
	}
}
