package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/container"
	handlers "github.com/jobdeck/jobdeck/internal/interface/http"
	"github.com/jobdeck/jobdeck/internal/interface/middleware"
)

type LetterModule struct {
	Handler *handlers.LetterHandler
}

func NewLetterModule(h *handlers.LetterHandler) *LetterModule {
	return &LetterModule{Handler: h}
}

func (m *LetterModule) Register(rg *gin.RouterGroup) {
	// Generation hits a paid LLM endpoint, so the per-user limit is tight.
	auth := rg.Group("/letters")
	auth.Use(middleware.RequireAuth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/generate", m.Handler.Generate)
		auth.POST("/from-job", m.Handler.FromJob)
		auth.POST("/save", m.Handler.Save)
	}
}
