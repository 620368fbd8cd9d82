package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/internal/container"
	handlers "github.com/jobdeck/jobdeck/internal/interface/http"
	"github.com/jobdeck/jobdeck/internal/interface/middleware"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile", m.Handler.Get)
		auth.PUT("/profile", m.Handler.Update)
		auth.GET("/applicants", m.Handler.ListApplicants)
	}
}
