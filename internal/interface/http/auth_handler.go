package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jobdeck/jobdeck/internal/application"
	"github.com/jobdeck/jobdeck/pkg/response"
	"github.com/jobdeck/jobdeck/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account. Any rejection, duplicate email included,
// returns 409 with the reason in the message.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	res := h.Svc.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if !res.Success {
		response.Fail(c, http.StatusConflict, res.Message)
		return
	}
	response.OK(c, http.StatusCreated, res.Message, gin.H{"token": res.Token, "user": res.User})
}

// Login exchanges credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailDetails(c, http.StatusBadRequest, "invalid request body", validation.ToDetails(err))
		return
	}

	res := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if !res.Success {
		response.Fail(c, http.StatusUnauthorized, res.Message)
		return
	}
	response.OK(c, http.StatusOK, res.Message, gin.H{"token": res.Token, "user": res.User})
}
