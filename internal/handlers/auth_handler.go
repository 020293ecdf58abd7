package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/voicedoc/clinic-api/internal/auth"
	"github.com/voicedoc/clinic-api/internal/httpresp"
	"github.com/voicedoc/clinic-api/internal/models"
	"github.com/voicedoc/clinic-api/internal/usecase/account"
)

type signupper interface {
	Execute(ctx context.Context, in account.SignupInput) (*models.User, error)
}

type emailChecker interface {
	Execute(ctx context.Context, email string) error
}

type signinner interface {
	Execute(ctx context.Context, in account.SigninInput) (*account.SigninResult, error)
}

type signouter interface {
	Execute(ctx context.Context, id auth.Identity) error
}

type AuthHandler struct {
	signup     signupper
	checkEmail emailChecker
	signin     signinner
	signout    signouter
	logger     zerolog.Logger
}

func NewAuthHandler(
	signup signupper,
	checkEmail emailChecker,
	signin signinner,
	signout signouter,
	logger zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		signup:     signup,
		checkEmail: checkEmail,
		signin:     signin,
		signout:    signout,
		logger:     logger,
	}
}

// --------- Requests ---------

type EmailCheckRequest struct {
	Email string `json:"email"`
}

type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req account.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	if _, err := h.signup.Execute(c.Request.Context(), req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "signup success")
}

func (h *AuthHandler) EmailCheck(c *gin.Context) {
	var req EmailCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	if err := h.checkEmail.Execute(c.Request.Context(), req.Email); err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "email unique check pass")
}

func (h *AuthHandler) PasswordCheck(c *gin.Context) {
	var req PasswordCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	if err := account.CheckPassword(req.Password); err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "password check pass")
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req account.SigninInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}
	req.UserAgent = c.GetHeader("User-Agent")

	res, err := h.signin.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	message := "signin success"
	if res.User.IsDoctor() {
		message = "signin success for doctor"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"token":      res.Token,
		"expires_at": res.ExpiresAt,
		"user": gin.H{
			"id":        res.User.ID,
			"name":      res.User.Name,
			"email":     res.User.Email,
			"is_doctor": res.User.IsDoctor(),
		},
	})
}

func (h *AuthHandler) Signout(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	if err := h.signout.Execute(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "signout success")
}
