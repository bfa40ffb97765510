package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runway.app/api/internal/http/dto"
	"runway.app/api/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		OrganizationName: req.OrganizationName,
		Currency:         req.Currency,
	})
	if err != nil {
		respondError(c, err, "failed to sign up")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := h.authService.Login(c.Request.Context(), service.LoginInput{
		Email:          req.Email,
		Password:       req.Password,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		respondError(c, err, "failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), p); err != nil {
		respondError(c, err, "failed to log out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	profile, err := h.authService.Me(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToMeResponse(profile))
}
