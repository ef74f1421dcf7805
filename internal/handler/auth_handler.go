package handler

import (
	"net/http"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/middleware"
	"fitpro.com.br/fitnessproapi/internal/service"
	"fitpro.com.br/fitnessproapi/pkg/response"
	"fitpro.com.br/fitnessproapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) CadastroPersonal(c *gin.Context) {
	var input dto.PersonalCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.authService.CadastroPersonal(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) CadastroAluno(c *gin.Context) {
	var input dto.AlunoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.authService.CadastroAluno(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout always answers 200; an absent or unknown token is not an error.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.ExtractToken(c.GetHeader("Authorization")); token != "" {
		h.authService.Logout(token)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado"})
}
