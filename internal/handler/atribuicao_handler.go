package handler

import (
	"net/http"

	"fitpro.com.br/fitnessproapi/internal/dto"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/service"
	"fitpro.com.br/fitnessproapi/pkg/response"
	"fitpro.com.br/fitnessproapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AtribuicaoHandler struct {
	atribuicaoService service.AtribuicaoService
}

func NewAtribuicaoHandler(atribuicaoService service.AtribuicaoService) *AtribuicaoHandler {
	return &AtribuicaoHandler{atribuicaoService: atribuicaoService}
}

func (h *AtribuicaoHandler) Criar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.AtribuicaoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	atribuicao, err := h.atribuicaoService.Criar(c.Request.Context(), acting, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, atribuicao)
}

func (h *AtribuicaoHandler) ListarDoAluno(c *gin.Context) {
	atribuicoes, err := h.atribuicaoService.ListarDoAluno(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if atribuicoes == nil {
		atribuicoes = []*model.Atribuicao{}
	}

	c.JSON(http.StatusOK, atribuicoes)
}

func (h *AtribuicaoHandler) ListarDoPersonal(c *gin.Context) {
	atribuicoes, err := h.atribuicaoService.ListarDoPersonal(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if atribuicoes == nil {
		atribuicoes = []*model.Atribuicao{}
	}

	c.JSON(http.StatusOK, atribuicoes)
}

func (h *AtribuicaoHandler) Atualizar(c *gin.Context) {
	var campos map[string]any
	if err := c.ShouldBindJSON(&campos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	if _, err := h.atribuicaoService.Atualizar(c.Request.Context(), c.Param("id"), campos); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Atribuição atualizada"})
}
