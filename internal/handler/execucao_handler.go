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

type ExecucaoHandler struct {
	execucaoService service.ExecucaoService
}

func NewExecucaoHandler(execucaoService service.ExecucaoService) *ExecucaoHandler {
	return &ExecucaoHandler{execucaoService: execucaoService}
}

func (h *ExecucaoHandler) Criar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.ExecucaoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	execucao, err := h.execucaoService.Criar(c.Request.Context(), acting, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, execucao)
}

func (h *ExecucaoHandler) ListarDoAluno(c *gin.Context) {
	execucoes, err := h.execucaoService.ListarDoAluno(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if execucoes == nil {
		execucoes = []*model.Execucao{}
	}

	c.JSON(http.StatusOK, execucoes)
}

func (h *ExecucaoHandler) ListarDaAtribuicao(c *gin.Context) {
	execucoes, err := h.execucaoService.ListarDaAtribuicao(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if execucoes == nil {
		execucoes = []*model.Execucao{}
	}

	c.JSON(http.StatusOK, execucoes)
}
