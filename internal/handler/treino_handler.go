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

type TreinoHandler struct {
	treinoService service.TreinoService
}

func NewTreinoHandler(treinoService service.TreinoService) *TreinoHandler {
	return &TreinoHandler{treinoService: treinoService}
}

func (h *TreinoHandler) Criar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.TreinoCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	treino, err := h.treinoService.Criar(c.Request.Context(), acting, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, treino)
}

func (h *TreinoHandler) GetByID(c *gin.Context) {
	treino, err := h.treinoService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, treino)
}

func (h *TreinoHandler) ListarDoPersonal(c *gin.Context) {
	treinos, err := h.treinoService.ListarDoPersonal(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if treinos == nil {
		treinos = []*model.Treino{}
	}

	c.JSON(http.StatusOK, treinos)
}

func (h *TreinoHandler) Atualizar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.TreinoUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	treino, err := h.treinoService.Atualizar(c.Request.Context(), acting, c.Param("id"), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, treino)
}

func (h *TreinoHandler) Deletar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.treinoService.Deletar(c.Request.Context(), acting, c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treino deletado com sucesso"})
}

func (h *TreinoHandler) Buscar(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var filter dto.TreinoBuscaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	docs, err := h.treinoService.Buscar(c.Request.Context(), acting, filter.Query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
