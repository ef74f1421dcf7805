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

type UsuarioHandler struct {
	usuarioService service.UsuarioService
}

func NewUsuarioHandler(usuarioService service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

func (h *UsuarioHandler) Me(c *gin.Context) {
	usuario, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) GetByID(c *gin.Context) {
	usuario, err := h.usuarioService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) ListarAlunos(c *gin.Context) {
	alunos, err := h.usuarioService.ListarAlunosDoPersonal(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if alunos == nil {
		alunos = []*model.Usuario{}
	}

	c.JSON(http.StatusOK, alunos)
}

func (h *UsuarioHandler) CriarAluno(c *gin.Context) {
	acting, err := response.GetUsuario(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.AlunoPeloPersonalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	aluno, err := h.usuarioService.CriarAlunoPeloPersonal(c.Request.Context(), acting, input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, aluno)
}

func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	var campos map[string]any
	if err := c.ShouldBindJSON(&campos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}

	usuario, err := h.usuarioService.Atualizar(c.Request.Context(), c.Param("id"), campos)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, usuario)
}

func (h *UsuarioHandler) Deletar(c *gin.Context) {
	if err := h.usuarioService.Deletar(c.Request.Context(), c.Param("id")); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário deletado com sucesso"})
}

func (h *UsuarioHandler) AdicionarMedida(c *gin.Context) {
	var input dto.AdicionarMedida
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.usuarioService.AdicionarMedida(c.Request.Context(), c.Param("id"), input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medida adicionada com sucesso"})
}
