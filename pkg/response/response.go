package response

import (
	"log"
	"net/http"

	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUsuario retrieves the authenticated user set by the auth middleware.
func GetUsuario(c *gin.Context) (*model.Usuario, error) {
	value, exists := c.Get("usuario")
	if !exists {
		return nil, apperror.ErrNaoAutenticado
	}

	usuario, ok := value.(*model.Usuario)
	if !ok {
		return nil, apperror.ErrNaoAutenticado
	}

	return usuario, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
