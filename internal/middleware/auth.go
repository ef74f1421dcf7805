package middleware

import (
	"errors"
	"net/http"
	"strings"

	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/internal/session"
	"fitpro.com.br/fitnessproapi/pkg/apperror"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthMiddleware struct {
	usuarioRepo repository.UsuarioRepository
	sessions    *session.Registry
}

func NewAuthMiddleware(usuarioRepo repository.UsuarioRepository, sessions *session.Registry) *AuthMiddleware {
	return &AuthMiddleware{
		usuarioRepo: usuarioRepo,
		sessions:    sessions,
	}
}

// RequireAuth resolves the bearer token through the session registry and
// loads the full user record into the context. A token whose user has been
// deleted fails here; tokens are not revoked when their user is removed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.requireAuth(false)
}

// RequireAuthAllowQuery additionally accepts the token as the "token" query
// parameter. Only the websocket route mounts this; browsers cannot set
// headers on a websocket handshake, and tokens in URLs end up in logs, so
// every other route stays header-only.
func (m *AuthMiddleware) RequireAuthAllowQuery() gin.HandlerFunc {
	return m.requireAuth(true)
}

func (m *AuthMiddleware) requireAuth(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c.GetHeader("Authorization"))
		if token == "" && allowQuery {
			token = c.Query("token")
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "não autorizado"})
			c.Abort()
			return
		}

		userID, ok := m.sessions.Resolve(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token inválido"})
			c.Abort()
			return
		}

		usuario, err := m.usuarioRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			// A storage failure is not an auth failure.
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "usuário não encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": apperror.ErrInterno.Error()})
			}
			c.Abort()
			return
		}

		c.Set("user_id", usuario.ID)
		c.Set("usuario", usuario)
		c.Next()
	}
}

// RequireTipo gates a route to one role. It must run after RequireAuth.
func (m *AuthMiddleware) RequireTipo(tipo model.TipoUsuario) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("usuario")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "não autorizado"})
			c.Abort()
			return
		}

		usuario, ok := value.(*model.Usuario)
		if !ok || usuario.Tipo != tipo {
			c.JSON(http.StatusForbidden, gin.H{"error": "acesso negado"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ExtractToken pulls the opaque token out of an Authorization header value.
// Returns "" when the header is absent or not a bearer scheme.
func ExtractToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}
