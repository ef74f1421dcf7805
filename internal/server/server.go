package server

import (
	"strings"
	"time"

	"fitpro.com.br/fitnessproapi/internal/config"
	"fitpro.com.br/fitnessproapi/internal/handler"
	"fitpro.com.br/fitnessproapi/internal/middleware"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/repository"
	"fitpro.com.br/fitnessproapi/internal/service"
	"fitpro.com.br/fitnessproapi/internal/session"
	"fitpro.com.br/fitnessproapi/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

// New wires repositories, services and handlers. redisClient, searchClient
// and imageStorage may be nil; the features they back degrade gracefully.
func New(db *gorm.DB, sessions *session.Registry, redisClient *redis.Client, searchClient meilisearch.ServiceManager, imageStorage storage.ImageStorage, cfg *config.Config) *Server {
	usuarioRepo := repository.NewUsuarioRepository(db)
	treinoRepo := repository.NewTreinoRepository(db)
	atribuicaoRepo := repository.NewAtribuicaoRepository(db)
	execucaoRepo := repository.NewExecucaoRepository(db)

	hub := service.NewNotificationHub()
	searchService := service.NewSearchService(searchClient)

	authService := service.NewAuthService(usuarioRepo, sessions)
	usuarioService := service.NewUsuarioService(usuarioRepo, cfg.ListLimit)
	treinoService := service.NewTreinoService(treinoRepo, searchService, redisClient, cfg.RateLimitCreate, cfg.ListLimit)
	atribuicaoService := service.NewAtribuicaoService(atribuicaoRepo, hub, redisClient, cfg.RateLimitCreate, cfg.ListLimit)
	execucaoService := service.NewExecucaoService(execucaoRepo, atribuicaoRepo, hub, redisClient, cfg.RateLimitCreate, cfg.ListLimit)

	authHandler := handler.NewAuthHandler(authService)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	treinoHandler := handler.NewTreinoHandler(treinoService)
	atribuicaoHandler := handler.NewAtribuicaoHandler(atribuicaoService)
	execucaoHandler := handler.NewExecucaoHandler(execucaoService)
	notificationHandler := handler.NewNotificationHandler(hub)
	uploadHandler := handler.NewUploadHandler(imageStorage, cfg.CloudinaryUploadFolder)

	authMiddleware := middleware.NewAuthMiddleware(usuarioRepo, sessions)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "FitnessPro API - v1.0"})
		})
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/cadastro/personal", authHandler.CadastroPersonal)
			auth.POST("/cadastro/aluno", authHandler.CadastroAluno)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.GET("/usuarios/me", usuarioHandler.Me)
			protected.GET("/usuarios/:id", usuarioHandler.GetByID)
			protected.PUT("/usuarios/:id", usuarioHandler.Atualizar)
			protected.DELETE("/usuarios/:id", usuarioHandler.Deletar)
			protected.POST("/usuarios/:id/medidas", usuarioHandler.AdicionarMedida)

			protected.GET("/personal/:id/alunos", usuarioHandler.ListarAlunos)
			protected.GET("/personal/:id/treinos", treinoHandler.ListarDoPersonal)
			protected.GET("/personal/:id/atribuicoes", atribuicaoHandler.ListarDoPersonal)

			protected.POST("/alunos", usuarioHandler.CriarAluno)
			protected.GET("/alunos/:id/atribuicoes", atribuicaoHandler.ListarDoAluno)
			protected.GET("/alunos/:id/execucoes", execucaoHandler.ListarDoAluno)

			protected.POST("/treinos", treinoHandler.Criar)
			protected.GET("/treinos/:id", treinoHandler.GetByID)
			protected.PUT("/treinos/:id", treinoHandler.Atualizar)
			protected.DELETE("/treinos/:id", treinoHandler.Deletar)
			protected.GET("/busca/treinos", authMiddleware.RequireTipo(model.TipoPersonal), treinoHandler.Buscar)

			protected.POST("/atribuicoes", atribuicaoHandler.Criar)
			protected.PUT("/atribuicoes/:id", atribuicaoHandler.Atualizar)
			protected.GET("/atribuicoes/:id/execucoes", execucaoHandler.ListarDaAtribuicao)

			protected.POST("/execucoes", execucaoHandler.Criar)

			protected.POST("/upload", uploadHandler.Upload)
		}

		// Websocket handshakes cannot carry headers from browsers; only this
		// route accepts the token as a query parameter.
		api.GET("/notificacoes/ws", authMiddleware.RequireAuthAllowQuery(), notificationHandler.HandleWebSocket)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

// Engine exposes the router, mainly for tests driving it with httptest.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
