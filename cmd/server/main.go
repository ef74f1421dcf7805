package main

import (
	"log"
	"os"

	"fitpro.com.br/fitnessproapi/internal/bootstrap"
	"fitpro.com.br/fitnessproapi/internal/config"
	"fitpro.com.br/fitnessproapi/internal/model"
	"fitpro.com.br/fitnessproapi/internal/server"
	"fitpro.com.br/fitnessproapi/internal/session"
	"fitpro.com.br/fitnessproapi/pkg/database"
	"fitpro.com.br/fitnessproapi/pkg/storage"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedDemoPersonal(db); err != nil {
			log.Fatalf("failed to seed demo personal: %v", err)
		}
	}

	// All sessions die with the process; clients log in again after a restart.
	sessions := session.NewRegistry()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, create rate limiting disabled")
	}

	var searchClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		searchClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	} else {
		log.Println("MEILISEARCH_HOST not set, treino search disabled")
	}

	var imageStorage storage.ImageStorage
	if os.Getenv("CLOUDINARY_URL") != "" {
		imageStorage, err = storage.NewCloudinaryStorage()
		if err != nil {
			log.Fatalf("failed to initialize cloudinary storage: %v", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image upload disabled")
	}

	srv := server.New(db, sessions, redisClient, searchClient, imageStorage, cfg)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Treino{},
		&model.Atribuicao{},
		&model.Execucao{},
	)
}
