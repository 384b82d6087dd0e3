package main

import (
	"log"
	"time"

	"github.com/geogram/map-backend-go/internal/api"
	"github.com/geogram/map-backend-go/internal/config"
	"github.com/geogram/map-backend-go/internal/database"
	"github.com/geogram/map-backend-go/internal/repository"
	"github.com/geogram/map-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	sweeper := service.NewPostService(repository.NewPostRepository(database.GetDB()), cfg.ExpirationHours)
	go runSweeper(sweeper)

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// runSweeper removes expired posts once an hour so the feed table does
// not grow without bound
func runSweeper(posts *service.PostService) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for now := range ticker.C {
		removed, err := posts.Sweep(now)
		if err != nil {
			log.Printf("Sweep failed: %v", err)
			continue
		}
		if removed > 0 {
			log.Printf("Swept %d expired posts", removed)
		}
	}
}
