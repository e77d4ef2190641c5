package main

import (
	"log"

	"github.com/matchlens/pitchtrack/internal/api"
	"github.com/matchlens/pitchtrack/internal/config"
	"github.com/matchlens/pitchtrack/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
