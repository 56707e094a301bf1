// @title Course Catalog API
// @version 1.0
// @description Catalog backend for the online-course platform: course browsing, instructor-owned course mutations, and video upload credentials.

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"course_catalog_backend/internal/app"
	"course_catalog_backend/internal/config"
	"course_catalog_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
