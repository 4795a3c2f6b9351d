package main

import (
	"log"
	"os"

	"serviify-backend/config"
	"serviify-backend/database"
	"serviify-backend/handlers"
	"serviify-backend/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	dataPath := os.Getenv("CATALOG_DATA")
	if dataPath == "" {
		dataPath = "services_data.json"
	}
	if err := database.LoadCatalogData(dataPath); err != nil {
		log.Printf("Catalog seed skipped: %v", err)
	}

	recommendationService := services.NewRecommendationService(cfg)
	profileService := services.NewProfileService(cfg)
	searchService := services.NewSearchService()
	catalogService := services.NewCatalogService()
	botService := services.NewBotService(cfg)

	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, profileService, cfg)
	interactionHandler := handlers.NewInteractionHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, searchService)
	botHandler := handlers.NewBotHandler(botService)

	r := gin.Default()

	api := r.Group("/api")
	{
		authed := api.Group("", handlers.RequireUser())
		{
			authed.GET("/recommendations", recommendationHandler.GetRecommendations)
			authed.GET("/recommendations/profile", recommendationHandler.GetProfile)
			authed.POST("/recommendations/replace-profile", recommendationHandler.ReplaceProfile)
			authed.POST("/recommendations/update-profile", recommendationHandler.UpdateProfile)
			authed.POST("/interactions/bot-chat", interactionHandler.RecordBotChat)
			authed.POST("/interactions/:serviceId", interactionHandler.RecordInteraction)
			authed.POST("/bot/message", botHandler.PostMessage)
			authed.GET("/bot/messages", botHandler.GetMessages)
		}

		api.POST("/recommendations/profile-tags", recommendationHandler.GetProfileTagRecommendations)
		api.POST("/recommendations/extract-tags", recommendationHandler.ExtractTags)

		api.GET("/services", catalogHandler.SearchServices)
		api.GET("/services/:id", catalogHandler.GetService)
		api.POST("/services", catalogHandler.CreateService)
		api.PUT("/services/:id", catalogHandler.UpdateService)
		api.POST("/services/batch-update-tags", catalogHandler.BatchUpdateTags)

		api.GET("/stats", catalogHandler.GetStats)
	}

	log.Printf("Server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
