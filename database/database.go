package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"serviify-backend/config"
	"serviify-backend/models"
	"serviify-backend/tagger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = DB.AutoMigrate(
		&models.Service{},
		&models.User{},
		&models.Interaction{},
		&models.Review{},
		&models.Booking{},
		&models.BotMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}

// seedService mirrors the catalog seed file format.
type seedService struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
	ProviderID  string  `json:"provider_id"`
	Provider    string  `json:"provider"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// LoadCatalogData loads services from a JSON seed file, generating
// tags for each entry. Skipped when the catalog is already populated.
func LoadCatalogData(filePath string) error {
	var count int64
	DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Printf("Database already contains %d services, skipping data load", count)
		return nil
	}

	log.Println("Loading catalog data from file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	var seeds []seedService
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	services := make([]models.Service, 0, len(seeds))
	for _, s := range seeds {
		svc := models.Service{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
			Category:    s.Category,
			ProviderID:  s.ProviderID,
			Provider:    s.Provider,
			Latitude:    s.Latitude,
			Longitude:   s.Longitude,
		}
		svc.SetTagList(tagger.GenerateTags(s.Title, s.Description, s.Category))
		services = append(services, svc)
	}

	batchSize := 100
	successCount := 0
	for i := 0; i < len(services); i += batchSize {
		end := i + batchSize
		if end > len(services) {
			end = len(services)
		}
		batch := services[i:end]
		if err := DB.Create(&batch).Error; err != nil {
			log.Printf("Failed to insert batch: %v", err)
		} else {
			successCount += len(batch)
		}
	}

	log.Printf("Catalog load complete: %d services inserted", successCount)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
