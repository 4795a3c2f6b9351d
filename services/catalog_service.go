package services

import (
	"errors"
	"fmt"
	"time"

	"serviify-backend/database"
	"serviify-backend/models"
	"serviify-backend/tagger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService owns service CRUD. Tags are always generated
// server-side from title, description and category.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService() *CatalogService {
	return &CatalogService{db: database.GetDB()}
}

func (s *CatalogService) Create(req *models.ServiceRequest) (*models.Service, error) {
	service := models.Service{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		Provider:    req.Provider,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CreatedAt:   time.Now(),
	}
	service.SetTagList(tagger.GenerateTags(req.Title, req.Description, req.Category))

	if err := s.db.Create(&service).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

func (s *CatalogService) Update(id string, req *models.ServiceRequest) (*models.Service, error) {
	var service models.Service
	if err := s.db.Where("id = ?", id).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Price = req.Price
	service.Duration = req.Duration
	service.Category = req.Category
	service.Provider = req.Provider
	service.Latitude = req.Latitude
	service.Longitude = req.Longitude
	service.SetTagList(tagger.GenerateTags(req.Title, req.Description, req.Category))
	service.UpdatedAt = time.Now()

	if err := s.db.Save(&service).Error; err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &service, nil
}

func (s *CatalogService) GetByID(id string) (*models.Service, error) {
	var service models.Service
	if err := s.db.Where("id = ?", id).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service not found: %s", id)
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	return &service, nil
}

// BatchUpdateTags regenerates the tag column for the whole catalog,
// for when the keyword buckets change after services were seeded.
func (s *CatalogService) BatchUpdateTags() (int, error) {
	var catalog []models.Service
	if err := s.db.Find(&catalog).Error; err != nil {
		return 0, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	updated := 0
	for i := range catalog {
		svc := &catalog[i]
		before := svc.Tags
		svc.SetTagList(tagger.GenerateTags(svc.Title, svc.Description, svc.Category))
		if svc.Tags == before {
			continue
		}
		if err := s.db.Model(svc).Update("tags", svc.Tags).Error; err != nil {
			return updated, fmt.Errorf("failed to update tags for %s: %w", svc.ID, err)
		}
		updated++
	}
	return updated, nil
}

// CatalogStats summarizes catalog and interaction volume.
type CatalogStats struct {
	Services     int64 `json:"services"`
	Users        int64 `json:"users"`
	Interactions int64 `json:"interactions"`
	Reviews      int64 `json:"reviews"`
	Bookings     int64 `json:"bookings"`
}

func (s *CatalogService) Stats() (*CatalogStats, error) {
	var stats CatalogStats
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Service{}, &stats.Services},
		{&models.User{}, &stats.Users},
		{&models.Interaction{}, &stats.Interactions},
		{&models.Review{}, &stats.Reviews},
		{&models.Booking{}, &stats.Bookings},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
	}
	return &stats, nil
}
