package services

import (
	"testing"
	"time"

	"serviify-backend/config"
	"serviify-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Service{},
		&models.User{},
		&models.Interaction{},
		&models.Review{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedService(t *testing.T, db *gorm.DB, id, title, category string, tags []string, lat, lng float64) {
	t.Helper()
	svc := models.Service{ID: id, Title: title, Category: category, Latitude: lat, Longitude: lng}
	svc.SetTagList(tags)
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("failed to seed service %s: %v", id, err)
	}
}

func seedInteraction(t *testing.T, db *gorm.DB, id, userID, serviceID, kind string) {
	t.Helper()
	in := models.Interaction{ID: id, UserID: userID, ServiceID: serviceID, Type: kind, Timestamp: time.Now()}
	if err := db.Create(&in).Error; err != nil {
		t.Fatalf("failed to seed interaction %s: %v", id, err)
	}
}

// The content engine scores the whole catalog, including services the
// user already interacted with; exclusions happen downstream.
func TestContentScores_CoversWholeCatalog(t *testing.T) {
	db := newTestDB(t)
	seedService(t, db, "history", "Deep Cleaning", "Cleaning", []string{"cleaning", "kitchen"}, 22.49, 88.34)
	seedService(t, db, "candidate", "Kitchen Cleaning", "Cleaning", []string{"cleaning"}, 22.50, 88.35)
	seedService(t, db, "unrelated", "Pipe Fitting", "Plumbing", []string{"plumbing"}, 22.51, 88.36)
	seedInteraction(t, db, "i1", "u1", "history", models.InteractionView)

	scores, err := contentScores(db, "u1")
	if err != nil {
		t.Fatalf("contentScores() error: %v", err)
	}

	if _, ok := scores["history"]; !ok {
		t.Error("service from the user's own history must be scored")
	}
	if _, ok := scores["candidate"]; !ok {
		t.Error("catalog service sharing tokens with the corpus must be scored")
	}
	if _, ok := scores["unrelated"]; ok {
		t.Error("service sharing no tokens with the corpus must not appear")
	}
}

func TestContentScores_NoHistory(t *testing.T) {
	db := newTestDB(t)
	seedService(t, db, "svc", "Deep Cleaning", "Cleaning", []string{"cleaning"}, 22.49, 88.34)

	scores, err := contentScores(db, "no-such-user")
	if err != nil {
		t.Fatalf("contentScores() error: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("user without history should get an empty signal, got %v", scores)
	}
}

func TestCollaborativeScores_SurfacesSimilarUsersServices(t *testing.T) {
	db := newTestDB(t)
	seedService(t, db, "shared", "Deep Cleaning", "Cleaning", []string{"cleaning"}, 22.49, 88.34)
	seedService(t, db, "theirs", "Wall Painting", "Painting", []string{"painting"}, 22.50, 88.35)
	seedInteraction(t, db, "i1", "target", "shared", models.InteractionView)
	seedInteraction(t, db, "i2", "neighbor", "shared", models.InteractionClick)
	seedInteraction(t, db, "i3", "neighbor", "theirs", models.InteractionBooking)

	scores, err := collaborativeScores(db, "target")
	if err != nil {
		t.Fatalf("collaborativeScores() error: %v", err)
	}

	if scores["theirs"] != 1.0 {
		t.Errorf("neighbor's booking should contribute 1.0, got %v", scores["theirs"])
	}
	if _, ok := scores["shared"]; ok {
		t.Error("the target's own services must not be recommended back")
	}
}

func TestPopularityScores_NormalizedByMax(t *testing.T) {
	db := newTestDB(t)
	reviews := []models.Review{
		{ID: "r1", ServiceID: "a", Rating: 5},
		{ID: "r2", ServiceID: "a", Rating: 4},
		{ID: "r3", ServiceID: "b", Rating: 3},
	}
	for i := range reviews {
		if err := db.Create(&reviews[i]).Error; err != nil {
			t.Fatalf("failed to seed review: %v", err)
		}
	}

	scores, err := popularityScores(db)
	if err != nil {
		t.Fatalf("popularityScores() error: %v", err)
	}

	if scores["a"] != 1.0 {
		t.Errorf("most-reviewed service should score 1.0, got %v", scores["a"])
	}
	if scores["b"] != 0.5 {
		t.Errorf("half the reviews should score 0.5, got %v", scores["b"])
	}
}

func TestLocationFallback_NearestFirst(t *testing.T) {
	db := newTestDB(t)
	seedService(t, db, "farther", "Pipe Fitting", "Plumbing", []string{"plumbing"}, 22.5203, 88.3527)
	seedService(t, db, "nearest", "Deep Cleaning", "Cleaning", []string{"cleaning"}, 22.4912, 88.3428)

	rs := &RecommendationService{db: db, cfg: &config.Config{MaxRadiusKm: 50}}
	ranked, err := rs.locationFallback(22.4911, 88.3427)
	if err != nil {
		t.Fatalf("locationFallback() error: %v", err)
	}

	if len(ranked) != 2 || ranked[0].ID != "nearest" {
		t.Fatalf("expected nearest service first, got %v", ranked)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Error("scores must decrease with distance")
	}
}

func TestLocationFallback_OutOfRadius(t *testing.T) {
	db := newTestDB(t)
	seedService(t, db, "remote-a", "Deep Cleaning", "Cleaning", []string{"cleaning"}, 10.0, 76.0)
	seedService(t, db, "remote-b", "Pipe Fitting", "Plumbing", []string{"plumbing"}, 10.1, 76.1)

	rs := &RecommendationService{db: db, cfg: &config.Config{MaxRadiusKm: 50}}
	ranked, err := rs.locationFallback(22.4911, 88.3427)
	if err != nil {
		t.Fatalf("locationFallback() error: %v", err)
	}

	if len(ranked) != 2 {
		t.Fatalf("expected the first catalog entries as last resort, got %v", ranked)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Error("last-resort scores must decrease")
	}
}
