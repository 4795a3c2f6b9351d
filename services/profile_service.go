package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"sync"
	"time"

	"serviify-backend/config"
	"serviify-backend/database"
	"serviify-backend/models"
	"serviify-backend/tagger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileService owns the per-user tag profiles. Profile updates are
// read-modify-write cycles, so concurrent requests for the same user
// are serialized through a striped mutex keyed by user ID.
type ProfileService struct {
	db      *gorm.DB
	cfg     config.ProfileConfig
	stripes [64]sync.Mutex
}

func NewProfileService(cfg *config.Config) *ProfileService {
	return &ProfileService{
		db:  database.GetDB(),
		cfg: cfg.Profile,
	}
}

func (s *ProfileService) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &s.stripes[h.Sum32()%uint32(len(s.stripes))]
}

// RecordInteraction persists a view/click/booking event and folds the
// service's tags into the user's profile. An interaction against a
// service that no longer exists is recorded but leaves the profile
// untouched.
func (s *ProfileService) RecordInteraction(userID, serviceID, interactionType string) error {
	if !models.ValidInteractionType(interactionType) {
		return fmt.Errorf("invalid interaction type: %s", interactionType)
	}

	interaction := models.Interaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		ServiceID: serviceID,
		Type:      interactionType,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&interaction).Error; err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}

	var service models.Service
	if err := s.db.Where("id = ?", serviceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("interaction %s references unknown service %s, skipping profile update", interactionType, serviceID)
			return nil
		}
		return fmt.Errorf("failed to fetch service: %w", err)
	}

	serviceBoost, tagBoost := models.BoostMagnitudes(interactionType)

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.loadOrCreateUser(userID)
	if err != nil {
		return err
	}

	s.decay(user)
	for _, tag := range service.TagList() {
		user.TagProfile.Boost(tag, tagBoost, tagBoost)
	}
	user.TagProfile.Boost("service_"+serviceID, serviceBoost, serviceBoost)
	s.finalize(user)

	return s.save(user)
}

// RecordBotChat persists a chat transcript turn under the bot-chat
// sentinel and applies the extracted tags at the assistant's boost
// level. A tag profile mirrored from the client wins last-writer
// style over the merged result.
func (s *ProfileService) RecordBotChat(userID string, extractedTags []string, mirrored models.TagProfile) error {
	interaction := models.Interaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		ServiceID: models.BotChatServiceID,
		Type:      models.InteractionBotChat,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&interaction).Error; err != nil {
		return fmt.Errorf("failed to record bot interaction: %w", err)
	}

	boost, _ := models.SourceBoost("bot")
	tags := tagger.FilterBotTags(extractedTags, s.cfg.MaxBotTags)

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.loadOrCreateUser(userID)
	if err != nil {
		return err
	}

	s.decay(user)
	for _, tag := range tags {
		user.TagProfile.Boost(tag, boost, boost*2)
	}
	for tag, weight := range mirrored {
		user.TagProfile[tag] = weight
	}
	s.finalize(user)

	return s.save(user)
}

// UpdateProfile applies a batch of tags from a named source. Unknown
// sources are rejected so callers cannot invent their own boost level.
func (s *ProfileService) UpdateProfile(userID string, newTags []string, source string) (models.TagProfile, error) {
	boost, ok := models.SourceBoost(source)
	if !ok {
		return nil, fmt.Errorf("unknown profile source: %s", source)
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.loadOrCreateUser(userID)
	if err != nil {
		return nil, err
	}

	s.decay(user)
	for _, tag := range newTags {
		user.TagProfile.Boost(tag, boost, boost*2)
	}
	s.finalize(user)

	if err := s.save(user); err != nil {
		return nil, err
	}
	return user.TagProfile.Clone(), nil
}

// GetProfile returns the stored profile, or an empty one for a user
// we have never seen.
func (s *ProfileService) GetProfile(userID string) (models.TagProfile, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TagProfile{}, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user.TagProfile == nil {
		return models.TagProfile{}, nil
	}
	return user.TagProfile.Clone(), nil
}

// ReplaceProfile overwrites the stored profile wholesale, after
// validating the submitted weights.
func (s *ProfileService) ReplaceProfile(userID string, profile models.TagProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.loadOrCreateUser(userID)
	if err != nil {
		return err
	}
	user.TagProfile = profile.Clone()
	s.finalize(user)

	return s.save(user)
}

func (s *ProfileService) loadOrCreateUser(userID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err == nil {
		if user.TagProfile == nil {
			user.TagProfile = models.TagProfile{}
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	user = models.User{
		ID:         userID,
		TagProfile: models.TagProfile{},
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// decay applies the per-update decay compounded with the elapsed-time
// decay since the profile was last touched.
func (s *ProfileService) decay(user *models.User) {
	factor := s.cfg.DecayFactor * models.TimeDecayFactor(s.cfg.TimeDecayFactor, user.UpdatedAt, time.Now())
	user.TagProfile.Decay(factor)
}

// finalize prunes vanishing weights and caps the profile size; it
// must run after every batch of boosts.
func (s *ProfileService) finalize(user *models.User) {
	user.TagProfile.Prune(s.cfg.PruneThreshold)
	user.TagProfile.Cap(s.cfg.MaxTags)
}

func (s *ProfileService) save(user *models.User) error {
	user.UpdatedAt = time.Now()
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
