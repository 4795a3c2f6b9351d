package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"serviify-backend/config"
	"serviify-backend/database"
	"serviify-backend/models"
	"serviify-backend/prompts"
	"serviify-backend/tagger"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"
)

const fallbackReply = "I can help you find home services like cleaning, plumbing, repairs and more. What are you looking for?"

// BotService handles the chatbot: one LLM turn per user message, with
// the reply's extracted tags returned so the interaction path can
// reinforce the user's profile.
type BotService struct {
	client     *openai.Client
	db         *gorm.DB
	cfg        *config.Config
	replyCache sync.Map // normalized message -> reply
}

// NewBotService creates a new bot service instance
func NewBotService(cfg *config.Config) *BotService {
	var client *openai.Client

	switch cfg.LLMProvider {
	case "openai":
		clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
		client = openai.NewClientWithConfig(clientConfig)
	case "groq":
		clientConfig := openai.DefaultConfig(cfg.GroqKey)
		clientConfig.BaseURL = cfg.LLMBaseURL
		client = openai.NewClientWithConfig(clientConfig)
	default:
		log.Fatalf("Invalid LLM provider: %s", cfg.LLMProvider)
	}

	return &BotService{
		client: client,
		db:     database.GetDB(),
		cfg:    cfg,
	}
}

// HandleMessage persists the user turn, generates a reply, persists
// it, and returns the reply with its filtered candidate tags.
func (s *BotService) HandleMessage(ctx context.Context, userID, text string) (*models.BotMessageResponse, error) {
	if err := s.saveMessage(userID, "user", text); err != nil {
		return nil, err
	}

	reply := s.generateReply(ctx, text)

	if err := s.saveMessage(userID, "bot", reply); err != nil {
		return nil, err
	}

	tags := tagger.FilterBotTags(tagger.ExtractQueryTags(reply), s.cfg.Profile.MaxBotTags)
	return &models.BotMessageResponse{Reply: reply, Tags: tags}, nil
}

// Messages returns the stored transcript for a user, oldest first.
func (s *BotService) Messages(userID string) ([]models.BotMessage, error) {
	var messages []models.BotMessage
	err := s.db.Where("user_id = ?", userID).Order("timestamp ASC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot messages: %w", err)
	}
	return messages, nil
}

func (s *BotService) generateReply(ctx context.Context, text string) string {
	cacheKey := strings.ToLower(strings.TrimSpace(text))
	if cached, ok := s.replyCache.Load(cacheKey); ok {
		return cached.(string)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.cfg.BotModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: prompts.BotSystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.3,
		MaxTokens:   200,
	})
	if err != nil {
		log.Printf("LLM chat error: %v", err)
		return fallbackReply
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return fallbackReply
	}

	s.replyCache.Store(cacheKey, reply)
	return reply
}

func (s *BotService) saveMessage(userID, sender, text string) error {
	msg := models.BotMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return fmt.Errorf("failed to save bot message: %w", err)
	}
	return nil
}
