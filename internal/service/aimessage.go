package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/bot"
	"github.com/kztJames01/makerSpace/internal/model"
)

const aiSenderName = "AI Assistant"

// AIMessageService owns the per-team AI assistant thread.
type AIMessageService struct {
	db     *gorm.DB
	client *bot.AIChatClient
}

func NewAIMessageService(db *gorm.DB, client *bot.AIChatClient) *AIMessageService {
	return &AIMessageService{db: db, client: client}
}

func (s *AIMessageService) List(teamID uint) ([]model.AIMessage, error) {
	var messages []model.AIMessage
	err := s.db.Where("team_id = ?", teamID).Order("timestamp asc, id asc").Find(&messages).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return messages, nil
}

// Append stores a user-authored message in the thread.
func (s *AIMessageService) Append(teamID uint, sender *model.User, content string) (*model.AIMessage, error) {
	message := &model.AIMessage{
		TeamID:     teamID,
		Content:    content,
		SenderID:   sender.ID,
		SenderName: sender.FullName(),
		IsAI:       false,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return message, nil
}

// Generate stores the user message, asks the assistant with recent thread
// history, and stores the reply. The user message survives even when the
// assistant call fails, matching how the thread behaves in the client.
func (s *AIMessageService) Generate(ctx context.Context, teamID uint, sender *model.User, content string) (*model.AIMessage, *model.AIMessage, error) {
	if s.client == nil {
		return nil, nil, apperrors.Internal("ai chat is not configured")
	}

	history, err := s.recentHistory(teamID)
	if err != nil {
		return nil, nil, err
	}

	userMsg, err := s.Append(teamID, sender, content)
	if err != nil {
		return nil, nil, err
	}

	reply, err := s.client.Chat(ctx, history, content)
	if err != nil {
		return userMsg, nil, apperrors.Internal("generate reply: " + err.Error())
	}

	aiMsg := &model.AIMessage{
		TeamID:     teamID,
		Content:    reply,
		SenderName: aiSenderName,
		IsAI:       true,
	}
	if err := s.db.Create(aiMsg).Error; err != nil {
		return userMsg, nil, apperrors.Internal(err.Error())
	}
	return userMsg, aiMsg, nil
}

// recentHistory maps the tail of the thread to chat roles.
func (s *AIMessageService) recentHistory(teamID uint) ([]bot.ChatMessage, error) {
	limit := s.client.MaxHistory() * 2
	var messages []model.AIMessage
	err := s.db.Where("team_id = ?", teamID).Order("timestamp desc, id desc").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}

	history := make([]bot.ChatMessage, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		role := "user"
		if messages[i].IsAI {
			role = "assistant"
		}
		history = append(history, bot.ChatMessage{Role: role, Content: messages[i].Content})
	}
	return history, nil
}
