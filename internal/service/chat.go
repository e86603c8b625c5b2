package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/internal/sse"
)

// streamTTL bounds how long a channel's replay buffer is kept after the
// last message.
const streamTTL = 24 * time.Hour

// ChatService owns team channels and their append-only message streams.
type ChatService struct {
	db  *gorm.DB
	hub *sse.Hub
}

func NewChatService(db *gorm.DB, hub *sse.Hub) *ChatService {
	return &ChatService{db: db, hub: hub}
}

func (s *ChatService) CreateChannel(teamID, createdBy uint, name, description string) (*model.Channel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrChannelNameEmpty
	}
	channel := &model.Channel{
		TeamID:      teamID,
		Name:        name,
		Description: description,
		CreatedBy:   createdBy,
	}
	if err := s.db.Create(channel).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return channel, nil
}

func (s *ChatService) ListChannels(teamID uint) ([]model.Channel, error) {
	var channels []model.Channel
	err := s.db.Where("team_id = ?", teamID).Order("created_at asc").Find(&channels).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return channels, nil
}

func (s *ChatService) GetChannel(teamID, channelID uint) (*model.Channel, error) {
	var channel model.Channel
	err := s.db.Where("team_id = ?", teamID).First(&channel, channelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &channel, nil
}

// ListMessages returns the channel's messages in server-timestamp order.
func (s *ChatService) ListMessages(teamID, channelID uint) ([]model.Message, error) {
	if _, err := s.GetChannel(teamID, channelID); err != nil {
		return nil, err
	}
	var messages []model.Message
	err := s.db.Where("channel_id = ?", channelID).Order("timestamp asc, id asc").Find(&messages).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return messages, nil
}

// SendMessage appends a message and pushes it to stream subscribers.
func (s *ChatService) SendMessage(teamID, channelID uint, sender *model.User, content string) (*model.Message, error) {
	if _, err := s.GetChannel(teamID, channelID); err != nil {
		return nil, err
	}

	message := &model.Message{
		ChannelID:  channelID,
		TeamID:     teamID,
		Content:    content,
		SenderID:   sender.ID,
		SenderName: sender.FullName(),
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}

	s.hub.Broadcast(channelID, sse.Event{Type: "message", Data: message})
	s.hub.SetExpire(channelID, streamTTL)
	return message, nil
}

// Subscribe attaches a live subscriber to the channel's stream and replays
// events recorded after lastEventID.
func (s *ChatService) Subscribe(teamID, channelID uint, lastEventID int64) ([]sse.Event, <-chan sse.Event, func(), error) {
	if _, err := s.GetChannel(teamID, channelID); err != nil {
		return nil, nil, nil, err
	}
	ch, unsub := s.hub.Subscribe(channelID)
	missed, err := s.hub.ReplayFrom(channelID, lastEventID+1)
	if err != nil {
		unsub()
		return nil, nil, nil, apperrors.Internal(err.Error())
	}
	return missed, ch, unsub, nil
}
