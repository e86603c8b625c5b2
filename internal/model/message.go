package model

import "time"

// Message is an append-only channel message. Timestamp is server-assigned;
// no edit or delete is exposed.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ChannelID  uint      `gorm:"not null;index:idx_message_channel_id" json:"channel_id"`
	TeamID     uint      `gorm:"not null;index:idx_message_team_id" json:"team_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SenderID   uint      `gorm:"not null" json:"sender"`
	SenderName string    `gorm:"type:varchar(128)" json:"senderName"`
	Timestamp  time.Time `gorm:"autoCreateTime;index:idx_message_timestamp" json:"timestamp"`
}

func (Message) TableName() string { return "messages" }

// AIMessage is a message in a team's AI assistant thread.
type AIMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TeamID     uint      `gorm:"not null;index:idx_ai_message_team_id" json:"team_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SenderID   uint      `json:"sender"`
	SenderName string    `gorm:"type:varchar(128)" json:"senderName"`
	IsAI       bool      `gorm:"default:false" json:"isAI"`
	Timestamp  time.Time `gorm:"autoCreateTime;index:idx_ai_message_timestamp" json:"timestamp"`
}

func (AIMessage) TableName() string { return "ai_messages" }
