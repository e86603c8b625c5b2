package model

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(128);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Mission     string         `gorm:"type:text" json:"mission"`
	Vision      string         `gorm:"type:text" json:"vision"`
	Goals       string         `gorm:"type:text" json:"goals"`
	Industry    string         `gorm:"type:varchar(64)" json:"industry"`
	CreatorID   uint           `gorm:"not null;index:idx_team_creator_id" json:"creator_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Creator *User        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

func (Team) TableName() string { return "teams" }
