package model

import (
	"time"

	"gorm.io/gorm"
)

// Project statuses.
const (
	ProjectStatusPlanning   = "planning"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusReview     = "review"
	ProjectStatusCompleted  = "completed"
)

type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TeamID      uint           `gorm:"not null;index:idx_project_team_id" json:"team_id"`
	Name        string         `gorm:"type:varchar(128);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"type:varchar(16);default:planning;index:idx_project_status" json:"status"`
	DueDate     *time.Time     `json:"dueDate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks"`
}

func (Project) TableName() string { return "projects" }
