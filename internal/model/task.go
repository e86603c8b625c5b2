package model

import (
	"time"

	"gorm.io/gorm"
)

// Task statuses. Transitions are unconstrained: any status may be set
// to any other.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

type Task struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ProjectID   uint           `gorm:"not null;index:idx_task_project_id" json:"project_id"`
	TeamID      uint           `gorm:"not null;index:idx_task_team_id" json:"team_id"`
	Title       string         `gorm:"type:varchar(128);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Status      string         `gorm:"type:varchar(16);default:todo;index:idx_task_status" json:"status"`
	AssignedTo  uint           `gorm:"index:idx_task_assigned_to" json:"assignedTo"`
	DueDate     *time.Time     `json:"dueDate"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Assignee *User `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

func (Task) TableName() string { return "tasks" }

func ValidTaskStatus(s string) bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusDone
}
