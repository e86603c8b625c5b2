package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/model"
)

// WorkspaceService owns the project and task boards of a team.
type WorkspaceService struct {
	db *gorm.DB
}

func NewWorkspaceService(db *gorm.DB) *WorkspaceService {
	return &WorkspaceService{db: db}
}

func (s *WorkspaceService) CreateProject(teamID uint, name, description, status string, dueDate *time.Time) (*model.Project, error) {
	if status == "" {
		status = model.ProjectStatusPlanning
	}
	project := &model.Project{
		TeamID:      teamID,
		Name:        name,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	}
	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	project.Tasks = []model.Task{}
	return project, nil
}

func (s *WorkspaceService) ListProjects(teamID uint) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.Preload("Tasks").Where("team_id = ?", teamID).Order("created_at asc").Find(&projects).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	for i := range projects {
		if projects[i].Tasks == nil {
			projects[i].Tasks = []model.Task{}
		}
	}
	return projects, nil
}

func (s *WorkspaceService) GetProject(teamID, projectID uint) (*model.Project, error) {
	var project model.Project
	err := s.db.Preload("Tasks").Where("team_id = ?", teamID).First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &project, nil
}

func (s *WorkspaceService) UpdateProject(teamID, projectID uint, updates map[string]interface{}) (*model.Project, error) {
	if _, err := s.GetProject(teamID, projectID); err != nil {
		return nil, err
	}
	if err := s.db.Model(&model.Project{}).Where("id = ? AND team_id = ?", projectID, teamID).Updates(updates).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return s.GetProject(teamID, projectID)
}

func (s *WorkspaceService) CreateTask(teamID, projectID uint, title, description, status string, assignedTo uint, dueDate *time.Time) (*model.Task, error) {
	if _, err := s.GetProject(teamID, projectID); err != nil {
		return nil, err
	}
	if status == "" {
		status = model.TaskStatusTodo
	}
	if !model.ValidTaskStatus(status) {
		return nil, apperrors.ErrBadTaskStatus
	}
	task := &model.Task{
		ProjectID:   projectID,
		TeamID:      teamID,
		Title:       title,
		Description: description,
		Status:      status,
		AssignedTo:  assignedTo,
		DueDate:     dueDate,
	}
	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return task, nil
}

func (s *WorkspaceService) ListTasks(teamID, projectID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.Where("team_id = ? AND project_id = ?", teamID, projectID).Order("created_at asc").Find(&tasks).Error
	if err != nil {
		return nil, apperrors.Internal(err.Error())
	}
	return tasks, nil
}

func (s *WorkspaceService) GetTask(teamID, taskID uint) (*model.Task, error) {
	var task model.Task
	err := s.db.Where("team_id = ?", teamID).First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Internal(err.Error())
	}
	return &task, nil
}

// TaskPatch is a partial task update. Status moves are unconstrained in
// either direction.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	AssignedTo  *uint
	DueDate     *time.Time
}

func (s *WorkspaceService) UpdateTask(teamID, taskID uint, patch TaskPatch) (*model.Task, error) {
	if _, err := s.GetTask(teamID, taskID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		if !model.ValidTaskStatus(*patch.Status) {
			return nil, apperrors.ErrBadTaskStatus
		}
		updates["status"] = *patch.Status
	}
	if patch.AssignedTo != nil {
		updates["assigned_to"] = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(&model.Task{}).Where("id = ? AND team_id = ?", taskID, teamID).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(err.Error())
		}
	}
	return s.GetTask(teamID, taskID)
}
