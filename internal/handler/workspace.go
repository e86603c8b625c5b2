package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
)

type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// POST /api/teams/:teamId/projects
func (h *WorkspaceHandler) CreateProject(c *gin.Context) {
	var req struct {
		Name        string     `json:"name" binding:"required,max=128"`
		Description string     `json:"description" binding:"max=5000"`
		Status      string     `json:"status" binding:"omitempty,oneof=planning in-progress review completed"`
		DueDate     *time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	project, err := h.workspaceService.CreateProject(middleware.GetTeamID(c), req.Name, req.Description, req.Status, req.DueDate)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, project)
}

// GET /api/teams/:teamId/projects
func (h *WorkspaceHandler) ListProjects(c *gin.Context) {
	projects, err := h.workspaceService.ListProjects(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projects)
}

// PUT /api/teams/:teamId/projects/:projectId
func (h *WorkspaceHandler) UpdateProject(c *gin.Context) {
	teamID := middleware.GetTeamID(c)
	projectID := parseID(c.Param("projectId"))

	var req struct {
		Name        *string    `json:"name"`
		Description *string    `json:"description"`
		Status      *string    `json:"status" binding:"omitempty,oneof=planning in-progress review completed"`
		DueDate     *time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}

	project, err := h.workspaceService.UpdateProject(teamID, projectID, updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// POST /api/teams/:teamId/projects/:projectId/tasks
func (h *WorkspaceHandler) CreateTask(c *gin.Context) {
	teamID := middleware.GetTeamID(c)
	projectID := parseID(c.Param("projectId"))

	var req struct {
		Title       string     `json:"title" binding:"required,max=128"`
		Description string     `json:"description" binding:"max=5000"`
		Status      string     `json:"status" binding:"omitempty,oneof=todo in-progress done"`
		AssignedTo  uint       `json:"assignedTo"`
		DueDate     *time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	task, err := h.workspaceService.CreateTask(teamID, projectID, req.Title, req.Description, req.Status, req.AssignedTo, req.DueDate)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, task)
}

// GET /api/teams/:teamId/projects/:projectId/tasks
func (h *WorkspaceHandler) ListTasks(c *gin.Context) {
	tasks, err := h.workspaceService.ListTasks(middleware.GetTeamID(c), parseID(c.Param("projectId")))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, tasks)
}

// PATCH /api/teams/:teamId/tasks/:taskId
func (h *WorkspaceHandler) UpdateTask(c *gin.Context) {
	teamID := middleware.GetTeamID(c)
	taskID := parseID(c.Param("taskId"))

	var req struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		AssignedTo  *uint      `json:"assignedTo"`
		DueDate     *time.Time `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}
	task, err := h.workspaceService.UpdateTask(teamID, taskID, patch)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, task)
}
