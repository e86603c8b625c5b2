package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/apperrors"
	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// requireTeamAdmin rejects callers without the team admin role. Platform
// admins pass.
func (h *TeamHandler) requireTeamAdmin(c *gin.Context, teamID uint) bool {
	if middleware.IsCurrentUserAdmin(c) {
		return true
	}
	if !h.teamService.IsTeamAdmin(teamID, middleware.GetCurrentUserID(c)) {
		Fail(c, apperrors.ErrNotTeamAdmin)
		return false
	}
	return true
}

// POST /api/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=128"`
		Description string `json:"description" binding:"max=5000"`
		Mission     string `json:"mission"`
		Vision      string `json:"vision"`
		Goals       string `json:"goals"`
		Industry    string `json:"industry" binding:"max=64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	team := &model.Team{
		Name:        req.Name,
		Description: req.Description,
		Mission:     req.Mission,
		Vision:      req.Vision,
		Goals:       req.Goals,
		Industry:    req.Industry,
	}
	created, err := h.teamService.Create(team, middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// GET /api/teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.ListForUser(middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, teams)
}

// GET /api/teams/:teamId
func (h *TeamHandler) GetDetail(c *gin.Context) {
	team, err := h.teamService.GetByID(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}

	members := make([]gin.H, 0, len(team.Members))
	for _, m := range team.Members {
		item := gin.H{
			"id":        m.UserID,
			"role":      m.Role,
			"joined_at": m.JoinedAt,
		}
		if m.User != nil {
			item["firstName"] = m.User.FirstName
			item["lastName"] = m.User.LastName
			item["email"] = m.User.Email
		}
		members = append(members, item)
	}

	data := gin.H{
		"id":          team.ID,
		"name":        team.Name,
		"description": team.Description,
		"mission":     team.Mission,
		"vision":      team.Vision,
		"goals":       team.Goals,
		"industry":    team.Industry,
		"members":     members,
		"created_at":  team.CreatedAt,
		"updated_at":  team.UpdatedAt,
	}
	if team.Creator != nil {
		data["creator"] = team.Creator.Brief()
	}
	Success(c, data)
}

// PUT /api/teams/:teamId
func (h *TeamHandler) Update(c *gin.Context) {
	teamID := middleware.GetTeamID(c)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Mission     *string `json:"mission"`
		Vision      *string `json:"vision"`
		Goals       *string `json:"goals"`
		Industry    *string `json:"industry"`
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
	if req.Mission != nil {
		updates["mission"] = *req.Mission
	}
	if req.Vision != nil {
		updates["vision"] = *req.Vision
	}
	if req.Goals != nil {
		updates["goals"] = *req.Goals
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}

	team, err := h.teamService.Update(teamID, updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, team)
}

// GET /api/teams/:teamId/members
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.ListMembers(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(members))
	for _, m := range members {
		item := gin.H{
			"id":        m.UserID,
			"role":      m.Role,
			"joined_at": m.JoinedAt,
		}
		if m.User != nil {
			item["firstName"] = m.User.FirstName
			item["lastName"] = m.User.LastName
			item["email"] = m.User.Email
		}
		list = append(list, item)
	}
	Success(c, list)
}

// POST /api/teams/:teamId/members
func (h *TeamHandler) Invite(c *gin.Context) {
	teamID := middleware.GetTeamID(c)
	if !h.requireTeamAdmin(c, teamID) {
		return
	}

	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Role   string `json:"role" binding:"omitempty,oneof=admin member guest"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	member, err := h.teamService.Invite(teamID, req.UserID, req.Role)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, member)
}

// DELETE /api/teams/:teamId/members/:userId
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID := middleware.GetTeamID(c)
	if !h.requireTeamAdmin(c, teamID) {
		return
	}

	memberUserID := parseID(c.Param("userId"))
	if err := h.teamService.RemoveMember(teamID, memberUserID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"team_id": teamID, "user_id": memberUserID, "removed": true})
}

// GET /api/teams/:teamId/stats
func (h *TeamHandler) Stats(c *gin.Context) {
	Success(c, h.teamService.Stats(middleware.GetTeamID(c)))
}
