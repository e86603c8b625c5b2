package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// POST /api/teams/:teamId/notes
func (h *NoteHandler) Create(c *gin.Context) {
	var req struct {
		Title   string   `json:"title" binding:"required,max=128"`
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	note, err := h.noteService.Create(middleware.GetTeamID(c), middleware.GetCurrentUserID(c), req.Title, req.Content, req.Tags)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, note)
}

// GET /api/teams/:teamId/notes
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteService.List(middleware.GetTeamID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, notes)
}

// PUT /api/teams/:teamId/notes/:noteId
func (h *NoteHandler) Update(c *gin.Context) {
	var req struct {
		Title   *string   `json:"title"`
		Content *string   `json:"content"`
		Tags    *[]string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	patch := service.NotePatch{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	note, err := h.noteService.Update(middleware.GetTeamID(c), parseID(c.Param("noteId")), patch)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, note)
}

// DELETE /api/teams/:teamId/notes/:noteId
func (h *NoteHandler) Delete(c *gin.Context) {
	noteID := parseID(c.Param("noteId"))
	if err := h.noteService.Delete(middleware.GetTeamID(c), noteID); err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"id": noteID, "deleted": true})
}
