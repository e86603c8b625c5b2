package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// POST /api/posts
func (h *FeedHandler) Create(c *gin.Context) {
	var req struct {
		Content  string `json:"content" binding:"required,max=5000"`
		ImageURL string `json:"imageUrl" binding:"omitempty,url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	post, err := h.feedService.CreatePost(middleware.GetCurrentUserID(c), req.Content, req.ImageURL)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, post)
}

// GET /api/posts
func (h *FeedHandler) List(c *gin.Context) {
	page, pageSize := parsePage(c)
	posts, total, err := h.feedService.List(page, pageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		item := gin.H{
			"id":         p.ID,
			"content":    p.Content,
			"imageUrl":   p.ImageURL,
			"created_at": p.CreatedAt,
		}
		if p.Author != nil {
			item["author"] = p.Author.Brief()
		}
		list = append(list, item)
	}
	SuccessPaged(c, list, total, page, pageSize)
}

// DELETE /api/posts/:id
func (h *FeedHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	err := h.feedService.DeletePost(id, middleware.GetCurrentUserID(c), middleware.GetCurrentUserRole(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"id": id, "deleted": true})
}
