package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /api/users/current
func (h *UserHandler) GetCurrent(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	user, err := h.userService.GetByID(userID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// PUT /api/users/update/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := parseID(c.Param("id"))

	var req struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Email     *string `json:"email" binding:"omitempty,email"`
		Password  *string `json:"password" binding:"omitempty,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	patch := service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}
	user, err := h.userService.Update(id, patch, middleware.GetCurrentUserID(c), middleware.GetCurrentUserRole(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, user)
}

// DELETE /api/users/delete/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := parseID(c.Param("id"))
	err := h.userService.Delete(id, middleware.GetCurrentUserID(c), middleware.GetCurrentUserRole(c))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, gin.H{"id": id, "deleted": true})
}

// GET /api/creators
func (h *UserHandler) SearchCreators(c *gin.Context) {
	page, pageSize := parsePage(c)
	keyword := c.Query("keyword")

	users, total, err := h.userService.SearchCreators(keyword, page, pageSize)
	if err != nil {
		Fail(c, err)
		return
	}

	list := make([]gin.H, 0, len(users))
	for _, u := range users {
		list = append(list, gin.H{
			"id":        u.ID,
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"email":     u.Email,
			"joined_at": u.CreatedAt,
		})
	}
	SuccessPaged(c, list, total, page, pageSize)
}
