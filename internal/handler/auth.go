package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// setSessionCookie sets the httpOnly, same-site-strict session cookie.
func setSessionCookie(c *gin.Context, token string, expireAt time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	maxAge := int(time.Until(expireAt).Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}

func sessionData(user *model.User, token string) gin.H {
	return gin.H{
		"user":  user,
		"token": token,
	}
}

// POST /api/auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req struct {
		FirstName       string `json:"firstName" binding:"required,max=64"`
		LastName        string `json:"lastName" binding:"required,max=64"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required,min=8"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, token, expireAt, err := h.authService.SignUp(req.FirstName, req.LastName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		Fail(c, err)
		return
	}

	setSessionCookie(c, token, expireAt)
	Created(c, sessionData(user, token))
}

// POST /api/auth/sign-in (also mounted as POST /api/users/login)
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, token, expireAt, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	setSessionCookie(c, token, expireAt)
	Success(c, sessionData(user, token))
}

// POST /api/auth/admin/sign-in
func (h *AuthHandler) AdminSignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, token, expireAt, err := h.authService.AdminSignIn(req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}

	setSessionCookie(c, token, expireAt)
	Success(c, sessionData(user, token))
}

// POST /api/auth/sign-out — idempotent, always succeeds.
func (h *AuthHandler) SignOut(c *gin.Context) {
	clearSessionCookie(c)
	Success(c, gin.H{"message": "signed out"})
}
