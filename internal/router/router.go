package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/handler"
	"github.com/kztJames01/makerSpace/internal/middleware"
	"github.com/kztJames01/makerSpace/internal/service"
)

type Deps struct {
	DB               *gorm.DB
	JWTSecret        string
	TeamService      *service.TeamService
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	TeamHandler      *handler.TeamHandler
	WorkspaceHandler *handler.WorkspaceHandler
	NoteHandler      *handler.NoteHandler
	ChatHandler      *handler.ChatHandler
	FeedHandler      *handler.FeedHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up", deps.AuthHandler.SignUp)
		auth.POST("/sign-in", deps.AuthHandler.SignIn)
		auth.POST("/admin/sign-in", deps.AuthHandler.AdminSignIn)
		auth.POST("/sign-out", deps.AuthHandler.SignOut)
	}
	// Legacy login path kept for the existing client.
	api.POST("/users/login", deps.AuthHandler.SignIn)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		// Users
		users := authed.Group("/users")
		{
			users.GET("/current", deps.UserHandler.GetCurrent)
			users.PUT("/update/:id", deps.UserHandler.Update)
			users.DELETE("/delete/:id", deps.UserHandler.Delete)
		}

		// Creator discovery
		authed.GET("/creators", deps.UserHandler.SearchCreators)

		// Feed
		posts := authed.Group("/posts")
		{
			posts.POST("", deps.FeedHandler.Create)
			posts.GET("", deps.FeedHandler.List)
			posts.DELETE("/:id", deps.FeedHandler.Delete)
		}

		// Teams
		authed.POST("/teams", deps.TeamHandler.Create)
		authed.GET("/teams", deps.TeamHandler.List)

		// Team-scoped routes: membership checked once, here.
		team := authed.Group("/teams/:teamId")
		team.Use(middleware.RequireTeamMember(deps.TeamService))
		{
			team.GET("", deps.TeamHandler.GetDetail)
			team.PUT("", deps.TeamHandler.Update)
			team.GET("/stats", deps.TeamHandler.Stats)

			team.GET("/members", deps.TeamHandler.ListMembers)
			team.POST("/members", deps.TeamHandler.Invite)
			team.DELETE("/members/:userId", deps.TeamHandler.RemoveMember)

			team.POST("/projects", deps.WorkspaceHandler.CreateProject)
			team.GET("/projects", deps.WorkspaceHandler.ListProjects)
			team.PUT("/projects/:projectId", deps.WorkspaceHandler.UpdateProject)
			team.POST("/projects/:projectId/tasks", deps.WorkspaceHandler.CreateTask)
			team.GET("/projects/:projectId/tasks", deps.WorkspaceHandler.ListTasks)
			team.PATCH("/tasks/:taskId", deps.WorkspaceHandler.UpdateTask)

			team.POST("/notes", deps.NoteHandler.Create)
			team.GET("/notes", deps.NoteHandler.List)
			team.PUT("/notes/:noteId", deps.NoteHandler.Update)
			team.DELETE("/notes/:noteId", deps.NoteHandler.Delete)

			team.POST("/channels", deps.ChatHandler.CreateChannel)
			team.GET("/channels", deps.ChatHandler.ListChannels)
			team.GET("/channels/:channelId/messages", deps.ChatHandler.ListMessages)
			team.POST("/channels/:channelId/messages", deps.ChatHandler.SendMessage)
			team.GET("/channels/:channelId/stream", deps.ChatHandler.StreamMessages)

			team.GET("/ai-messages", deps.ChatHandler.ListAIMessages)
			team.POST("/ai-messages", deps.ChatHandler.AppendAIMessage)
			team.POST("/ai-messages/generate", deps.ChatHandler.GenerateAIMessage)
		}
	}
}
