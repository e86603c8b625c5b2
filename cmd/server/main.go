package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kztJames01/makerSpace/internal/bot"
	"github.com/kztJames01/makerSpace/internal/config"
	"github.com/kztJames01/makerSpace/internal/handler"
	"github.com/kztJames01/makerSpace/internal/logger"
	"github.com/kztJames01/makerSpace/internal/model"
	"github.com/kztJames01/makerSpace/internal/router"
	"github.com/kztJames01/makerSpace/internal/service"
	"github.com/kztJames01/makerSpace/internal/sse"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.Project{},
		&model.Task{},
		&model.Note{},
		&model.Channel{},
		&model.Message{},
		&model.AIMessage{},
		&model.Post{},
	); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Core components
	hub := sse.NewHub(rdb)

	// AI chat client
	var aiChat *bot.AIChatClient
	if cfg.AIChat.APIKey != "" {
		aiChat = bot.NewAIChatClient(cfg.AIChat)
	}

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	userService := service.NewUserService(db)
	teamService := service.NewTeamService(db)
	workspaceService := service.NewWorkspaceService(db)
	noteService := service.NewNoteService(db)
	chatService := service.NewChatService(db, hub)
	aiMessageService := service.NewAIMessageService(db, aiChat)
	feedService := service.NewFeedService(db)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	noteHandler := handler.NewNoteHandler(noteService)
	chatHandler := handler.NewChatHandler(chatService, aiMessageService)
	feedHandler := handler.NewFeedHandler(feedService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		DB:               db,
		JWTSecret:        cfg.JWT.Secret,
		TeamService:      teamService,
		AuthHandler:      authHandler,
		UserHandler:      userHandler,
		TeamHandler:      teamHandler,
		WorkspaceHandler: workspaceHandler,
		NoteHandler:      noteHandler,
		ChatHandler:      chatHandler,
		FeedHandler:      feedHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
