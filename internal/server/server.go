package server

import (
	"fmt"
	"strings"
	"time"

	"anoa.com/redsocial/internal/config"
	"anoa.com/redsocial/internal/handler"
	"anoa.com/redsocial/internal/middleware"
	"anoa.com/redsocial/internal/repository"
	"anoa.com/redsocial/internal/service"
	"anoa.com/redsocial/pkg/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, meiliClient meilisearch.ServiceManager) (*Server, error) {
	imageStorage, err := newImageStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	publicationRepo := repository.NewPublicationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	tokenSvc := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	relationSvc := service.NewRelationService(followRepo)
	searchSvc := service.NewUserSearchService(meiliClient, userRepo)

	authSvc := service.NewAuthService(userRepo, tokenSvc, searchSvc, cfg.BcryptCost)
	authHandler := handler.NewAuthHandler(authSvc)

	userSvc := service.NewUserService(userRepo, followRepo, publicationRepo)
	userHandler := handler.NewUserHandler(userSvc, searchSvc)

	followSvc := service.NewFollowService(followRepo, userRepo, relationSvc, cfg.RelationDecoration)
	followHandler := handler.NewFollowHandler(followSvc)

	publicationSvc := service.NewPublicationService(publicationRepo, relationSvc, imageStorage, redisClient, cfg.RateLimitPublication)
	publicationHandler := handler.NewPublicationHandler(publicationSvc, cfg.UploadDir)

	messageSvc := service.NewMessageService(messageRepo)
	messageHandler := handler.NewMessageHandler(messageSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/get-image-pub/:imageFile", publicationHandler.GetImageFile)

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// User routes
		protected.GET("/user/:id", userHandler.GetUser)
		protected.GET("/users", userHandler.GetUsers)
		protected.GET("/users/:page", userHandler.GetUsers)
		protected.GET("/search-users", userHandler.SearchUsers)
		protected.GET("/counters", userHandler.GetCounters)
		protected.GET("/counters/:id", userHandler.GetCounters)

		// Follow routes
		protected.POST("/follow", followHandler.SaveFollow)
		protected.DELETE("/follow/:id", followHandler.DeleteFollow)
		protected.GET("/following", followHandler.GetFollowing)
		protected.GET("/following/:id", followHandler.GetFollowing)
		protected.GET("/following/:id/:page", followHandler.GetFollowing)
		protected.GET("/followed", followHandler.GetFollowed)
		protected.GET("/followed/:id", followHandler.GetFollowed)
		protected.GET("/followed/:id/:page", followHandler.GetFollowed)
		protected.GET("/get-my-follows", followHandler.GetMyFollows)
		protected.GET("/get-my-follows/:followed", followHandler.GetMyFollows)

		// Publication routes
		protected.POST("/publication", publicationHandler.SavePublication)
		protected.GET("/publications", publicationHandler.GetPublications)
		protected.GET("/publications/:page", publicationHandler.GetPublications)
		protected.GET("/publications-user/:user", publicationHandler.GetPublicationsUser)
		protected.GET("/publications-user/:user/:page", publicationHandler.GetPublicationsUser)
		protected.GET("/publication/:id", publicationHandler.GetPublication)
		protected.DELETE("/publication/:id", publicationHandler.DeletePublication)
		protected.POST("/upload-img-pub/:id", publicationHandler.UploadImage)

		// Message routes
		protected.POST("/message", messageHandler.SaveMessage)
		protected.GET("/my-messages", messageHandler.GetReceivedMessages)
		protected.GET("/my-messages/:page", messageHandler.GetReceivedMessages)
		protected.GET("/messages", messageHandler.GetEmittedMessages)
		protected.GET("/messages/:page", messageHandler.GetEmittedMessages)
		protected.GET("/unviewed-messages", messageHandler.GetUnviewedMessages)
		protected.GET("/set-viewed-messages", messageHandler.SetViewedMessages)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}, nil
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the underlying router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func newImageStorage(cfg *config.Config) (storage.ImageStorage, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		return storage.NewCloudinaryStorage()
	default:
		return storage.NewLocalStorage(cfg.UploadDir)
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
