package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/api/adapters/event"
	"github.com/devconnect/api/adapters/github"
	httpAdapter "github.com/devconnect/api/adapters/http"
	"github.com/devconnect/api/adapters/persistence"
	authUC "github.com/devconnect/api/internal/application/usecase/auth"
	postUC "github.com/devconnect/api/internal/application/usecase/post"
	profileUC "github.com/devconnect/api/internal/application/usecase/profile"
	userUC "github.com/devconnect/api/internal/application/usecase/user"
	"github.com/devconnect/api/internal/config"
	"github.com/devconnect/api/pkg/auth"
	"github.com/devconnect/api/pkg/logger"
	"github.com/devconnect/api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "devconnect-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	repoLister := github.NewGithubAdapter(cfg, redisClient, appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	currentUserUseCase := authUC.NewCurrentUserUseCase(userRepo)
	registerUseCase := userUC.NewRegisterUseCase(userRepo, jwtSvc, kafkaClient, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, userRepo, repoLister, kafkaClient, appLogger)
	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo, kafkaClient, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, kafkaClient, appLogger)
	likePostUseCase := postUC.NewLikePostUseCase(postRepo)
	commentPostUseCase := postUC.NewCommentPostUseCase(postRepo, userRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, currentUserUseCase)
	userHandler := httpAdapter.NewUserHandler(registerUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	postHandler := httpAdapter.NewPostHandler(
		createPostUseCase,
		listPostsUseCase,
		getPostUseCase,
		deletePostUseCase,
		likePostUseCase,
		commentPostUseCase,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpAdapter.NewRouter(
		authHandler,
		userHandler,
		profileHandler,
		postHandler,
		httpAdapter.AuthMiddleware(jwtSvc),
		httpAdapter.ErrorMiddleware(appLogger),
	)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
