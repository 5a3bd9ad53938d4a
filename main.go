package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"quizapp-service/internal/auth"
	"quizapp-service/internal/config"
	"quizapp-service/internal/db"
	"quizapp-service/internal/event"
	"quizapp-service/internal/handlers"
	"quizapp-service/internal/repository"
	"quizapp-service/internal/service"
	"quizapp-service/pkg/discovery"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.Session.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	mongoClient, err := db.InitMongo(cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())
	database := mongoClient.Database(cfg.MongoDB.Database)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	quizRepo := repository.NewQuizRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	userRepo := repository.NewUserRepository(database)
	sessionStore := repository.NewSessionStore(redisClient, cfg.Session.TTL)

	// Auth
	jwtService := auth.NewJWTService(cfg.Session.JWTSecret, cfg.Session.TTL)
	googleService := auth.NewGoogleOAuthService(cfg.Google)

	// Services
	quizService := service.NewQuizService(quizRepo, answerRepo, userRepo, publisher)
	answerService := service.NewAnswerService(quizRepo, answerRepo, publisher)
	rankingService := service.NewRankingService(quizRepo, answerRepo, userRepo)
	userService := service.NewUserService(userRepo, sessionStore, jwtService, googleService, publisher)

	// Handlers
	quizHandler := handlers.NewQuizHandler(quizService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	rankingHandler := handlers.NewRankingHandler(rankingService)
	authHandler := handlers.NewAuthHandler(userService)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Quiz App Service is healthy")
	})

	authRoutes := r.Group("/auth")
	{
		authRoutes.GET("/google/login", authHandler.GoogleLogin)
		authRoutes.GET("/google/callback", authHandler.GoogleCallback)
		authRoutes.GET("/me", auth.RequireSession(jwtService, sessionStore), authHandler.Me)
		authRoutes.POST("/logout", auth.RequireSession(jwtService, sessionStore), authHandler.Logout)
	}

	publicQuiz := r.Group("/public/quiz", auth.OptionalSession(jwtService, sessionStore))
	{
		publicQuiz.GET("/", quizHandler.ListQuizzes)
		publicQuiz.GET("/:id", quizHandler.GetQuiz)
	}

	publicRanking := r.Group("/public/ranking")
	{
		publicRanking.GET("/", rankingHandler.ListRankedQuizzes)
		publicRanking.GET("/:id", rankingHandler.GetQuizRankings)
	}

	protectedQuiz := r.Group("/protected/quiz", auth.RequireSession(jwtService, sessionStore))
	{
		protectedQuiz.POST("/", quizHandler.CreateQuiz)
		protectedQuiz.DELETE("/:id", quizHandler.DeleteQuiz)
		protectedQuiz.POST("/:id/submit", answerHandler.SubmitAnswers)
		protectedQuiz.GET("/:id/answer", answerHandler.GetMyAnswer)
	}

	protectedAnswer := r.Group("/protected/answer", auth.RequireSession(jwtService, sessionStore))
	{
		protectedAnswer.GET("/", answerHandler.ListMyAnswers)
	}

	// Optional Consul registration
	if cfg.Consul.Enabled {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Service discovery init failed: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Service registration failed: %v", err)
		}
		defer registry.Deregister()
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down")
}
