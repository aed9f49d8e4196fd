package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aerosky-service/internal/config"
	"aerosky-service/internal/db"
	"aerosky-service/internal/event"
	"aerosky-service/internal/handlers"
	"aerosky-service/internal/middleware"
	"aerosky-service/internal/questionbank"
	"aerosky-service/internal/repository"
	"aerosky-service/internal/service"
	"aerosky-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	config.LoadConfig()
	gin.SetMode(config.AppConfig.GinMode)

	if err := db.InitMongo(config.AppConfig.MongoURI, config.AppConfig.MongoDatabase); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("MongoDB connected successfully")

	db.InitRedis(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)

	var publisher *event.EventPublisher
	if config.AppConfig.RabbitMQURI != "" && config.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(config.AppConfig.RabbitMQURI, config.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	r := setupRouter(publisher)

	registry := registerService()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting AeroSky service on port %s", config.AppConfig.Port)
		if err := r.Run(":" + config.AppConfig.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutting down...")
	if registry != nil {
		if err := registry.Deregister(); err != nil {
			log.Printf("Error deregistering from Consul: %v", err)
		}
	}
	db.Disconnect()
}

func setupRouter(publisher *event.EventPublisher) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "Server is running",
			"timestamp": time.Now(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories, services, handlers
	database := db.Database

	bank := questionbank.New()

	userRepo := repository.NewUserRepository(database)
	resultRepo := repository.NewResultRepository(database)
	practiceRepo := repository.NewPracticeRepository(database)
	redisRepo := repository.NewRedisRepo()

	userService := service.NewUserService(userRepo, resultRepo, practiceRepo, redisRepo)
	testService := service.NewTestService(resultRepo, userRepo, bank)
	practiceService := service.NewPracticeService(practiceRepo)
	analyticsService := service.NewAnalyticsService(resultRepo, practiceRepo)

	authHandler := handlers.NewAuthHandler(userService)
	profileHandler := handlers.NewProfileHandler(userService)
	questionHandler := handlers.NewQuestionHandler(bank)
	testHandler := handlers.NewTestHandler(testService)
	practiceHandler := handlers.NewPracticeHandler(practiceService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	api := r.Group("/api")

	// Public routes
	api.POST("/register", func(c *gin.Context) {
		authHandler.Register(c)
		if publisher != nil && c.Writer.Status() == http.StatusOK {
			publisher.Publish("user.registered", gin.H{"timestamp": time.Now()})
		}
	})
	api.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.Authenticate(config.AppConfig.JWTSecret))
	{
		protected.GET("/profile", profileHandler.GetProfile)
		protected.GET("/subjects", questionHandler.ListSubjects)
		protected.GET("/questions/:subject", questionHandler.GetQuestionsBySubject)

		protected.POST("/submit-test", func(c *gin.Context) {
			testHandler.SubmitTest(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("test.submitted", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.POST("/practice", func(c *gin.Context) {
			practiceHandler.UpdatePractice(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("practice.updated", gin.H{
					"user_id":   middleware.UserID(c),
					"timestamp": time.Now(),
				})
			}
		})

		protected.GET("/analytics", analyticsHandler.GetAnalytics)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}

func registerService() *discovery.ServiceRegistry {
	if config.AppConfig.ConsulAddress == "" {
		log.Println("Consul not configured, skipping service registration")
		return nil
	}

	registry, err := discovery.NewServiceRegistry(config.AppConfig)
	if err != nil {
		log.Printf("Warning: could not create Consul client: %v", err)
		return nil
	}
	if err := registry.Register(); err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	return registry
}
