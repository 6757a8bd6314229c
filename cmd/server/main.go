package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-assist-service/internal/config"
	"hospital-assist-service/internal/database"
	"hospital-assist-service/internal/handler"
	"hospital-assist-service/internal/middleware"
	"hospital-assist-service/internal/repository"
	"hospital-assist-service/internal/service"
	"hospital-assist-service/internal/watsonx"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Open the two read stores
	stores := database.Connect(cfg)

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(stores.Hospital)
	userRepo := repository.NewUserRepo(stores.Users)

	// 4. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo)
	userService := service.NewUserService(userRepo)

	generator, err := watsonx.NewClient(cfg.Watsonx, 30*time.Second)
	if err != nil {
		log.Fatalf("Failed to create watsonx client: %v", err)
	}
	assistService := service.NewAssistService(hospitalService, generator, cfg.Watsonx)

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	userHandler := handler.NewUserHandler(userService)
	assistHandler := handler.NewAssistHandler(assistService)

	// 8. Define routes
	r.GET("/health", handler.Health)
	r.GET("/hospital/:hospital_id", hospitalHandler.GetHospital)
	r.GET("/user/:user_id", userHandler.GetUser)
	r.POST("/call_watsonx", assistHandler.CallWatsonx)

	// 9. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
