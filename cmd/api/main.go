package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"projecthub-backend/internal/config"
	"projecthub-backend/internal/database"
	"projecthub-backend/internal/domain"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/server"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/token"

	_ "github.com/joho/godotenv/autoload"
)

func gracefulShutdown(apiServer *http.Server, dbService database.Service, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	// In-flight requests get 5 seconds to finish.
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	if dbService != nil {
		log.Println("Closing database connection pool...")
		if err := dbService.Close(); err != nil {
			log.Printf("Error closing database connection pool: %v", err)
		}
	}

	log.Println("Server exiting")
	done <- true
}

func main() {
	// Startup fails hard when JWT_SECRET or the database settings are
	// absent: there is no fallback signing key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dbService, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	gormDB := dbService.GetDB()
	if err := gormDB.AutoMigrate(&domain.User{}, &domain.Project{}, &domain.Todo{}); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	userRepo := repository.NewGormUserRepository(gormDB)
	projectRepo := repository.NewGormProjectRepository(gormDB)
	todoRepo := repository.NewGormTodoRepository(gormDB)

	tokens := token.NewManager([]byte(cfg.JWTSecret), token.DefaultTTL)

	authService := service.NewAuthService(userRepo, tokens)
	projectService := service.NewProjectService(projectRepo)
	todoService := service.NewTodoService(todoRepo, projectRepo)

	apiServer := server.NewServer(cfg.Port, authService, projectService, todoService, tokens, dbService)

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, done)

	log.Printf("Starting server on %s", apiServer.Addr)
	err = apiServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server ListenAndServe error: %v", err)
	}

	<-done
	log.Println("Graceful shutdown complete.")
}
