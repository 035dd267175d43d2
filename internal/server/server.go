package server

import (
	"fmt"
	"net/http"
	"time"

	"projecthub-backend/internal/database"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/token"
)

type Server struct {
	port           int
	authService    service.AuthService
	projectService service.ProjectService
	todoService    service.TodoService
	tokens         *token.Manager
	db             database.Service
}

// NewServer builds the http.Server for the API. All collaborators are
// injected so tests can run the full router against in-memory storage.
func NewServer(port int, authService service.AuthService, projectService service.ProjectService,
	todoService service.TodoService, tokens *token.Manager, db database.Service) *http.Server {

	appServer := &Server{
		port:           port,
		authService:    authService,
		projectService: projectService,
		todoService:    todoService,
		tokens:         tokens,
		db:             db,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", appServer.port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
