package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jaewoo/careerfolio/internal/config"
	"github.com/jaewoo/careerfolio/internal/db"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          DBClient
	database    *db.DB
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a server instance wired to Postgres
func New(cfg *config.ServerConfig) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:       database,
		database: database,
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(s.db, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Auth
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.HandleFunc("PUT /auth/password", s.authHandler.UpdatePassword)

	// Basic info (singleton per user)
	mux.HandleFunc("GET /users/{id}/basic-info", s.handleGetBasicInfo)
	mux.HandleFunc("PUT /users/{id}/basic-info", s.handleUpsertBasicInfo)

	// Careers
	mux.HandleFunc("GET /users/{id}/careers", s.handleListCareers)
	mux.HandleFunc("POST /users/{id}/careers", s.handleCreateCareer)
	mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)
	mux.HandleFunc("PUT /careers/{id}", s.handleUpdateCareer)
	mux.HandleFunc("DELETE /careers/{id}", s.handleDeleteCareer)
	mux.HandleFunc("POST /careers/{id}/move", s.handleMoveCareer)

	// Educations
	mux.HandleFunc("GET /users/{id}/educations", s.handleListEducations)
	mux.HandleFunc("POST /users/{id}/educations", s.handleCreateEducation)
	mux.HandleFunc("GET /educations/{id}", s.handleGetEducation)
	mux.HandleFunc("PUT /educations/{id}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /educations/{id}", s.handleDeleteEducation)
	mux.HandleFunc("POST /educations/{id}/move", s.handleMoveEducation)

	// Projects
	mux.HandleFunc("GET /users/{id}/projects", s.handleListProjects)
	mux.HandleFunc("POST /users/{id}/projects", s.handleCreateProject)
	mux.HandleFunc("GET /projects/{id}", s.handleGetProject)
	mux.HandleFunc("PUT /projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("POST /projects/{id}/move", s.handleMoveProject)

	// Skills (no persisted order)
	mux.HandleFunc("GET /users/{id}/skills", s.handleListSkills)
	mux.HandleFunc("POST /users/{id}/skills", s.handleCreateSkill)
	mux.HandleFunc("PUT /skills/{id}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /skills/{id}", s.handleDeleteSkill)

	// Other items
	mux.HandleFunc("GET /users/{id}/other-items", s.handleListOtherItems)
	mux.HandleFunc("POST /users/{id}/other-items", s.handleCreateOtherItem)
	mux.HandleFunc("GET /other-items/{id}", s.handleGetOtherItem)
	mux.HandleFunc("PUT /other-items/{id}", s.handleUpdateOtherItem)
	mux.HandleFunc("DELETE /other-items/{id}", s.handleDeleteOtherItem)
	mux.HandleFunc("POST /other-items/{id}/move", s.handleMoveOtherItem)

	// Derived views
	mux.HandleFunc("GET /users/{id}/snapshot", s.handleGetSnapshot)
	mux.HandleFunc("GET /users/{id}/dashboard", s.handleGetDashboard)
	mux.HandleFunc("GET /users/{id}/documents/{kind}", s.handleGetDocument)
	mux.HandleFunc("GET /documents/{kind}/sections", s.handleListSections)

	return mux
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.database.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
