package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaewoo/careerfolio/internal/config"
)

func newTestServer(mock *mockDB) *Server {
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(mock, passwordConfig)

	s := &Server{
		db:          mock,
		jwtService:  jwtService,
		userService: userService,
	}
	s.authHandler = NewAuthHandler(userService, jwtService)
	return s
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(newMockDB())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutesRejectWrongMethod(t *testing.T) {
	s := newTestServer(newMockDB())

	req := httptest.NewRequest(http.MethodDelete, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWithCORSPreflight(t *testing.T) {
	s := newTestServer(newMockDB())

	req := httptest.NewRequest(http.MethodOptions, "/users/abc/careers", nil)
	w := httptest.NewRecorder()
	s.withCORS(s.routes()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorResponseShape(t *testing.T) {
	s := newTestServer(newMockDB())

	w := httptest.NewRecorder()
	s.errorResponse(w, http.StatusNotFound, "Career not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Career not found"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
