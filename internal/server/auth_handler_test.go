package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, s *Server, email string) LoginResponse {
	t.Helper()
	w := authRequest(t, s, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name:     "Kim Jaewoo",
		Email:    email,
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegister(t *testing.T) {
	s := newTestServer(newMockDB())

	resp := registerUser(t, s, "jaewoo@example.com")
	require.NotNil(t, resp.User)
	assert.Equal(t, "jaewoo@example.com", resp.User.Email)
	assert.True(t, resp.User.PasswordSet)
	assert.NotEmpty(t, resp.Token)

	claims, err := s.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestServer(newMockDB())
	registerUser(t, s, "jaewoo@example.com")

	w := authRequest(t, s, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name:     "Someone Else",
		Email:    "jaewoo@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	s := newTestServer(newMockDB())

	w := authRequest(t, s, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name:     "Kim Jaewoo",
		Email:    "not-an-email",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = authRequest(t, s, http.MethodPost, "/auth/register", "", RegisterRequest{
		Name:     "Kim Jaewoo",
		Email:    "jaewoo@example.com",
		Password: "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(newMockDB())
	registerUser(t, s, "jaewoo@example.com")

	w := authRequest(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jaewoo@example.com",
		Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(newMockDB())
	registerUser(t, s, "jaewoo@example.com")

	w := authRequest(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jaewoo@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	s := newTestServer(newMockDB())

	w := authRequest(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestUpdatePassword(t *testing.T) {
	s := newTestServer(newMockDB())
	registered := registerUser(t, s, "jaewoo@example.com")

	w := authRequest(t, s, http.MethodPut, "/auth/password", registered.Token, UpdatePasswordRequest{
		CurrentPassword: "hunter2hunter2",
		NewPassword:     "correct horse battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works
	w = authRequest(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jaewoo@example.com",
		Password: "hunter2hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = authRequest(t, s, http.MethodPost, "/auth/login", "", LoginRequest{
		Email:    "jaewoo@example.com",
		Password: "correct horse battery",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	s := newTestServer(newMockDB())
	registered := registerUser(t, s, "jaewoo@example.com")

	w := authRequest(t, s, http.MethodPut, "/auth/password", registered.Token, UpdatePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "correct horse battery",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdatePasswordRequiresToken(t *testing.T) {
	s := newTestServer(newMockDB())

	w := authRequest(t, s, http.MethodPut, "/auth/password", "", UpdatePasswordRequest{
		CurrentPassword: "hunter2hunter2",
		NewPassword:     "correct horse battery",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
