package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poems-backend/internal/domains/user/model"
	"poems-backend/internal/shared/middleware"
	"poems-backend/pkg/jwt"
)

type fakeUserService struct {
	registerFn func(model.RegisterRequest) (*model.User, error)
	loginFn    func(model.LoginRequest) (*model.User, error)
	getByIDFn  func(uuid.UUID) (*model.User, error)
}

func (s *fakeUserService) Register(_ context.Context, req model.RegisterRequest) (*model.User, error) {
	return s.registerFn(req)
}

func (s *fakeUserService) Login(_ context.Context, req model.LoginRequest) (*model.User, error) {
	return s.loginFn(req)
}

func (s *fakeUserService) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	return s.getByIDFn(id)
}

func (s *fakeUserService) GetOrCreateAnonymous(context.Context) (*model.User, error) {
	panic("not used")
}

func newAuthRouter(svc *fakeUserService) (*gin.Engine, *jwt.Manager) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret")
	h := NewUserHandler(svc, manager, false)

	router := gin.New()
	auth := router.Group("/api/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/me", middleware.OptionalSession(manager), h.Me)
	return router, manager
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	userID := uuid.New()
	svc := &fakeUserService{
		registerFn: func(req model.RegisterRequest) (*model.User, error) {
			return &model.User{ID: userID, Username: req.Username}, nil
		},
	}
	router, _ := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/register", gin.H{"username": "rimbaud", "password": "illuminations"})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie, "expected a session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.NotEmpty(t, cookie.Value)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       uuid.UUID `json:"id"`
			Username string    `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, userID, resp.Data.ID)
	assert.Equal(t, "rimbaud", resp.Data.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := &fakeUserService{
		registerFn: func(model.RegisterRequest) (*model.User, error) {
			return nil, model.ErrUsernameTaken
		},
	}
	router, _ := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/register", gin.H{"username": "rimbaud", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")
}

func TestLoginInvalidCredentialsIs401(t *testing.T) {
	svc := &fakeUserService{
		loginFn: func(model.LoginRequest) (*model.User, error) {
			return nil, model.ErrInvalidCredentials
		},
	}
	router, _ := newAuthRouter(svc)

	w := postJSON(router, "/api/auth/login", gin.H{"username": "rimbaud", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(t, w))
}

func TestMeWithoutSessionIsNullUser(t *testing.T) {
	router, _ := newAuthRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			User *model.PublicUser `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data.User)
}

func TestMeWithSessionReturnsUser(t *testing.T) {
	userID := uuid.New()
	svc := &fakeUserService{
		getByIDFn: func(id uuid.UUID) (*model.User, error) {
			require.Equal(t, userID, id)
			return &model.User{ID: userID, Username: "rimbaud"}, nil
		},
	}
	router, manager := newAuthRouter(svc)

	token, err := manager.GenerateSessionToken(userID.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			User *model.PublicUser `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.User)
	assert.Equal(t, "rimbaud", resp.Data.User.Username)
}

// A garbage cookie degrades to anonymous, never to an error.
func TestMeWithBrokenCookie(t *testing.T) {
	router, _ := newAuthRouter(&fakeUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "garbage"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":null`)
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newAuthRouter(&fakeUserService{})

	w := postJSON(router, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
