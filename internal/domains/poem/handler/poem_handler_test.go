package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poems-backend/internal/domains/poem/model"
	"poems-backend/internal/shared/middleware"
	"poems-backend/pkg/jwt"
)

type fakePoemService struct {
	createFn     func(model.CreatePoemRequest, *uuid.UUID) (*model.PoemResponse, error)
	listRecentFn func() (*model.ListPoemsResponse, error)
	paginateFn   func(string) (*model.ThreadPage, error)
}

func (s *fakePoemService) Create(_ context.Context, req model.CreatePoemRequest, authorID *uuid.UUID) (*model.PoemResponse, error) {
	return s.createFn(req, authorID)
}

func (s *fakePoemService) ListRecent(context.Context) (*model.ListPoemsResponse, error) {
	return s.listRecentFn()
}

func (s *fakePoemService) Paginate(_ context.Context, cursor string) (*model.ThreadPage, error) {
	return s.paginateFn(cursor)
}

func newPoemRouter(svc *fakePoemService) (*gin.Engine, *jwt.Manager) {
	gin.SetMode(gin.TestMode)
	manager := jwt.NewManager("test-secret")
	h := NewPoemHandler(svc)

	router := gin.New()
	poems := router.Group("/api/poems")
	poems.GET("", h.List)
	poems.POST("", middleware.OptionalSession(manager), h.Create)
	return router, manager
}

func samplePoem(content string) model.PoemResponse {
	return model.PoemResponse{
		ID:        uuid.New(),
		Content:   content,
		AuthorID:  uuid.New(),
		Author:    model.AuthorInfo{Username: "rimbaud"},
		CreatedAt: time.Now(),
	}
}

func TestListWithoutCursorServesRecentFeed(t *testing.T) {
	svc := &fakePoemService{
		listRecentFn: func() (*model.ListPoemsResponse, error) {
			return &model.ListPoemsResponse{Poems: []model.PoemResponse{samplePoem("one"), samplePoem("two")}}, nil
		},
	}
	router, _ := newPoemRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/poems", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.ListPoemsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Poems, 2)
}

func TestListWithCursorServesThreadPage(t *testing.T) {
	poem := samplePoem("the page")
	next := poem.ID
	svc := &fakePoemService{
		paginateFn: func(cursor string) (*model.ThreadPage, error) {
			assert.Equal(t, "abc", cursor)
			return &model.ThreadPage{Poem: &poem, NextCursor: &next}, nil
		},
	}
	router, _ := newPoemRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/poems?cursor=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data model.ThreadPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.Poem)
	assert.Equal(t, "the page", resp.Data.Poem.Content)
	require.NotNil(t, resp.Data.NextCursor)
	assert.Equal(t, poem.ID, *resp.Data.NextCursor)
}

// An empty cursor value still selects the thread-page branch.
func TestListWithEmptyCursorValue(t *testing.T) {
	poem := samplePoem("newest")
	svc := &fakePoemService{
		paginateFn: func(cursor string) (*model.ThreadPage, error) {
			assert.Equal(t, "", cursor)
			next := poem.ID
			return &model.ThreadPage{Poem: &poem, NextCursor: &next}, nil
		},
	}
	router, _ := newPoemRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/poems?cursor=", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListCursorErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"malformed cursor", model.ErrInvalidCursor, http.StatusBadRequest},
		{"unknown cursor", model.ErrPoemNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakePoemService{
				paginateFn: func(string) (*model.ThreadPage, error) {
					return nil, tt.serviceErr
				},
			}
			router, _ := newPoemRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/poems?cursor=whatever", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreateWithoutSessionPassesNilAuthor(t *testing.T) {
	created := samplePoem("anonymous lines")
	svc := &fakePoemService{
		createFn: func(req model.CreatePoemRequest, authorID *uuid.UUID) (*model.PoemResponse, error) {
			assert.Nil(t, authorID)
			assert.Equal(t, "anonymous lines", req.Content)
			return &created, nil
		},
	}
	router, _ := newPoemRouter(svc)

	payload, _ := json.Marshal(gin.H{"content": "anonymous lines"})
	req := httptest.NewRequest(http.MethodPost, "/api/poems", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateWithSessionPassesAuthor(t *testing.T) {
	userID := uuid.New()
	created := samplePoem("signed lines")
	svc := &fakePoemService{
		createFn: func(_ model.CreatePoemRequest, authorID *uuid.UUID) (*model.PoemResponse, error) {
			require.NotNil(t, authorID)
			assert.Equal(t, userID, *authorID)
			return &created, nil
		},
	}
	router, manager := newPoemRouter(svc)

	token, err := manager.GenerateSessionToken(userID.String())
	require.NoError(t, err)

	payload, _ := json.Marshal(gin.H{"content": "signed lines"})
	req := httptest.NewRequest(http.MethodPost, "/api/poems", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateBlankContentIs400(t *testing.T) {
	svc := &fakePoemService{
		createFn: func(req model.CreatePoemRequest, _ *uuid.UUID) (*model.PoemResponse, error) {
			return nil, model.ErrEmptyContent
		},
	}
	router, _ := newPoemRouter(svc)

	payload, _ := json.Marshal(gin.H{"content": "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/poems", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing content")
}
