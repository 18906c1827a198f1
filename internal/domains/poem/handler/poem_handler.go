package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"poems-backend/internal/domains/poem/model"
	"poems-backend/internal/domains/poem/service"
	"poems-backend/internal/shared/middleware"
	"poems-backend/internal/shared/response"
	"poems-backend/pkg/logger"
)

type PoemHandler struct {
	service service.Service
}

func NewPoemHandler(svc service.Service) *PoemHandler {
	return &PoemHandler{service: svc}
}

// List handles GET /poems. With a cursor query parameter it serves a
// single-item thread page; without one it serves the recent listing.
func (h *PoemHandler) List(c *gin.Context) {
	if cursor, hasCursor := c.GetQuery("cursor"); hasCursor {
		h.threadPage(c, cursor)
		return
	}

	resp, err := h.service.ListRecent(c.Request.Context())
	if err != nil {
		logger.Error("failed to list poems", err)
		response.InternalServerError(c, "Failed to fetch poems")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *PoemHandler) threadPage(c *gin.Context, cursor string) {
	page, err := h.service.Paginate(c.Request.Context(), cursor)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCursor):
			response.BadRequest(c, "Invalid cursor")
		case errors.Is(err, model.ErrPoemNotFound):
			response.NotFound(c, "Poem not found")
		default:
			logger.Error("failed to paginate poems", err)
			response.InternalServerError(c, "Failed to fetch poems")
		}
		return
	}

	response.Success(c, http.StatusOK, page)
}

// Create handles POST /poems. The author is the session user when one is
// present, otherwise the shared Anonymous account.
func (h *PoemHandler) Create(c *gin.Context) {
	var req model.CreatePoemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing content")
		return
	}

	var authorID *uuid.UUID
	if userID, ok := middleware.CurrentUserID(c); ok {
		authorID = &userID
	}

	poem, err := h.service.Create(c.Request.Context(), req, authorID)
	if err != nil {
		if errors.Is(err, model.ErrEmptyContent) {
			response.BadRequest(c, "Missing content")
			return
		}
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			response.BadRequest(c, "Missing content")
			return
		}
		logger.Error("failed to create poem", err)
		response.InternalServerError(c, "Failed to create poem")
		return
	}

	response.Success(c, http.StatusOK, poem)
}
