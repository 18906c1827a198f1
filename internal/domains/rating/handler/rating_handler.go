package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"poems-backend/internal/domains/rating/model"
	"poems-backend/internal/domains/rating/service"
	"poems-backend/internal/shared/middleware"
	"poems-backend/internal/shared/response"
	"poems-backend/pkg/logger"
)

type RatingHandler struct {
	service service.Service
}

func NewRatingHandler(svc service.Service) *RatingHandler {
	return &RatingHandler{service: svc}
}

// Submit handles POST /ratings. Session required; the rating is keyed on
// the session user, so re-submitting overwrites the previous value.
func (h *RatingHandler) Submit(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	rating, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		var validationErrs validation.Errors
		switch {
		case errors.As(err, &validationErrs), errors.Is(err, model.ErrValueOutOfRange):
			response.BadRequest(c, err.Error())
		case errors.Is(err, model.ErrPoemNotFound):
			response.NotFound(c, "Poem not found")
		case errors.Is(err, model.ErrUserNotFound):
			response.Unauthorized(c, "authentication required")
		default:
			logger.Error("failed to submit rating", err)
			response.InternalServerError(c, "Failed to submit rating")
		}
		return
	}

	response.Success(c, http.StatusOK, rating)
}
