package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"poems-backend/internal/domains/airating/model"
	"poems-backend/internal/domains/airating/service"
	"poems-backend/internal/shared/response"
	"poems-backend/pkg/logger"
)

type AIRatingHandler struct {
	service service.Service
}

func NewAIRatingHandler(svc service.Service) *AIRatingHandler {
	return &AIRatingHandler{service: svc}
}

// Annotate handles POST /ai-rate.
func (h *AIRatingHandler) Annotate(c *gin.Context) {
	var req model.AnnotateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing poemId")
		return
	}

	if err := req.Validate(); err != nil {
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			response.BadRequest(c, "Missing poemId")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	rating, err := h.service.Annotate(c.Request.Context(), req.PoemID)
	if err != nil {
		if errors.Is(err, model.ErrPoemNotFound) {
			response.NotFound(c, "Poem not found")
			return
		}
		logger.Error("failed to create ai rating", err)
		response.InternalServerError(c, "Failed to create AI rating")
		return
	}

	response.Success(c, http.StatusOK, rating)
}
