package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreatePoemRequest struct {
	Content string `json:"content"`
}

func (r CreatePoemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.By(notBlank),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "content must not be blank")
	}
	return nil
}

// AuthorInfo is the author projection embedded in poem responses.
type AuthorInfo struct {
	Username string `json:"username"`
}

// AIAnnotation is the inline AI rating shown with a thread page.
type AIAnnotation struct {
	Value    int    `json:"value"`
	Analysis string `json:"analysis"`
}

// PoemResponse is the wire shape for a single poem.
type PoemResponse struct {
	ID        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	AuthorID  uuid.UUID     `json:"authorId"`
	Author    AuthorInfo    `json:"author"`
	AIRating  *AIAnnotation `json:"aiRating,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (p *PoemWithAuthor) ToResponse() PoemResponse {
	return PoemResponse{
		ID:        p.ID,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		Author:    AuthorInfo{Username: p.AuthorUsername},
		CreatedAt: p.CreatedAt,
	}
}

// ListPoemsResponse wraps the recent-poems listing.
type ListPoemsResponse struct {
	Poems []PoemResponse `json:"poems"`
}

// ThreadPage is a single-item cursor page. Both fields are null once the
// feed is exhausted.
type ThreadPage struct {
	Poem       *PoemResponse `json:"poem"`
	NextCursor *uuid.UUID    `json:"nextCursor"`
}
