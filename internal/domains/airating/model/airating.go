package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AIRating is a synthetic annotation attached to a poem. Poems may
// accumulate several; readers take the most recent one.
type AIRating struct {
	ID        uuid.UUID `json:"id"`
	PoemID    uuid.UUID `json:"poemId"`
	Value     int       `json:"value"`
	Analysis  string    `json:"analysis"`
	CreatedAt time.Time `json:"createdAt"`
}

type AnnotateRequest struct {
	PoemID uuid.UUID `json:"poemId"`
}

func (r AnnotateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PoemID,
			validation.Required.Error("poemId is required"),
			validation.By(notNilUUID),
		),
	)
}

func notNilUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "poemId is required")
	}
	return nil
}
