package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Rating bounds. Values land on a 0-10 scale, inclusive.
const (
	MinValue = 0
	MaxValue = 10
)

// Rating is one user's score for one poem. Identity is the (user, poem)
// pair; re-rating overwrites the value (last write wins).
type Rating struct {
	UserID    uuid.UUID `json:"userId"`
	PoemID    uuid.UUID `json:"poemId"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitRatingRequest carries a rating submission. Value is a pointer so
// that an absent field is distinguishable from a legitimate zero.
type SubmitRatingRequest struct {
	PoemID uuid.UUID `json:"poemId"`
	Value  *int      `json:"value"`
}

func (r SubmitRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PoemID, validation.By(requiredUUID)),
		validation.Field(&r.Value,
			validation.NotNil.Error("value is required"),
			validation.Min(MinValue).Error("value must be between 0 and 10"),
			validation.Max(MaxValue).Error("value must be between 0 and 10"),
		),
	)
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "poemId is required")
	}
	return nil
}
