package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a competition category. Its name is the natural key
// and must be unique across all categories.
type Category struct {
	PKID      int64     `json:"pk_id"`
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
