package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrainingCenter represents a gym or box where athletes train. The name is
// the natural key enforced at the service tier.
type TrainingCenter struct {
	PKID      int64     `json:"pk_id"`
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Owner     *string   `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
