// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Athlete represents a registered athlete. The CPF is the natural key: it
// must be unique across all athletes at all times. TrainingCenterID and
// CategoryID are optional references to the owning training center and
// competition category.
type Athlete struct {
	PKID             int64      `json:"pk_id"`             // Sequential primary identity assigned by the store; immutable.
	ID               uuid.UUID  `json:"id"`                // Opaque public identifier exposed outside the service; immutable.
	Name             string     `json:"name"`              // Display name, required.
	CPF              string     `json:"cpf"`               // Natural key, fixed 11-character document number.
	Age              *int       `json:"age"`               // Optional age in years.
	Weight           *float64   `json:"weight"`            // Optional weight in kilograms.
	Height           *float64   `json:"height"`            // Optional height in meters.
	Sex              *string    `json:"sex"`               // Optional single-character sex code.
	TrainingCenterID *int64     `json:"training_center_id"` // Optional reference to a TrainingCenter.
	CategoryID       *int64     `json:"category_id"`       // Optional reference to a Category.
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
